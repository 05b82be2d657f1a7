package providers

import (
	"github.com/google/uuid"

	domainproviders "github.com/zatekoja/servicemarket/internal/domain/providers"
)

// UUIDGenerator implements the IDGenerator interface with random uuids
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new uuid-backed id generator
func NewUUIDGenerator() domainproviders.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh uuid string
func (g *UUIDGenerator) NewID() string {
	return uuid.New().String()
}
