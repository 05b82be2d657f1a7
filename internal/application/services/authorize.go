package services

import (
	"fmt"

	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

// owned is satisfied by every record entity; OwnerID names the field
// compared against the caller identity on mutations.
type owned interface {
	OwnerID() string
}

// authorize permits a mutation iff the caller identity exactly equals
// the record's owner field. The comparison is case-sensitive and no
// normalization is applied; reads are never authorized.
func authorize(record owned, callerID, kind, id string) error {
	if record.OwnerID() != callerID {
		return apperrors.NewUnauthorizedError(fmt.Sprintf("caller is not the owner of %s %s", kind, id))
	}
	return nil
}
