package providers

// IDGenerator produces globally-unique opaque string identifiers for
// new records. Ids are never reissued, including after deletion.
type IDGenerator interface {
	NewID() string
}
