package contract

// IUUIDGenerator abstracts UUID generation.
type IUUIDGenerator interface {
	NewUUID() string
}
