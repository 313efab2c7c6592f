package protocol

// Error is a simple error type for protocol errors.
// It allows defining sentinel errors as constants.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

// Sentinel errors for registry operations.
var (
	// ErrUnknownProtocol is returned when constructing a handler for a
	// type name that has no registered factory.
	ErrUnknownProtocol = Error("unknown protocol")

	// ErrEmptyName is returned when registering a factory under an
	// empty or blank name.
	ErrEmptyName = Error("protocol name cannot be empty")

	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = Error("protocol factory cannot be nil")

	// ErrDuplicateProtocol is returned when registering a factory under
	// a name that is already taken.
	ErrDuplicateProtocol = Error("protocol already registered")
)
