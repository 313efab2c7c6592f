package endpoint

// Error is a simple error type for endpoint errors.
// It allows defining sentinel errors as constants.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

// Sentinel errors for endpoint construction and operations.
//
// Construction errors fall into three groups: descriptor validation
// (ErrMissingType, ErrMissingHost), address handling
// (ErrInvalidAddress, ErrInvalidPort, ErrResolveFailed), and port
// derivation (ErrMissingClientPort, ErrInvalidQueryPort). Protocol
// lookup failures surface as protocol.ErrUnknownProtocol. Every
// construction error aborts creation; no partial Server is returned.
var (
	// ErrMissingType is returned when a descriptor has no server type.
	ErrMissingType = Error("server type is required")

	// ErrMissingHost is returned when a descriptor has no host.
	ErrMissingHost = Error("server host is required")

	// ErrInvalidAddress is returned when a host specification cannot be
	// parsed as an IPv4 literal, an IPv6 literal, or a resolvable name.
	ErrInvalidAddress = Error("invalid address")

	// ErrInvalidPort is returned when a port segment is not a decimal
	// number in the 0-65535 range.
	ErrInvalidPort = Error("invalid port")

	// ErrResolveFailed is returned when a hostname cannot be resolved
	// to an IP address.
	ErrResolveFailed = Error("hostname resolution failed")

	// ErrMissingClientPort is returned when an operation needs the
	// client port but the host specification carried none: deriving the
	// query port without a query_port option, or building a join link.
	ErrMissingClientPort = Error("client port is required")

	// ErrInvalidQueryPort is returned when the query_port option is
	// present but not coercible to an integer.
	ErrInvalidQueryPort = Error("invalid query_port option")

	// ErrNoJoinLink is returned when the bound protocol defines no
	// join-link convention.
	ErrNoJoinLink = Error("protocol has no join link")
)
