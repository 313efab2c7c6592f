package protocol

func init() {
	MustRegister("source", NewSource)
}

// Source implements the conventions of Valve's Source engine query
// protocol (A2S). Source servers answer A2S queries on the game port
// itself, so the offset is zero.
type Source struct {
	base
}

// NewSource constructs a Source handler.
func NewSource(opts map[string]any) (Handler, error) {
	return &Source{base: newBase(opts)}, nil
}

func (s *Source) Name() string { return "source" }

func (s *Source) PortOffset() int { return 0 }

func (s *Source) JoinLinkTemplate() string { return "steam://connect/%s:%d" }
