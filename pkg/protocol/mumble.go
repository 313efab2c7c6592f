package protocol

func init() {
	MustRegister("mumble", NewMumble)
}

// Mumble answers its ping protocol on the voice port.
type Mumble struct {
	base
}

// NewMumble constructs a Mumble handler.
func NewMumble(opts map[string]any) (Handler, error) {
	return &Mumble{base: newBase(opts)}, nil
}

func (m *Mumble) Name() string { return "mumble" }

func (m *Mumble) PortOffset() int { return 0 }

func (m *Mumble) JoinLinkTemplate() string { return "mumble://%s:%d/" }
