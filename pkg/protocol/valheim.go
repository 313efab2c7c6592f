package protocol

func init() {
	MustRegister("valheim", NewValheim)
}

// Valheim servers speak the Steam query protocol on game port + 1.
type Valheim struct {
	base
}

// NewValheim constructs a Valheim handler.
func NewValheim(opts map[string]any) (Handler, error) {
	return &Valheim{base: newBase(opts)}, nil
}

func (v *Valheim) Name() string { return "valheim" }

func (v *Valheim) PortOffset() int { return 1 }

func (v *Valheim) JoinLinkTemplate() string { return "steam://connect/%s:%d" }
