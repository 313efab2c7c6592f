package protocol

func init() {
	MustRegister("minecraft", NewMinecraft)
}

// Minecraft servers answer the server-list ping on the game port.
// The legacy GameSpy4 query listener, when enabled, is configured
// explicitly server-side, so endpoints wanting it set query_port
// rather than relying on an offset.
type Minecraft struct {
	base
}

// NewMinecraft constructs a Minecraft handler.
func NewMinecraft(opts map[string]any) (Handler, error) {
	return &Minecraft{base: newBase(opts)}, nil
}

func (m *Minecraft) Name() string { return "minecraft" }

func (m *Minecraft) PortOffset() int { return 0 }

func (m *Minecraft) JoinLinkTemplate() string { return "" }
