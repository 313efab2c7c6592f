package protocol

func init() {
	MustRegister("ase", NewASE)
}

// ASE implements the All-Seeing Eye convention used by Multi Theft
// Auto and a handful of older engines: the query service listens 123
// ports above the game port. There is no join-link scheme.
type ASE struct {
	base
}

// NewASE constructs an ASE handler.
func NewASE(opts map[string]any) (Handler, error) {
	return &ASE{base: newBase(opts)}, nil
}

func (a *ASE) Name() string { return "ase" }

func (a *ASE) PortOffset() int { return 123 }

func (a *ASE) JoinLinkTemplate() string { return "" }
