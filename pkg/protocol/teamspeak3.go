package protocol

func init() {
	MustRegister("teamspeak3", NewTeamspeak3)
}

// Teamspeak3 uses the ServerQuery interface. The stock install pairs
// voice port 9987 with query port 10011; the offset reproduces that
// pairing for default installs, and multi-instance hosts set
// query_port explicitly.
type Teamspeak3 struct {
	base
}

// NewTeamspeak3 constructs a Teamspeak3 handler.
func NewTeamspeak3(opts map[string]any) (Handler, error) {
	return &Teamspeak3{base: newBase(opts)}, nil
}

func (t *Teamspeak3) Name() string { return "teamspeak3" }

func (t *Teamspeak3) PortOffset() int { return 10011 - 9987 }

func (t *Teamspeak3) JoinLinkTemplate() string { return "ts3server://%s?port=%d" }
