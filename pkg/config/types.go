package config

import (
	"fmt"

	"github.com/getgsq/gsq/pkg/endpoint"
)

// ServerConfig is one server entry in a collection file. It mirrors
// the endpoint descriptor field for field.
type ServerConfig struct {
	// Type selects the query protocol. Required.
	Type string `json:"type" yaml:"type"`

	// Host is the address specification. Required.
	Host string `json:"host" yaml:"host"`

	// ID overrides the default "<ip>:<port>" endpoint handle.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Options holds query_port, master_server_port, and
	// protocol-specific passthrough values.
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Descriptor converts the entry into an endpoint descriptor.
func (s ServerConfig) Descriptor() endpoint.Descriptor {
	return endpoint.Descriptor{
		Type:    s.Type,
		Host:    s.Host,
		ID:      s.ID,
		Options: s.Options,
	}
}

// Validate checks the entry's required fields. It does not resolve
// the host or look up the protocol.
func (s ServerConfig) Validate() error {
	if s.Type == "" {
		return endpoint.ErrMissingType
	}
	if s.Host == "" {
		return endpoint.ErrMissingHost
	}
	return nil
}

// ServerCollection is a set of server entries loaded from one file.
type ServerCollection struct {
	// Version is the collection format version.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Name is a human-readable collection name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Servers are the entries, in file order.
	Servers []ServerConfig `json:"servers" yaml:"servers"`
}

// Validate checks every entry, reporting the first failure with its
// index.
func (c *ServerCollection) Validate() error {
	for i, s := range c.Servers {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("server %d: %w", i, err)
		}
	}
	return nil
}
