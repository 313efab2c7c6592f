package endpoint

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Lookuper resolves hostnames to IP addresses. *net.Resolver satisfies
// it; tests substitute a fixture.
type Lookuper interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Address is the result of resolving a host specification.
type Address struct {
	// IP is a validated IPv4 or IPv6 literal. IPv6 is stored without
	// enclosing brackets.
	IP string

	// Port is the client port from the host specification. Valid only
	// when HasPort is true.
	Port int

	// HasPort reports whether the host specification carried a port.
	HasPort bool
}

// Resolver parses host specifications into validated addresses,
// falling back to hostname resolution when the host part is not an IP
// literal.
type Resolver struct {
	lookup Lookuper
}

// NewResolver creates a Resolver using the given Lookuper for
// hostname resolution. A nil Lookuper means net.DefaultResolver.
func NewResolver(lookup Lookuper) *Resolver {
	if lookup == nil {
		lookup = net.DefaultResolver
	}
	return &Resolver{lookup: lookup}
}

var defaultResolver = NewResolver(nil)

// Resolve parses hostSpec into a validated address. Accepted forms:
//
//	203.0.113.4          IPv4, no port
//	203.0.113.4:27015    IPv4 with port
//	fe80::1              IPv6, no port
//	[fe80::1]            bracketed IPv6, no port
//	[::1]:27015          bracketed IPv6 with port
//	play.example.com     hostname, resolved via DNS
//	play.example.com:27015
//
// A specification with more than one colon must be a valid IPv6
// literal; it never falls through to IPv4 or hostname handling.
// Hostname resolution is a blocking call bounded only by ctx.
func (r *Resolver) Resolve(ctx context.Context, hostSpec string) (Address, error) {
	if strings.Count(hostSpec, ":") > 1 {
		return r.resolveIPv6(hostSpec)
	}

	host := hostSpec
	var addr Address
	if i := strings.IndexByte(hostSpec, ':'); i >= 0 {
		port, err := parsePort(hostSpec[i+1:])
		if err != nil {
			return Address{}, err
		}
		host = hostSpec[:i]
		addr.Port = port
		addr.HasPort = true
	}

	if host == "" {
		return Address{}, fmt.Errorf("%w: empty host in %q", ErrInvalidAddress, hostSpec)
	}

	if ip := net.ParseIP(host); ip != nil && ip.To4() != nil {
		addr.IP = host
		return addr, nil
	}

	// Not an IPv4 literal: treat as a hostname.
	ip, err := r.lookupHost(ctx, host)
	if err != nil {
		return Address{}, err
	}
	addr.IP = ip
	return addr, nil
}

// resolveIPv6 handles specifications with more than one colon:
// bare IPv6, bracketed IPv6, and bracketed IPv6 with a port.
func (r *Resolver) resolveIPv6(hostSpec string) (Address, error) {
	host := hostSpec
	var addr Address
	if strings.Contains(hostSpec, "]:") {
		i := strings.LastIndexByte(hostSpec, ':')
		port, err := parsePort(hostSpec[i+1:])
		if err != nil {
			return Address{}, err
		}
		host = hostSpec[:i]
		addr.Port = port
		addr.HasPort = true
	}

	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")

	ip := net.ParseIP(host)
	if ip == nil || ip.To4() != nil {
		return Address{}, fmt.Errorf("%w: %q is not a valid IPv6 address", ErrInvalidAddress, host)
	}
	addr.IP = host
	return addr, nil
}

// lookupHost resolves a hostname, preferring an IPv4 result. Failure
// is signalled by the resolver's error, not by comparing the result
// against the input.
func (r *Resolver) lookupHost(ctx context.Context, host string) (string, error) {
	addrs, err := r.lookup.LookupIPAddr(ctx, host)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrResolveFailed, host, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("%w: %q: no addresses returned", ErrResolveFailed, host)
	}
	for _, a := range addrs {
		if a.IP.To4() != nil {
			return a.IP.String(), nil
		}
	}
	return addrs[0].IP.String(), nil
}

func parsePort(s string) (int, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	return int(port), nil
}
