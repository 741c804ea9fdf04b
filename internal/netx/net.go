// Package netx has address helpers for the callback endpoint.
package netx

import (
	"fmt"
	"net"
)

// DialableAddr turns a listener address into one a peer can dial: an
// unspecified host (0.0.0.0, ::) is replaced with host.
func DialableAddr(addr net.Addr, host string) (string, error) {
	h, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "", fmt.Errorf("split %q: %w", addr.String(), err)
	}
	if ip := net.ParseIP(h); h == "" || (ip != nil && ip.IsUnspecified()) {
		h = host
	}
	return net.JoinHostPort(h, port), nil
}
