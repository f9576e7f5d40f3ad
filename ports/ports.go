// Package ports allocates loopback TCP listeners for the redirect server.
package ports

import (
	"errors"
	"fmt"
	"net"
)

// ErrPortAllocation indicates that no loopback port could be bound.
var ErrPortAllocation = errors.New("no loopback port available")

// Listen binds a TCP listener on an OS-assigned ephemeral port of the given
// host. The listener is returned still bound so the caller can serve on it
// directly; handing over the live listener instead of a bare port number
// avoids the race where another process grabs the port between allocation
// and the real bind.
func Listen(host string) (net.Listener, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort(host, "0"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPortAllocation, err)
	}
	return ln, nil
}

// Port returns the port number the listener is bound to.
func Port(ln net.Listener) int {
	return ln.Addr().(*net.TCPAddr).Port
}
