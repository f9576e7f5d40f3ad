package ports

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAssignsPort(t *testing.T) {
	ln, err := Listen("127.0.0.1")
	require.NoError(t, err)
	defer ln.Close()

	port := Port(ln)
	assert.Greater(t, port, 0, "OS should assign a non-zero ephemeral port")
	assert.Equal(t, "127.0.0.1", ln.Addr().(*net.TCPAddr).IP.String())
}

func TestListenDistinctPorts(t *testing.T) {
	first, err := Listen("127.0.0.1")
	require.NoError(t, err)
	defer first.Close()

	second, err := Listen("127.0.0.1")
	require.NoError(t, err)
	defer second.Close()

	assert.NotEqual(t, Port(first), Port(second), "concurrent listeners must get distinct ports")
}

func TestListenerIsConnectable(t *testing.T) {
	ln, err := Listen("127.0.0.1")
	require.NoError(t, err)
	defer ln.Close()

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err, "the returned listener should accept connections without rebinding")
	conn.Close()
}

func TestListenBadHost(t *testing.T) {
	// TEST-NET-3 address, never assigned to a local interface.
	_, err := Listen("203.0.113.1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPortAllocation)
}
