package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mutinifni/caladan/pkg/util/merr"
)

func TestParseTransport(t *testing.T) {
	cases := []struct {
		in   string
		want Transport
	}{
		{"tcp", TransportTCP},
		{"TCP", TransportTCP},
		{" udp ", TransportUDP},
		{"Udp", TransportUDP},
	}
	for _, c := range cases {
		got, err := ParseTransport(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseTransportUnknown(t *testing.T) {
	for _, in := range []string{"", "rdma", "unix"} {
		_, err := ParseTransport(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, merr.ErrTransportUnknown, in)
	}
}

func TestTransportString(t *testing.T) {
	assert.Equal(t, "tcp", TransportTCP.String())
	assert.Equal(t, "udp", TransportUDP.String())
	assert.Equal(t, "unknown", Transport(99).String())
}
