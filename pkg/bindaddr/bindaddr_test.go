package bindaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Host validation
// ============================================================

func TestParseHost(t *testing.T) {
	t.Parallel()

	t.Run("accepts IP literals", func(t *testing.T) {
		t.Parallel()
		for _, host := range []string{"127.0.0.1", "0.0.0.0", "192.168.1.1", "::1", "::"} {
			addr, err := ParseHost(host)
			require.NoError(t, err, "host %q", host)
			assert.True(t, addr.IsValid())
		}
	})

	t.Run("rejects hostnames and malformed addresses", func(t *testing.T) {
		t.Parallel()
		for _, host := range []string{"invalid-hostname", "999.999.999.999", "localhost", "example.com", "", "127.0.0.1:8080"} {
			_, err := ParseHost(host)
			require.Error(t, err, "host %q", host)

			var invalidHost *InvalidHostError
			require.ErrorAs(t, err, &invalidHost)
			assert.Equal(t, host, invalidHost.Host)
		}
	})
}

// ============================================================
// Port validation
// ============================================================

func TestParsePort(t *testing.T) {
	t.Parallel()

	t.Run("accepts ports in range", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			in   string
			want uint16
		}{
			{"3000", 3000},
			{"8080", 8080},
			{"1", 1},
			{"65535", 65535},
		}
		for _, tt := range tests {
			got, err := ParsePort(tt.in)
			require.NoError(t, err, "port %q", tt.in)
			assert.Equal(t, tt.want, got)
		}
	})

	t.Run("rejects ports out of range or non-numeric", func(t *testing.T) {
		t.Parallel()
		for _, port := range []string{"0", "65536", "invalid", "-1", "", "80.5", "8080abc"} {
			_, err := ParsePort(port)
			require.Error(t, err, "port %q", port)

			var invalidPort *InvalidPortError
			require.ErrorAs(t, err, &invalidPort)
			assert.Equal(t, port, invalidPort.Port)
		}
	})

	t.Run("error message names the offending value", func(t *testing.T) {
		t.Parallel()
		_, err := ParsePort("invalid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"invalid"`)
	})
}

func TestParsePortNumber(t *testing.T) {
	t.Parallel()

	got, err := ParsePortNumber(3001)
	require.NoError(t, err)
	assert.Equal(t, uint16(3001), got)

	for _, n := range []int{0, -1, 65536, 100000} {
		_, err := ParsePortNumber(n)
		assert.Error(t, err, "port %d", n)
	}
}

// ============================================================
// Combined parsing
// ============================================================

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("combines host and port", func(t *testing.T) {
		t.Parallel()
		bind, err := Parse("127.0.0.1", "3001")
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:3001", bind.String())
	})

	t.Run("brackets IPv6 hosts", func(t *testing.T) {
		t.Parallel()
		bind, err := Parse("::1", "8080")
		require.NoError(t, err)
		assert.Equal(t, "[::1]:8080", bind.String())
	})

	t.Run("host error wins when both are bad", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("not-an-ip", "not-a-port")
		require.Error(t, err)

		var invalidHost *InvalidHostError
		assert.ErrorAs(t, err, &invalidHost)
	})

	t.Run("bad port fails with a good host", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("0.0.0.0", "70000")
		require.Error(t, err)

		var invalidPort *InvalidPortError
		assert.ErrorAs(t, err, &invalidPort)
	})
}
