package utils

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboundIPReturnsValidAddress(t *testing.T) {
	ip := OutboundIP()

	require.NotEmpty(t, ip)
	parsed := net.ParseIP(ip)
	assert.NotNil(t, parsed, "OutboundIP returned %q, not a valid IP", ip)
}
