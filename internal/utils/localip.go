package utils

import (
	"net"
)

// OutboundIP returns the machine's outbound-facing local IP address.
// It opens a connectionless UDP socket toward an arbitrary unreachable
// address and reads back the locally bound address; no packet is sent.
// Falls back to loopback if the socket cannot be set up.
func OutboundIP() string {
	conn, err := net.Dial("udp", "10.255.255.255:1")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	localAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "127.0.0.1"
	}
	return localAddr.IP.String()
}
