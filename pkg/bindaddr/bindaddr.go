// Package bindaddr validates and represents the host/port pair the
// server listens on. Hosts must be literal IP addresses (IPv4 or
// IPv6); hostnames are rejected so a typo fails fast instead of
// resolving to something unexpected. Ports must be numeric and in
// 1-65535; port 0 is rejected because a caller asking for it almost
// always meant to configure a real port.
package bindaddr

import (
	"fmt"
	"net/netip"
	"strconv"
)

// InvalidHostError is returned when a host string is not a literal IP
// address.
type InvalidHostError struct {
	Host string
}

func (e *InvalidHostError) Error() string {
	return fmt.Sprintf("invalid host %q: must be a literal IP address", e.Host)
}

// InvalidPortError is returned when a port string is not a number in
// the range 1-65535.
type InvalidPortError struct {
	Port   string
	Reason string
}

func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("invalid port %q: %s", e.Port, e.Reason)
}

// BindAddress is a validated listen address.
type BindAddress struct {
	Addr netip.Addr
	Port uint16
}

// String renders the address in the form net.Listen expects,
// bracketing IPv6 hosts.
func (b BindAddress) String() string {
	return netip.AddrPortFrom(b.Addr, b.Port).String()
}

// ParseHost validates a host string. It accepts IPv4 and IPv6
// literals, including the wildcard addresses 0.0.0.0 and ::.
func ParseHost(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, &InvalidHostError{Host: s}
	}
	return addr, nil
}

// ParsePort validates a port string.
func ParsePort(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, &InvalidPortError{Port: s, Reason: "must be a number between 1 and 65535"}
	}
	if n == 0 {
		return 0, &InvalidPortError{Port: s, Reason: "port 0 is reserved"}
	}
	return uint16(n), nil
}

// Parse validates a host and port together and returns the combined
// bind address. The host is checked first, so when both are bad the
// host error wins.
func Parse(host, port string) (BindAddress, error) {
	addr, err := ParseHost(host)
	if err != nil {
		return BindAddress{}, err
	}
	p, err := ParsePort(port)
	if err != nil {
		return BindAddress{}, err
	}
	return BindAddress{Addr: addr, Port: p}, nil
}

// ParsePortNumber validates a port given as an integer, for callers
// that already hold a numeric value from a config file.
func ParsePortNumber(n int) (uint16, error) {
	if n < 1 || n > 65535 {
		return 0, &InvalidPortError{Port: strconv.Itoa(n), Reason: "must be a number between 1 and 65535"}
	}
	return uint16(n), nil
}
