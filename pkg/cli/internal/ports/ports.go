// Package ports provides port availability checking.
package ports

import (
	"net"
	"strconv"
)

// Check briefly binds host:port and returns the bind error, if any.
// The host matters: a port taken on one interface may be free on another.
func Check(host string, port int) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return err
	}
	_ = ln.Close()
	return nil
}
