package transport

import (
	"net"

	"github.com/lite-ws/litews/config"
)

// Transport accepts connections and hands them over to the callback, each in its own
// goroutine. Connections are closed as soon as the callback returns.
type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}
