package litews

import (
	"fmt"
	"net"

	"github.com/lite-ws/litews/config"
	"github.com/lite-ws/litews/http/serve"
	"github.com/lite-ws/litews/http/status"
	"github.com/lite-ws/litews/internal/address"
	"github.com/lite-ws/litews/transport"
	"github.com/rs/zerolog"
)

// ServerBuilder collects the settings a Server is built from. Every method returns the
// builder itself, so calls can be chained.
type ServerBuilder struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewBuilder returns a builder with default config and logging disabled.
func NewBuilder() *ServerBuilder {
	return &ServerBuilder{
		cfg:    config.Default(),
		logger: zerolog.Nop(),
	}
}

// Tune replaces the whole config, including the address set by IPAddr and PortNum
// before. Call it first.
func (b *ServerBuilder) Tune(cfg *config.Config) *ServerBuilder {
	b.cfg = cfg
	return b
}

// IPAddr sets the address to bind to. Besides IP addresses, only localhost is accepted.
func (b *ServerBuilder) IPAddr(ip string) *ServerBuilder {
	b.cfg.NET.Host = ip
	return b
}

// PortNum sets the port to bind to. 0 picks a random free one, see Server.Addr.
func (b *ServerBuilder) PortNum(port uint16) *ServerBuilder {
	b.cfg.NET.Port = port
	return b
}

func (b *ServerBuilder) Logger(logger zerolog.Logger) *ServerBuilder {
	b.logger = logger
	return b
}

// Build validates the settings and binds the listener. The server doesn't accept
// connections until Run is called.
func (b *ServerBuilder) Build() (*Server, error) {
	if err := address.Validate(b.cfg.NET.Host); err != nil {
		return nil, fmt.Errorf("litews: bad addr: %w", err)
	}

	tcp := transport.NewTCP()
	addr := address.Join(b.cfg.NET.Host, b.cfg.NET.Port)
	if err := tcp.Bind(addr); err != nil {
		return nil, fmt.Errorf("litews: bind %s: %w", addr, err)
	}

	return &Server{
		cfg:       b.cfg,
		logger:    b.logger,
		transport: tcp,
	}, nil
}

type Server struct {
	cfg       *config.Config
	logger    zerolog.Logger
	transport transport.Transport
}

// Addr returns the address the server is bound to.
func (s *Server) Addr() net.Addr {
	return s.transport.Addr()
}

// Run accepts connections until Stop is called or the listener fails. Every connection
// is served in a separate goroutine. After Stop, status.ErrShutdown is returned as soon
// as all the connections are done.
func (s *Server) Run() error {
	s.logger.Info().Stringer("addr", s.Addr()).Msg("listening")

	err := s.transport.Listen(s.cfg.NET, func(conn net.Conn) {
		serve.HTTP1(s.cfg, s.logger, conn)
	})
	s.transport.Wait()
	s.transport.Close()

	if err != nil {
		s.logger.Error().Err(err).Msg("listener failed")
		return err
	}

	s.logger.Info().Msg("stopped")

	return status.ErrShutdown
}

// Stop makes the server stop accepting new connections.
//
// NOTE: the call isn't blocking. The server notices it within the
// config.NET.AcceptLoopInterruptPeriod
func (s *Server) Stop() {
	s.transport.Stop()
}
