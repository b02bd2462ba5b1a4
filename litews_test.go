package litews

import (
	"bufio"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/lite-ws/litews/config"
	"github.com/lite-ws/litews/http/status"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*Server, <-chan error) {
	cfg := config.Default()
	cfg.NET.AcceptLoopInterruptPeriod = 20 * time.Millisecond
	cfg.NET.ReadTimeout = time.Second

	server, err := NewBuilder().
		Tune(cfg).
		IPAddr("127.0.0.1").
		PortNum(0).
		Build()
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	return server, errCh
}

func stop(t *testing.T, server *Server, errCh <-chan error) {
	server.Stop()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, status.ErrShutdown)
	case <-time.After(2 * time.Second):
		require.Fail(t, "server didn't stop")
	}
}

func request(t *testing.T, addr, data string) (statusLine, body string) {
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(data))
	require.NoError(t, err)

	response, err := io.ReadAll(bufio.NewReader(conn))
	require.NoError(t, err)

	head, body, found := strings.Cut(string(response), "\r\n\r\n")
	require.True(t, found, string(response))
	statusLine, _, _ = strings.Cut(head, "\r\n")

	return statusLine, body
}

func TestServer(t *testing.T) {
	server, errCh := newServer(t)
	addr := server.Addr().String()

	t.Run("ok", func(t *testing.T) {
		statusLine, body := request(t, addr, "GET /index HTTP/1.1\r\nHost: localhost\r\n\r\n")
		require.Equal(t, "HTTP/1.1 200 OK", statusLine)
		require.Equal(t, `{"method":"GET","target":"/index","version":"Http/1.1","scheme":"http"}`, body)
	})

	t.Run("case-normalized version", func(t *testing.T) {
		statusLine, body := request(t, addr, "GET / HTTPS/1.0\r\n\r\n")
		require.Equal(t, "HTTP/1.0 200 OK", statusLine)
		require.Contains(t, body, `"version":"Https/1.0"`)
	})

	t.Run("bad version", func(t *testing.T) {
		for _, version := range []string{"ftp/1.0", "http/1.x", "http/256.0", "http/1", "/1.0"} {
			statusLine, _ := request(t, addr, "GET / "+version+"\r\n\r\n")
			require.Equal(t, "HTTP/1.1 400 Bad Request", statusLine, version)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		statusLine, _ := request(t, addr, "GET / HTTP/2.0\r\n\r\n")
		require.Equal(t, "HTTP/1.1 505 HTTP Version Not Supported", statusLine)
	})

	t.Run("concurrent clients", func(t *testing.T) {
		const clients = 16
		results := make(chan string, clients)

		for range clients {
			go func() {
				conn, err := net.Dial("tcp", addr)
				if err != nil {
					results <- err.Error()
					return
				}
				defer conn.Close()

				_, _ = conn.Write([]byte("GET / HTTP/1.1\r\n\r\n"))
				line, err := bufio.NewReader(conn).ReadString('\n')
				if err != nil {
					results <- err.Error()
					return
				}

				results <- line
			}()
		}

		for range clients {
			require.Equal(t, "HTTP/1.1 200 OK\r\n", <-results)
		}
	})

	stop(t, server, errCh)
}

func TestBuilder(t *testing.T) {
	t.Run("bad host", func(t *testing.T) {
		_, err := NewBuilder().IPAddr("definitely not an ip").Build()
		require.Error(t, err)
	})

	t.Run("port is taken", func(t *testing.T) {
		server, errCh := newServer(t)
		port := server.Addr().(*net.TCPAddr).Port

		_, err := NewBuilder().IPAddr("127.0.0.1").PortNum(uint16(port)).Build()
		require.Error(t, err)

		stop(t, server, errCh)
	})

	t.Run("defaults", func(t *testing.T) {
		b := NewBuilder()
		require.Equal(t, config.Default(), b.cfg)
	})
}
