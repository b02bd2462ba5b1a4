package serve

import (
	"errors"
	"io"
	"net"
	"os"
	"strconv"

	json "github.com/json-iterator/go"
	"github.com/lite-ws/litews/config"
	"github.com/lite-ws/litews/http/proto"
	"github.com/lite-ws/litews/http/status"
	"github.com/lite-ws/litews/internal/reqline"
	"github.com/lite-ws/litews/transport"
	"github.com/rs/zerolog"
)

// Reply is the body of every successful response. It describes how the request line
// was understood.
type Reply struct {
	Method  string        `json:"method"`
	Target  string        `json:"target"`
	Version proto.Version `json:"version"`
	Scheme  string        `json:"scheme"`
}

// HTTP1 serves a single request over the connection. Note, that the connection isn't
// automatically closed
func HTTP1(cfg *config.Config, logger zerolog.Logger, conn net.Conn) {
	client := transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
	Client(cfg, logger, client)
}

// Client reads the request line, parses it and responds. Malformed request lines and
// versions are answered by 400, versions not belonging to HTTP/1.x by 505.
func Client(cfg *config.Config, logger zerolog.Logger, client transport.Client) {
	logger = logger.With().Stringer("remote", client.Remote()).Logger()

	buff := make([]byte, 0, cfg.URI.RequestLineSize.Default)
	raw, err := reqline.Read(client, buff, cfg.URI.RequestLineSize.Maximal)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		logger.Debug().Msg("client disconnected before sending a request line")
		return
	case errors.Is(err, os.ErrDeadlineExceeded):
		logger.Debug().Msg("request line read timed out")
		respondError(logger, client, proto.HTTP11, status.ErrRequestTimeout)
		return
	default:
		respondError(logger, client, proto.HTTP11, err)
		return
	}

	line, err := reqline.Parse(raw)
	if err != nil {
		logger.Debug().Err(err).Msg("malformed request line")
		respondError(logger, client, proto.HTTP11, err)
		return
	}

	protocol := line.Version.Protocol()
	if protocol&proto.HTTP1 == 0 {
		logger.Debug().Stringer("version", line.Version).Msg("unsupported protocol version")
		respondError(logger, client, proto.HTTP11, status.ErrHTTPVersionNotSupported)
		return
	}

	body, err := json.Marshal(Reply{
		Method:  line.Method,
		Target:  line.Target,
		Version: line.Version,
		Scheme:  line.Version.Scheme.Token(),
	})
	if err != nil {
		respondError(logger, client, protocol, status.ErrInternalServerError)
		return
	}

	logger.Debug().
		Str("method", line.Method).
		Str("target", line.Target).
		Stringer("version", line.Version).
		Msg("request")

	write(logger, client, render(nil, protocol, status.OK, "application/json", body))
}

func respondError(logger zerolog.Logger, client transport.Client, protocol proto.Protocol, err error) {
	var httpErr status.HTTPError
	if !errors.As(err, &httpErr) {
		logger.Warn().Err(err).Msg("failed to read request")
		return
	}

	write(logger, client, render(nil, protocol, httpErr.Code, "text/plain", []byte(err.Error())))
}

func write(logger zerolog.Logger, client transport.Client, data []byte) {
	if _, err := client.Write(data); err != nil {
		logger.Debug().Err(err).Msg("failed to write response")
	}
}

func render(buff []byte, protocol proto.Protocol, code status.Code, contentType string, body []byte) []byte {
	buff = append(buff, protocol.String()...)
	buff = append(buff, ' ')
	buff = append(buff, status.StringCode(code)...)
	buff = append(buff, ' ')
	buff = append(buff, string(status.Text(code))...)
	buff = append(buff, "\r\nContent-Type: "...)
	buff = append(buff, contentType...)
	buff = append(buff, "\r\nContent-Length: "...)
	buff = strconv.AppendInt(buff, int64(len(body)), 10)
	buff = append(buff, "\r\nConnection: close\r\n\r\n"...)

	return append(buff, body...)
}
