package reqline

import (
	"bytes"

	"github.com/lite-ws/litews/http/proto"
	"github.com/lite-ws/litews/http/status"
	"github.com/lite-ws/litews/transport"
)

// Line is a parsed request line: <method> <target> <version>
type Line struct {
	Method  string
	Target  string
	Version proto.Version
}

// Parse splits the request line by single spaces. A trailing CRLF or bare LF is
// tolerated. Version token errors are returned as is, anything else is
// status.ErrBadRequest.
func Parse(line []byte) (Line, error) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	method, rest, found := bytes.Cut(line, []byte(" "))
	if !found || len(method) == 0 {
		return Line{}, status.ErrBadRequest
	}

	target, versionToken, found := bytes.Cut(rest, []byte(" "))
	if !found || len(target) == 0 || len(versionToken) == 0 {
		return Line{}, status.ErrBadRequest
	}

	version, err := proto.ParseBytes(versionToken)
	if err != nil {
		return Line{}, err
	}

	return Line{
		Method:  string(method),
		Target:  string(target),
		Version: version,
	}, nil
}

// Read accumulates data from the client into buff until a LF is met. Everything
// past the LF is pushed back into the client. If the line doesn't fit into max
// bytes, status.ErrTooLongRequestLine is returned.
func Read(client transport.Client, buff []byte, max int) ([]byte, error) {
	buff = buff[:0]

	for {
		data, err := client.Read()
		if err != nil {
			return nil, err
		}

		if lf := bytes.IndexByte(data, '\n'); lf != -1 {
			if len(buff)+lf+1 > max {
				return nil, status.ErrTooLongRequestLine
			}

			if extra := data[lf+1:]; len(extra) > 0 {
				client.Pushback(extra)
			}

			return append(buff, data[:lf+1]...), nil
		}

		if len(buff)+len(data) > max {
			return nil, status.ErrTooLongRequestLine
		}

		buff = append(buff, data...)
	}
}
