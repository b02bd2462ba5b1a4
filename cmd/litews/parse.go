package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lite-ws/litews/http/proto"
	"github.com/lite-ws/litews/http/status"
	"github.com/rs/zerolog/log"
)

var errMalformedTokens = errors.New("some tokens are malformed")

type ParseCmd struct {
	Tokens []string `arg:"" help:"Protocol version tokens, e.g. HTTP/1.1."`
}

func (p *ParseCmd) Run() error {
	return p.print(os.Stdout)
}

func (p *ParseCmd) print(out io.Writer) error {
	var failed bool

	for _, token := range p.Tokens {
		version, err := proto.Parse(token)
		if err != nil {
			failed = true

			var parseErr status.HeaderParseError
			if errors.As(err, &parseErr) {
				log.Debug().Str("token", token).Stringer("reason", parseErr.Reason).Msg("rejected")
			}

			_, _ = fmt.Fprintf(out, "%s\terror: %s\n", token, err)
			continue
		}

		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", token, version, version.Protocol())
	}

	if failed {
		return errMalformedTokens
	}

	return nil
}
