package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lite-ws/litews"
	"github.com/lite-ws/litews/config"
	"github.com/lite-ws/litews/http/status"
	"github.com/rs/zerolog/log"
)

type ServeCmd struct {
	IP     string `help:"IP address to listen on." default:"127.0.0.1"`
	Port   uint16 `help:"Port to listen on." default:"8888"`
	Config string `help:"Path to a TOML config file. Flags take precedence over it." type:"existingfile"`
}

func (s *ServeCmd) Run(ctx context.Context, kctx *kong.Context, globals *Globals) error {
	cfg := config.Default()
	if s.Config != "" {
		var err error
		if cfg, err = config.Load(s.Config); err != nil {
			return err
		}
	}

	builder := litews.NewBuilder().
		Tune(cfg).
		Logger(log.Logger)

	if s.Config == "" || flagPassed(kctx, "ip") {
		builder.IPAddr(s.IP)
	}

	if s.Config == "" || flagPassed(kctx, "port") {
		builder.PortNum(s.Port)
	}

	server, err := builder.Build()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		server.Stop()
	}()

	log.Info().Str("version", globals.Version).Msg("starting litews")

	if err = server.Run(); errors.Is(err, status.ErrShutdown) {
		return nil
	}

	return err
}

func flagPassed(kctx *kong.Context, name string) bool {
	for _, path := range kctx.Path {
		if path.Flag != nil && path.Flag.Name == name {
			return true
		}
	}

	return false
}
