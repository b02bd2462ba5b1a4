package config

import (
	"time"
)

type (
	URIRequestLineSize struct {
		Default, Maximal int
	}
)

type (
	URI struct {
		// RequestLineSize limits the buffer the request line is accumulated in. The default
		// value is the initial capacity, the maximal is the point at which the request is
		// rejected with status.ErrTooLongRequestLine.
		RequestLineSize URIRequestLineSize
	}

	NET struct {
		// Host is the address the server binds to.
		Host string
		// Port is the port the server binds to.
		Port uint16
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}
)

// Config holds settings used across various parts of litews, mainly restrictions, limitations
// and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	URI URI
	NET NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: URIRequestLineSize{
				Default: 512,
				// most web-entities limit it to 4-8kb, so we do.
				Maximal: 8 * 1024,
			},
		},
		NET: NET{
			Host:                      "127.0.0.1",
			Port:                      8888,
			ReadBufferSize:            2 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
	}
}
