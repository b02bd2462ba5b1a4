package scheme

import (
	"github.com/indigo-web/utils/strcomp"
	"github.com/lite-ws/litews/http/status"
)

type Scheme uint8

const (
	Unknown Scheme = iota
	HTTP
	HTTPS
)

// Parse resolves the token case-insensitively. Everything except http and https
// results in status.ErrHeaderParse.
func Parse(token string) (Scheme, error) {
	switch {
	case strcomp.EqualFold(token, "http"):
		return HTTP, nil
	case strcomp.EqualFold(token, "https"):
		return HTTPS, nil
	default:
		return Unknown, status.NewHeaderParseError(status.UnknownScheme, token)
	}
}

// String returns the symbolic name of the scheme, which is NOT the same as its
// token: HTTP is rendered as Http. Use Token for the wire form.
func (s Scheme) String() string {
	switch s {
	case HTTP:
		return "Http"
	case HTTPS:
		return "Https"
	default:
		return ""
	}
}

// Token returns the lower-case form of the scheme.
func (s Scheme) Token() string {
	switch s {
	case HTTP:
		return "http"
	case HTTPS:
		return "https"
	default:
		return ""
	}
}

func (s Scheme) DefaultPort() uint16 {
	switch s {
	case HTTP:
		return 80
	case HTTPS:
		return 443
	default:
		return 0
	}
}
