package address

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const DefaultHost = "0.0.0.0"

// Join returns host:port, substituting DefaultHost for an empty host.
func Join(host string, port uint16) string {
	if len(host) == 0 {
		host = DefaultHost
	}

	return net.JoinHostPort(host, strconv.Itoa(int(port)))
}

// Validate checks whether the host is something we are able to bind to without
// resolving it first.
func Validate(host string) error {
	if len(host) == 0 || IsIP(host) || IsLocalhost(host) {
		return nil
	}

	return fmt.Errorf("not an ip address: %q", host)
}

func IsLocalhost(host string) bool {
	return strings.EqualFold(host, "localhost")
}

func IsIP(host string) bool {
	return net.ParseIP(host) != nil
}
