package proto

import (
	"math"
	"strconv"

	"github.com/indigo-web/utils/uf"
	"github.com/lite-ws/litews/http/scheme"
	"github.com/lite-ws/litews/http/status"
)

// Version is a protocol version token, e.g. HTTP/1.1, split into its scheme and
// a numeric major/minor pair.
type Version struct {
	Scheme scheme.Scheme
	Major  uint8
	Minor  uint8
}

func New(s scheme.Scheme, major, minor uint8) Version {
	return Version{
		Scheme: s,
		Major:  major,
		Minor:  minor,
	}
}

// Parse parses a token in the form of <scheme>/<major>.<minor>. Only the first two
// segments around each delimiter are considered, so http/1.0.1 is the same as
// http/1.0. Every failure is a status.HeaderParseError.
func Parse(token string) (Version, error) {
	schemeToken, versionToken, found := cutbyte(token, '/')
	if !found {
		return Version{}, status.NewHeaderParseError(status.MissingDelimiter, token)
	}

	versionToken, _, _ = cutbyte(versionToken, '/')

	s, err := scheme.Parse(schemeToken)
	if err != nil {
		return Version{}, err
	}

	major, minor, err := ParsePair(versionToken)
	if err != nil {
		return Version{}, err
	}

	return New(s, major, minor), nil
}

// ParseBytes is the same as Parse. The passed slice must not be modified as long as
// the error, if any, is in use.
func ParseBytes(token []byte) (Version, error) {
	return Parse(uf.B2S(token))
}

// ParsePair parses <major>.<minor>, where both are decimal numbers fitting into uint8.
// Anything after a second dot is ignored.
func ParsePair(token string) (major, minor uint8, err error) {
	majorToken, minorToken, found := cutbyte(token, '.')
	if !found {
		return 0, 0, status.NewHeaderParseError(status.MissingDelimiter, token)
	}

	minorToken, _, _ = cutbyte(minorToken, '.')

	major, ok := parseUint8(majorToken)
	if !ok {
		return 0, 0, status.NewHeaderParseError(status.InvalidNumber, majorToken)
	}

	minor, ok = parseUint8(minorToken)
	if !ok {
		return 0, 0, status.NewHeaderParseError(status.InvalidNumber, minorToken)
	}

	return major, minor, nil
}

// String renders the version using the scheme's symbolic name, so parsing
// HTTP/1.0 and rendering it back produces Http/1.0.
func (v Version) String() string {
	buff := make([]byte, 0, len("Https/255.255"))

	return string(v.AppendTo(buff))
}

// AppendTo appends the same representation String returns to the buffer.
func (v Version) AppendTo(buff []byte) []byte {
	buff = append(buff, v.Scheme.String()...)
	buff = append(buff, '/')
	buff = strconv.AppendUint(buff, uint64(v.Major), 10)
	buff = append(buff, '.')

	return strconv.AppendUint(buff, uint64(v.Minor), 10)
}

// Protocol returns the wire protocol the version denotes. Scheme isn't taken into
// account.
func (v Version) Protocol() Protocol {
	return Lookup(v.Major, v.Minor)
}

func (v Version) MarshalText() ([]byte, error) {
	return v.AppendTo(nil), nil
}

func (v *Version) UnmarshalText(text []byte) (err error) {
	*v, err = Parse(string(text))
	return err
}

func parseUint8(str string) (num uint8, ok bool) {
	if len(str) == 0 {
		return 0, false
	}

	var n uint16

	for i := 0; i < len(str); i++ {
		digit := str[i] - '0'
		if digit > 9 {
			return 0, false
		}

		n = n*10 + uint16(digit)
		if n > math.MaxUint8 {
			return 0, false
		}
	}

	return uint8(n), true
}

func cutbyte(str string, sep byte) (prefix, postfix string, found bool) {
	for i := 0; i < len(str); i++ {
		if str[i] == sep {
			return str[:i], str[i+1:], true
		}
	}

	return str, "", false
}
