package proto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dchest/uniuri"
	json "github.com/json-iterator/go"
	"github.com/lite-ws/litews/http/scheme"
	"github.com/lite-ws/litews/http/status"
	"github.com/stretchr/testify/require"
)

func requireReason(t *testing.T, err error, reason status.Reason) {
	t.Helper()
	require.ErrorIs(t, err, status.ErrHeaderParse)

	var parseErr status.HeaderParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, reason, parseErr.Reason, parseErr.Error())
}

func TestParsePair(t *testing.T) {
	t.Run("whole range", func(t *testing.T) {
		for a := 0; a <= 255; a++ {
			for b := 0; b <= 255; b++ {
				major, minor, err := ParsePair(fmt.Sprintf("%d.%d", a, b))
				require.NoError(t, err)
				require.Equal(t, uint8(a), major)
				require.Equal(t, uint8(b), minor)
			}
		}
	})

	t.Run("leading zeroes", func(t *testing.T) {
		major, minor, err := ParsePair("01.000")
		require.NoError(t, err)
		require.Equal(t, uint8(1), major)
		require.Equal(t, uint8(0), minor)
	})

	t.Run("overflow", func(t *testing.T) {
		for _, token := range []string{"256.0", "0.256", "1000.1", "1.99999999999999999999"} {
			_, _, err := ParsePair(token)
			requireReason(t, err, status.InvalidNumber)
		}
	})

	t.Run("not a number", func(t *testing.T) {
		for _, token := range []string{"1.x", "x.1", "+1.0", "1.-0", " 1.0", "1.0 ", "1..0", ".1", "1.", "1,5.0"} {
			_, _, err := ParsePair(token)
			requireReason(t, err, status.InvalidNumber)
		}
	})

	t.Run("no delimiter", func(t *testing.T) {
		for _, token := range []string{"", "1", "10", "abc"} {
			_, _, err := ParsePair(token)
			requireReason(t, err, status.MissingDelimiter)
		}
	})

	t.Run("trailing segment is ignored", func(t *testing.T) {
		major, minor, err := ParsePair("1.0.1")
		require.NoError(t, err)
		require.Equal(t, uint8(1), major)
		require.Equal(t, uint8(0), minor)

		_, _, err = ParsePair("1.0.garbage")
		require.NoError(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Run("HTTP/1.0", func(t *testing.T) {
		v, err := Parse("HTTP/1.0")
		require.NoError(t, err)
		require.Equal(t, Version{Scheme: scheme.HTTP, Major: 1, Minor: 0}, v)
		require.Equal(t, "Http/1.0", v.String())
	})

	t.Run("https/2.0", func(t *testing.T) {
		v, err := Parse("https/2.0")
		require.NoError(t, err)
		require.Equal(t, New(scheme.HTTPS, 2, 0), v)
	})

	t.Run("lowest and highest", func(t *testing.T) {
		v, err := Parse("http/0.0")
		require.NoError(t, err)
		require.Equal(t, New(scheme.HTTP, 0, 0), v)

		v, err = Parse("HTTPS/255.255")
		require.NoError(t, err)
		require.Equal(t, New(scheme.HTTPS, 255, 255), v)
		require.Equal(t, "Https/255.255", v.String())
	})

	t.Run("extra dot", func(t *testing.T) {
		v, err := Parse("http/1.0.1")
		require.NoError(t, err)
		require.Equal(t, New(scheme.HTTP, 1, 0), v)
	})

	t.Run("extra slash", func(t *testing.T) {
		v, err := Parse("http/1.1/whatever")
		require.NoError(t, err)
		require.Equal(t, New(scheme.HTTP, 1, 1), v)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := Parse("ftp/1.0")
		requireReason(t, err, status.UnknownScheme)
	})

	t.Run("missing scheme", func(t *testing.T) {
		_, err := Parse("/1.0")
		requireReason(t, err, status.UnknownScheme)
	})

	t.Run("missing slash", func(t *testing.T) {
		for _, token := range []string{"", "http", "HTTP1.1", "http\\1.1"} {
			_, err := Parse(token)
			requireReason(t, err, status.MissingDelimiter)
		}
	})

	t.Run("missing minor", func(t *testing.T) {
		_, err := Parse("http/1")
		requireReason(t, err, status.MissingDelimiter)

		_, err = Parse("http/")
		requireReason(t, err, status.MissingDelimiter)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Parse("http/256.0")
		requireReason(t, err, status.InvalidNumber)
	})

	t.Run("non-numeric minor", func(t *testing.T) {
		_, err := Parse("http/1.x")
		requireReason(t, err, status.InvalidNumber)
	})

	t.Run("scheme is checked first", func(t *testing.T) {
		_, err := Parse("ftp/x.x")
		requireReason(t, err, status.UnknownScheme)
	})

	t.Run("random garbage", func(t *testing.T) {
		for range 100 {
			_, err := Parse(uniuri.NewLen(8) + "/1.1")
			require.ErrorIs(t, err, status.ErrHeaderParse)
		}
	})

	t.Run("bytes", func(t *testing.T) {
		v, err := ParseBytes([]byte("HTTP/1.1"))
		require.NoError(t, err)
		require.Equal(t, New(scheme.HTTP, 1, 1), v)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("casing is normalized", func(t *testing.T) {
		for _, token := range []string{"HTTP/1.0", "http/1.0", "hTtP/1.0", "Http/1.0"} {
			v, err := Parse(token)
			require.NoError(t, err)
			require.Equal(t, "Http/1.0", v.String())
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := Parse("Http/1.0")
		require.NoError(t, err)

		second, err := Parse(first.String())
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Equal(t, first.String(), second.String())
	})

	t.Run("json", func(t *testing.T) {
		type model struct {
			Version Version `json:"version"`
		}

		data, err := json.Marshal(model{Version: New(scheme.HTTPS, 1, 1)})
		require.NoError(t, err)
		require.Equal(t, `{"version":"Https/1.1"}`, string(data))

		var m model
		require.NoError(t, json.Unmarshal(data, &m))
		require.Equal(t, New(scheme.HTTPS, 1, 1), m.Version)

		err = json.Unmarshal([]byte(`{"version":"ftp/1.1"}`), &m)
		require.Error(t, err)
	})
}

func TestProtocol(t *testing.T) {
	tcs := []struct {
		Token string
		Want  Protocol
	}{
		{"HTTP/1.0", HTTP10},
		{"HTTP/1.1", HTTP11},
		{"https/1.1", HTTP11},
		{"HTTP/2.0", HTTP2},
		{"HTTP/0.9", Unknown},
		{"HTTP/1.2", Unknown},
		{"HTTP/10.0", Unknown},
	}

	for _, tc := range tcs {
		v, err := Parse(tc.Token)
		require.NoError(t, err)
		require.Equal(t, tc.Want, v.Protocol(), tc.Token)
	}

	require.Equal(t, "HTTP/1.1", HTTP11.String())
	require.Equal(t, "HTTP/2", HTTP2.String())
	require.Empty(t, Unknown.String())
	require.True(t, HTTP1&HTTP10 == HTTP10)
}

func BenchmarkParse(b *testing.B) {
	b.Run("HTTP/1.1", func(b *testing.B) {
		b.ReportAllocs()

		for range b.N {
			_, _ = Parse("HTTP/1.1")
		}
	})

	b.Run("String", func(b *testing.B) {
		v := New(scheme.HTTP, 1, 1)
		buff := make([]byte, 0, 32)
		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			buff = v.AppendTo(buff[:0])
		}
	})
}
