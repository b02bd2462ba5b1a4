package status

import "strconv"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest              = NewError(BadRequest, "bad request")
	ErrHeaderParse             = NewError(BadRequest, "malformed protocol version")
	ErrTooLongRequestLine      = NewError(RequestURITooLong, "request line is too long")
	ErrRequestTimeout          = NewError(RequestTimeout, "request timeout")
	ErrInternalServerError     = NewError(InternalServerError, "internal server error")
	ErrHTTPVersionNotSupported = NewError(HTTPVersionNotSupported, "HTTP version not supported")

	// ErrShutdown is returned by the server after it was stopped on demand.
	ErrShutdown = NewError(InternalServerError, "shutdown")
)

// Reason narrows down the cause of a HeaderParseError.
type Reason uint8

const (
	MissingDelimiter Reason = iota + 1
	UnknownScheme
	InvalidNumber
)

func (r Reason) String() string {
	switch r {
	case MissingDelimiter:
		return "missing delimiter"
	case UnknownScheme:
		return "unknown scheme"
	case InvalidNumber:
		return "invalid numeric component"
	default:
		return "unknown reason"
	}
}

// HeaderParseError is returned whenever a scheme or protocol version token doesn't
// conform to its grammar. All of them match ErrHeaderParse via errors.Is, so the
// Reason is purely informational.
type HeaderParseError struct {
	Reason Reason
	// Token is the offending piece of the input, not necessarily the whole of it.
	Token string
}

func NewHeaderParseError(reason Reason, token string) error {
	return HeaderParseError{
		Reason: reason,
		Token:  token,
	}
}

func (h HeaderParseError) Error() string {
	return ErrHeaderParse.Error() + ": " + h.Reason.String() + ": " + strconv.Quote(h.Token)
}

func (h HeaderParseError) Unwrap() error {
	return ErrHeaderParse
}
