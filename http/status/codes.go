package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes the server is able to respond with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest        Code = 400 // RFC 9110, 15.5.1
	NotFound          Code = 404 // RFC 9110, 15.5.5
	RequestTimeout    Code = 408 // RFC 9110, 15.5.9
	RequestURITooLong Code = 414 // RFC 9110, 15.5.15

	InternalServerError     Code = 500 // RFC 9110, 15.6.1
	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

// KnownCodes lists every code declared above, in ascending order.
var KnownCodes = []Code{
	OK,
	BadRequest, NotFound, RequestTimeout, RequestURITooLong,
	InternalServerError, NotImplemented, HTTPVersionNotSupported,
}

// Text returns a text for the HTTP status code. It returns the "Unknown Status Code"
// if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case RequestTimeout:
		return "Request Timeout"
	case RequestURITooLong:
		return "Request URI Too Long"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return "Unknown Status Code"
	}
}

// StringCode returns the code in its decimal form, as it appears in a status line.
func StringCode(code Code) string {
	return strconv.FormatUint(uint64(code), 10)
}
