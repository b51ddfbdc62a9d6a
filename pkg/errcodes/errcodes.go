package errcodes

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	// Upstream fetch failures.
	NetworkError ErrorCode = "NetworkError" // transport/connectivity failure
	HTTPError    ErrorCode = "HttpError"    // non-2xx status
	ParseError   ErrorCode = "ParseError"   // malformed JSON or unexpected shape

	InvalidSortCriterion ErrorCode = "InvalidSortCriterion"
)
