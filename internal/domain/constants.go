package domain

// SummaryLineFormat is the format of one reported summary line.
const SummaryLineFormat = "User ID %d: %s works at %s"

// Error kind labels
const (
	ErrorKindRequestFailed = "request_failed"
	ErrorKindParse         = "parse_error"
	ErrorKindNoMatch       = "no_match"
	ErrorKindTransport     = "transport_error"
	ErrorKindUnknown       = "unknown"
)
