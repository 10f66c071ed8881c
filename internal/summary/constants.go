package summary

// Failure labels printed in front of a handled error's message
const (
	LabelSummarizeFailure = "Something went wrong"
	LabelErrorDemoFailure = "Error Error Error"
)

// Operation names used in logs and metrics
const (
	OperationSummarize = "fetch_users_and_summarize"
	OperationErrorDemo = "test_error"
)

// Notices
const (
	MsgFetchedUsers     = "Fetched users successfully!"
	MsgFallbackTemplate = "No city found starting with %q, falling back to %q"
)

// ErrMsgInvalidEndpoint prefixes failures of the error demonstration
const ErrMsgInvalidEndpoint = "invalid endpoint"
