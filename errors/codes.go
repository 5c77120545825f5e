package errors

// ErrorCode is a stable machine-readable error identifier returned to
// clients alongside the HTTP status
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_VALIDATION_FAILED
	ErrorCode_DOCUMENT_NOT_FOUND
	ErrorCode_DOCUMENT_GENERATION_FAILED
	ErrorCode_UNSUPPORTED_FORMAT
	ErrorCode_AI_GENERATION_FAILED
	ErrorCode_AI_NOT_CONFIGURED
	ErrorCode_INTEGRATION_CACHE_FAILED
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_DB_CONNECTION_FAILED
	ErrorCode_DB_QUERY_FAILED
	ErrorCode_HTTP_OK
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                    "UNKNOWN",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:          "VALIDATION_FAILED",
	ErrorCode_DOCUMENT_NOT_FOUND:         "DOCUMENT_NOT_FOUND",
	ErrorCode_DOCUMENT_GENERATION_FAILED: "DOCUMENT_GENERATION_FAILED",
	ErrorCode_UNSUPPORTED_FORMAT:         "UNSUPPORTED_FORMAT",
	ErrorCode_AI_GENERATION_FAILED:       "AI_GENERATION_FAILED",
	ErrorCode_AI_NOT_CONFIGURED:          "AI_NOT_CONFIGURED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:       "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_HTTP_OK:                    "OK",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
