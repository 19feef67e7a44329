package errors

// ErrorCode identifies an application error category on the wire.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2
	ErrorCode_NOT_FOUND        ErrorCode = 3
	ErrorCode_ALREADY_EXISTS   ErrorCode = 4
	ErrorCode_UNAUTHENTICATED  ErrorCode = 5
	ErrorCode_FORBIDDEN        ErrorCode = 6
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 7

	ErrorCode_AUTH_INVALID_TOKEN         ErrorCode = 100
	ErrorCode_AUTH_TOKEN_EXPIRED         ErrorCode = 101
	ErrorCode_AUTH_INVALID_API_KEY       ErrorCode = 102
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN ErrorCode = 103

	ErrorCode_RECORDING_NOT_FOUND      ErrorCode = 200
	ErrorCode_RECORDING_UPLOAD_FAILED  ErrorCode = 201
	ErrorCode_MISSING_AUDIO_FILE       ErrorCode = 202
	ErrorCode_UNSUPPORTED_CONTENT_TYPE ErrorCode = 203

	ErrorCode_TRANSCRIPTION_FAILED      ErrorCode = 300
	ErrorCode_TRANSCRIPTION_UNAVAILABLE ErrorCode = 301
	ErrorCode_WEBHOOK_SIGNATURE_INVALID ErrorCode = 302

	ErrorCode_ANALYSIS_FAILED    ErrorCode = 400
	ErrorCode_ANALYSIS_NOT_READY ErrorCode = 401
	ErrorCode_PROCESSING_FAILED  ErrorCode = 402

	ErrorCode_REPORT_GENERATION_FAILED ErrorCode = 500

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 600
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 601
	ErrorCode_SENTIMENT_FAILED           ErrorCode = 602

	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 700
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 701

	ErrorCode_HTTP_OK ErrorCode = 1000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:          "UNKNOWN",
	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_ARGUMENT: "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:   "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:  "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:        "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:  "INVALID_PAYLOAD",

	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_API_KEY:       "AUTH_INVALID_API_KEY",
	ErrorCode_AUTH_INVALID_REFRESH_TOKEN: "AUTH_INVALID_REFRESH_TOKEN",

	ErrorCode_RECORDING_NOT_FOUND:      "RECORDING_NOT_FOUND",
	ErrorCode_RECORDING_UPLOAD_FAILED:  "RECORDING_UPLOAD_FAILED",
	ErrorCode_MISSING_AUDIO_FILE:       "MISSING_AUDIO_FILE",
	ErrorCode_UNSUPPORTED_CONTENT_TYPE: "UNSUPPORTED_CONTENT_TYPE",

	ErrorCode_TRANSCRIPTION_FAILED:      "TRANSCRIPTION_FAILED",
	ErrorCode_TRANSCRIPTION_UNAVAILABLE: "TRANSCRIPTION_UNAVAILABLE",
	ErrorCode_WEBHOOK_SIGNATURE_INVALID: "WEBHOOK_SIGNATURE_INVALID",

	ErrorCode_ANALYSIS_FAILED:    "ANALYSIS_FAILED",
	ErrorCode_ANALYSIS_NOT_READY: "ANALYSIS_NOT_READY",
	ErrorCode_PROCESSING_FAILED:  "PROCESSING_FAILED",

	ErrorCode_REPORT_GENERATION_FAILED: "REPORT_GENERATION_FAILED",

	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_SENTIMENT_FAILED:           "SENTIMENT_FAILED",

	ErrorCode_DB_CONNECTION_FAILED: "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:      "DB_QUERY_FAILED",

	ErrorCode_HTTP_OK: "HTTP_OK",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
