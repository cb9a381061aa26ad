package api

import "github.com/handup/handup-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "passwords do not match",

		1100: store.ErrUsernameTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: store.ErrInvalidCredentials.Error(),

		1200: store.ErrRequestNotFound.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorPasswordMismatch   = errorJSON(1012)

	errorAccountTaken       = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorRequestNotFound = errorJSON(1200)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
