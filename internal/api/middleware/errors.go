package middleware

import (
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"Additional error details"`
}

// HandleError writes an ErrorResponse. Only used for client-side and
// internal failures; backend failures never reach here.
func HandleError(resp *restful.Response, err error, code int) {
	errorResponse := ErrorResponse{
		Error: statusMessage(code),
		Code:  code,
	}
	if err != nil {
		errorResponse.Details = err.Error()
	}

	if writeErr := resp.WriteHeaderAndEntity(code, errorResponse); writeErr != nil {
		log.Error().Err(writeErr).Int("code", code).Msg("Failed to write error response")
	}
}

func statusMessage(code int) string {
	switch code {
	case 400:
		return "invalid request"
	case 500:
		return "internal server error"
	default:
		return "request failed"
	}
}
