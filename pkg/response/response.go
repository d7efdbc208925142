package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the {"msg": ...} body used for confirmations and failures.
type Message struct {
	Msg       string            `json:"msg"`
	Errors    map[string]string `json:"errors,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Msg writes a plain {"msg": ...} body.
func Msg(ctx *gin.Context, status int, msg string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, Message{Msg: msg})
}

// Error aborts the request with a {"msg": ...} body carrying the request id
// and, for validation failures, per-field details.
func Error(ctx *gin.Context, status int, msg string, details map[string]string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, Message{
		Msg:       msg,
		Errors:    details,
		RequestID: ctx.GetString("request_id"),
	})
}

// ServerError is the generic 500 reply; the cause is logged, never returned.
func ServerError(ctx *gin.Context) {
	Error(ctx, http.StatusInternalServerError, "Server Error", nil)
}
