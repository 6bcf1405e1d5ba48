package util

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse merges fields into the success envelope.
func SuccessResponse(fields gin.H) gin.H {
	out := gin.H{"success": true}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func FailedResponse(err error) gin.H {
	appErr := AsAppError(err)
	out := gin.H{
		"success": false,
		"error":   appErr.Message,
		"kind":    appErr.Kind,
	}
	if len(appErr.Details) > 0 {
		out["details"] = appErr.Details
	}
	return out
}

// Fail writes the failure envelope with the status that matches the error kind.
func Fail(c *gin.Context, err error) {
	c.JSON(StatusOf(err), FailedResponse(err))
}

// Abort is Fail for middleware: the remaining handlers are skipped.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(StatusOf(err), FailedResponse(err))
}
