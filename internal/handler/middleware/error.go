package middleware

import (
	"log/slog"
	"net/http"

	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler renders errors recorded with c.Error by handlers that did not
// write a response themselves. Public errors carry their own body; private
// errors are mapped through their booking error kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := httperr.StatusFor(last.Err)
		resp := httperr.Response{Status: status}
		if status == http.StatusInternalServerError {
			slog.ErrorContext(c.Request.Context(), "unhandled error",
				"request_id", GetRequestID(c),
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, stackLines),
			)
			resp.Error.Message = "Internal server error"
		} else {
			resp.Error.Message = last.Err.Error()
			resp.Detail = gin.H{"kind": errs.Kind(last.Err)}
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
