package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gym-saas/internal/httperr"
	"github.com/BruksfildServices01/gym-saas/internal/logger"
)

// ErrorHandler is the single place where errors become responses. Handlers
// and middlewares only call c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if _, ok := httperr.AsBusiness(err); !ok {
			logger.FromGin(c).Error("unhandled error",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}

		httperr.Respond(c, err)
	}
}

// Recovery turns a panic into an internal error for ErrorHandler to render.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromGin(c).Error("panic recovered",
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				_ = c.Error(fmt.Errorf("panic: %v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}
