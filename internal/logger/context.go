package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ContextKey = "logger"

// FromGin returns the request-scoped logger, or the global one.
func FromGin(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(ContextKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return zap.L()
}
