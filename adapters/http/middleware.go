package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GaluhWikri/Portofolio-Galuh/pkg/apperror"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

// ErrorMiddleware turns errors attached via c.Error into the `{message}`
// body the dashboard expects, mapped to a status by the error taxonomy.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)
		if status >= 500 {
			log.Error("request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path))
		}
		c.JSON(status, gin.H{"message": apperror.UserMessage(err)})
	}
}
