package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agorahq/agora/pkg/apperror"
)

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Internal failures keep their detail in the log only; the client gets
	// a generic message.
	if code >= http.StatusInternalServerError {
		logrus.WithError(err).Error("internal error")
		c.JSON(code, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
