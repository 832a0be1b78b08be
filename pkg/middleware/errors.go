package middleware

import (
	"travel-journal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// WriteError renders err with the status of its kind. Errors outside the
// apperr taxonomy become a bare 500.
func WriteError(c *gin.Context, err error) {
	body := gin.H{"error": apperr.Message(err)}
	if kind := apperr.KindOf(err); kind != "" {
		body["code"] = kind
	}
	c.JSON(apperr.HTTPStatus(err), body)
}
