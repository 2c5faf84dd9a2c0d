package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/signin-widget-helpers/internal/adapters/http/dto"
)

// notFound answers unknown routes with the standard error envelope.
func notFound(c *gin.Context) {
	dto.AbortWithErrorCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.URL.Path)
}

// methodNotAllowed answers known routes called with the wrong method.
func methodNotAllowed(c *gin.Context) {
	dto.AbortWithErrorCode(c, dto.ErrorCodeMethodNotAllowed, c.Request.Method+" is not allowed on "+c.Request.URL.Path)
}
