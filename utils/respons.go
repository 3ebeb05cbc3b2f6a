package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope used for every response body.
type JSONResponse struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, JSONResponse{Data: data})
}

// RespondError writes err using its HTTP status when it carries one.
// Anything else is logged and hidden behind a 500.
func RespondError(c *gin.Context, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.HTTPStatus(), JSONResponse{Error: err.Error()})
		return
	}

	ErrorLogger.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, JSONResponse{Error: "Internal server error"})
}
