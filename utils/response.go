package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the failure as plain text, status code plus a single
// message line. Legacy clients parse the body verbatim, so no JSON envelope.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

// SuccessResponse writes a flat JSON body.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
