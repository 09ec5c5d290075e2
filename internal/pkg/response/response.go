package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {"success":true,"data":...}
// or {"success":false,"error":{"code","message"[,"details"]}}.

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{"success": true, "data": data})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message, "details": details},
	})
}
