package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithCount is used by list endpoints that report how many records
// were returned alongside the data itself.
func SuccessWithCount(c *gin.Context, statusCode int, data interface{}, count int) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"details": details,
	})
}
