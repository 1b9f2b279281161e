package utils

import "github.com/gin-gonic/gin"

func SuccessResponse(data interface{}) gin.H {
	return gin.H{"success": true, "data": data}
}

func FailedResponse(err error) gin.H {
	return gin.H{"success": false, "error": err.Error()}
}
