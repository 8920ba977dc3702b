package utils

import "github.com/gin-gonic/gin"

// JSONDetail writes an error body in the {"detail": "..."} shape used across
// the API.
func JSONDetail(c *gin.Context, code int, detail string) {
	c.JSON(code, gin.H{"detail": detail})
}

// JSONMessage writes a confirmation body, e.g. after a delete.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
