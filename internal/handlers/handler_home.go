package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome returns a short identification banner for the API root.
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "tokokas", "message": "bookkeeping and inventory API"})
}
