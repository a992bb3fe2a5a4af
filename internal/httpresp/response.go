package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted is the success-flag payload of delete operations.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
