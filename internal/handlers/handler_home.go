package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth reports that the server is up. It does not touch the database.
func getHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// registerHealthRoutes registers the public '/health' route
func registerHealthRoutes(r *gin.Engine) {
	r.GET("/health", getHealth)
}
