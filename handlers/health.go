package handlers

import (
	"net/http"

	"slotbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the last dependency snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	overall := "ok"
	if (status.Mongo != nil && !*status.Mongo) || (status.Redis != nil && !*status.Redis) {
		overall = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    overall,
		"message":   "Hi, I'm Slotbook",
		"mongo":     status.Mongo,
		"redis":     status.Redis,
		"checkedAt": status.CheckedAt,
	})
}
