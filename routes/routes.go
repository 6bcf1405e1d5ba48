package routes

import (
	"net/http"
	"time"

	"MediSure/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, ctl *controllers.Controller, environment string) {

	//public
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "MediSure API is running",
			"environment": environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	ctl.Auth(r.Group("/api/auth"))

	//private routes
	ctl.ScanReport(r.Group("/api/medical", ctl.Protect()))
	ctl.Medication(r.Group("/api/medical", ctl.Protect()))
	ctl.Profile(r.Group("/api/profile", ctl.Protect()))
}
