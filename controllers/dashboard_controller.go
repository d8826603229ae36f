package controllers

import (
	"net/http"
	"time"

	"github.com/itsUtkarshOjha/fitlogger/config"
	"github.com/itsUtkarshOjha/fitlogger/services"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	userID := c.Param("userId")

	svc := services.NewDashboardService(config.DB)
	summary, err := svc.Summary(userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "summary": summary})
}
