package controllers

import (
	"errors"
	"net/http"

	"github.com/itsUtkarshOjha/fitlogger/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the {status:"fail"} envelope.
// Storage failures stay opaque to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "fail", "message": "internal server error"})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
}
