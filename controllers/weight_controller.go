package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/itsUtkarshOjha/fitlogger/config"
	"github.com/itsUtkarshOjha/fitlogger/services"

	"github.com/gin-gonic/gin"
)

func GetWeights(c *gin.Context) {
	userID := c.Param("userId")
	number, _ := strconv.Atoi(c.DefaultQuery("number", "0"))

	svc := services.NewWeightService(config.DB)
	weights, err := svc.ListWeights(userID, number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "weights": weights})
}

type WeightInput struct {
	UserID     string    `json:"userId" binding:"required"`
	Weight     float64   `json:"weight" binding:"required,gt=0"`
	RecordedAt time.Time `json:"recordedAt" binding:"required"`
}

func PostWeight(c *gin.Context) {
	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	svc := services.NewWeightService(config.DB)
	weight, err := svc.CreateWeight(input.UserID, input.Weight, input.RecordedAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "weight": weight})
}

func UpdateWeight(c *gin.Context) {
	weightID, err := strconv.ParseUint(c.Param("weightId"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var input struct {
		Weight float64 `json:"weight" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	svc := services.NewWeightService(config.DB)
	weight, err := svc.UpdateWeight(uint(weightID), input.Weight)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "weight": weight})
}

func DeleteWeight(c *gin.Context) {
	weightID, err := strconv.ParseUint(c.Param("weightId"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	svc := services.NewWeightService(config.DB)
	if err := svc.DeleteWeight(uint(weightID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
