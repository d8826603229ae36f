package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/itsUtkarshOjha/fitlogger/config"
	"github.com/itsUtkarshOjha/fitlogger/models"
	"github.com/itsUtkarshOjha/fitlogger/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type WorkoutInput struct {
	UserID        string          `json:"userId" binding:"required"`
	Exercise      string          `json:"exercise" binding:"required"`
	Notes         *string         `json:"notes"`
	MuscleGroup   *string         `json:"muscleGroup"`
	MovementType  *string         `json:"movementType"`
	TrainingStyle *string         `json:"trainingStyle"`
	Duration      *int            `json:"duration"`
	LiftWeight    pq.Float64Array `json:"lift_weight"`
	Reps          pq.Int64Array   `json:"reps"`
	RecordedAt    time.Time       `json:"recordedAt" binding:"required"`
}

func PostWorkout(c *gin.Context) {
	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err)
		return
	}

	exercise := models.Exercise{
		UserID:        input.UserID,
		Exercise:      input.Exercise,
		Notes:         input.Notes,
		MuscleGroup:   input.MuscleGroup,
		MovementType:  input.MovementType,
		TrainingStyle: input.TrainingStyle,
		Duration:      input.Duration,
		LiftWeight:    input.LiftWeight,
		Reps:          input.Reps,
		RecordedAt:    input.RecordedAt,
	}

	svc := services.NewWorkoutService(config.DB)
	if err := svc.CreateWorkout(&exercise); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "exercise": exercise})
}

func GetWorkouts(c *gin.Context) {
	userID := c.Param("userId")
	selector := c.Param("type")

	svc := services.NewWorkoutService(config.DB)
	exercises, err := svc.ListWorkouts(userID, selector)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "exercises": exercises})
}

func UpdateWorkout(c *gin.Context) {
	workoutID, err := strconv.ParseUint(c.Param("workoutId"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var patch services.WorkoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, err)
		return
	}

	svc := services.NewWorkoutService(config.DB)
	exercise, err := svc.UpdateWorkout(uint(workoutID), &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "exercise": exercise})
}

func DeleteWorkout(c *gin.Context) {
	workoutID, err := strconv.ParseUint(c.Param("workoutId"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	svc := services.NewWorkoutService(config.DB)
	if err := svc.DeleteWorkout(uint(workoutID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
