package routes

import (
	"github.com/itsUtkarshOjha/fitlogger/controllers"
	"github.com/itsUtkarshOjha/fitlogger/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.SessionMiddleware())

	weight := r.Group("/api/v1/weight")
	{
		weight.GET("/:userId", controllers.GetWeights)
		weight.POST("/", controllers.PostWeight)
		weight.PATCH("/:weightId", controllers.UpdateWeight)
		weight.DELETE("/:weightId", controllers.DeleteWeight)
	}

	workout := r.Group("/api/v1/workout")
	{
		workout.POST("/", controllers.PostWorkout)
		workout.GET("/:userId/:type", controllers.GetWorkouts)
		workout.PATCH("/:workoutId", controllers.UpdateWorkout)
		workout.DELETE("/:workoutId", controllers.DeleteWorkout)
	}

	r.GET("/api/v1/dashboard/:userId", controllers.GetDashboard)

	// Raw body route: signature verification needs the exact payload bytes.
	r.POST("/api/webhooks", controllers.HandleProviderEvent)

	return r
}
