package handlers

import (
	"ExerciseTracker/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterExerciseRoutes sets up the Exercise routes
func RegisterExerciseRoutes(router *gin.Engine, exerciseController *controllers.ExerciseController) {
	router.POST("/exercises", exerciseController.Add)
	router.GET("/logs", exerciseController.GetLog)
}
