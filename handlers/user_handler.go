package handlers

import (
	"ExerciseTracker/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes sets up the User routes
func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	router.POST("/users", userController.Register)
}
