package route

import (
	"ExerciseTracker/controllers"
	"ExerciseTracker/handlers"
	"ExerciseTracker/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints against the given store.
func RegisterRoutes(router *gin.Engine, store controllers.UserStore) {
	userController := controllers.NewUserController(store)
	exerciseController := controllers.NewExerciseController(store)

	handlers.RegisterUserRoutes(router, userController)
	handlers.RegisterExerciseRoutes(router, exerciseController)

	router.NoRoute(func(ctx *gin.Context) {
		utils.ErrorResponse(ctx, http.StatusNotFound, "not found")
	})
}
