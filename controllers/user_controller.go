package controllers

import (
	"ExerciseTracker/models"
	"ExerciseTracker/utils"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

var usernamePattern = regexp.MustCompile(`^\w+$`)

type UserController struct {
	Store UserStore
}

func NewUserController(store UserStore) *UserController {
	return &UserController{Store: store}
}

// Register creates a user with a unique username and answers its generated
// id. The store rejects a taken username, so there is no lookup here.
func (h *UserController) Register(ctx *gin.Context) {
	var input models.RegisterInput
	if err := ctx.ShouldBind(&input); err != nil || !usernamePattern.MatchString(input.Username) {
		ctx.Error(utils.NewCustomError(http.StatusBadRequest, "username invalid."))
		return
	}

	user, err := h.Store.Create(ctx, input.Username)
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, gin.H{
		"username": user.Username,
		"id":       user.ID,
	})
}
