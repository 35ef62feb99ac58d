package controllers

import (
	"ExerciseTracker/models"
	"ExerciseTracker/services"
	"ExerciseTracker/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Store UserStore
}

func NewExerciseController(store UserStore) *ExerciseController {
	return &ExerciseController{Store: store}
}

// Add validates the raw exercise fields, appends the record to the owner's
// log and echoes the stored values.
func (h *ExerciseController) Add(ctx *gin.Context) {
	var input models.ExerciseInput
	// A bind failure leaves fields empty; validation reports them as missing.
	_ = ctx.ShouldBind(&input)

	record, err := services.ValidateExercise(input)
	if err != nil {
		ctx.Error(err)
		return
	}

	user, err := h.Store.FindByID(ctx, input.UserID)
	if err != nil {
		ctx.Error(err)
		return
	}
	if user == nil {
		ctx.Error(utils.NewCustomError(http.StatusForbidden, "unknown _id."))
		return
	}

	updated, err := h.Store.AppendExercise(ctx, user, *record)
	if err != nil {
		ctx.Error(err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, gin.H{
		"username":    updated.Username,
		"id":          updated.ID,
		"description": record.Description,
		"duration":    record.Duration,
		"date":        record.Date.Format(services.DateLayout),
	})
}

// GetLog answers the user's exercise log, sorted by date ascending and
// optionally narrowed by the from/to/limit query parameters.
func (h *ExerciseController) GetLog(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if !services.UserIDPattern.MatchString(userID) {
		ctx.Error(utils.NewCustomError(http.StatusForbidden, "unknown userId."))
		return
	}

	user, err := h.Store.FindByID(ctx, userID)
	if err != nil {
		ctx.Error(err)
		return
	}
	if user == nil {
		ctx.Error(utils.NewCustomError(http.StatusForbidden, "unknown userId."))
		return
	}

	var query models.LogQuery
	_ = ctx.ShouldBindQuery(&query)

	entries := make([]gin.H, 0, len(user.Log))
	for _, record := range services.FilterLog(user.Log, query) {
		entries = append(entries, gin.H{
			"description": record.Description,
			"duration":    record.Duration,
			"date":        record.Date.Format(services.DateLayout),
		})
	}

	utils.SuccessResponse(ctx, http.StatusOK, gin.H{
		"username": user.Username,
		"id":       user.ID,
		"log":      entries,
	})
}
