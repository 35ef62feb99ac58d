package controllers

import (
	"ExerciseTracker/models"
	"context"
)

// UserStore is the persistence contract the controllers depend on. All
// methods answer a *utils.CustomError on storage failure; the lookups return
// a nil user when nothing matches.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, username string) (*models.User, error)
	AppendExercise(ctx context.Context, user *models.User, record models.ExerciseRecord) (*models.User, error)
}
