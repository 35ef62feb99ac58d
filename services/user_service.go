package services

import (
	"ExerciseTracker/config/database"
	"ExerciseTracker/models"
	"ExerciseTracker/utils"
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

type UserService struct {
	FirestoreClient *firestore.Client
}

// NewUserService initializes UserService with the shared FirestoreClient
func NewUserService() *UserService {
	return &UserService{
		FirestoreClient: database.GetFirestoreClient(),
	}
}

// newUserID generates the 24-hex opaque identifier used as the document ID.
func newUserID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// FindByUsername returns the user owning the username, or nil when none does.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	iter := s.FirestoreClient.Collection(usersCollection).
		Where("username", "==", username).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		log.Printf("Error querying username %s: %v", username, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "database error.")
	}
	return docToUser(doc)
}

// FindByID returns the user stored under the id, or nil when none is.
func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := s.FirestoreClient.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		log.Printf("Error fetching user %s: %v", id, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "database error.")
	}
	return docToUser(doc)
}

// Create stores a new user with an empty log. The uniqueness check and the
// write run in one transaction, so two racing registrations for the same
// username cannot both succeed.
func (s *UserService) Create(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{Username: username, Log: []models.ExerciseRecord{}}
	docRef := s.FirestoreClient.Collection(usersCollection).Doc(newUserID())

	err := s.FirestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := s.FirestoreClient.Collection(usersCollection).
			Where("username", "==", username).Limit(1)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return utils.NewCustomError(http.StatusForbidden, "username already taken.")
		}
		return tx.Create(docRef, user)
	})
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			return nil, customErr
		}
		log.Printf("Error creating user %s: %v", username, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "database error.")
	}

	user.ID = docRef.ID
	return user, nil
}

// AppendExercise appends one record to the user's log and persists the whole
// document, keeping count in sync with the log length.
func (s *UserService) AppendExercise(ctx context.Context, user *models.User, record models.ExerciseRecord) (*models.User, error) {
	user.Log = append(user.Log, record)
	user.Count = len(user.Log)

	_, err := s.FirestoreClient.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		log.Printf("Error appending exercise for user %s: %v", user.ID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "database error.")
	}
	return user, nil
}

func docToUser(doc *firestore.DocumentSnapshot) (*models.User, error) {
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		log.Printf("Error parsing user document %s: %v", doc.Ref.ID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "database error.")
	}
	user.ID = doc.Ref.ID
	return &user, nil
}
