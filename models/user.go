package models

import "time"

// User is one document in the "users" collection. The document ID is the
// store-generated 24-hex id; Count mirrors len(Log).
type User struct {
	ID       string           `json:"id" firestore:"-"`
	Username string           `json:"username" firestore:"username"`
	Count    int              `json:"-" firestore:"count"`
	Log      []ExerciseRecord `json:"log" firestore:"log"`
}

// ExerciseRecord is one logged activity entry, immutable once appended.
// Date is normalized to UTC calendar-date midnight.
type ExerciseRecord struct {
	Description string    `json:"description" firestore:"description"`
	Duration    float64   `json:"duration" firestore:"duration"`
	Date        time.Time `json:"date" firestore:"date"`
}
