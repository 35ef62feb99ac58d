package models

// RegisterInput is the POST /users payload.
type RegisterInput struct {
	Username string `json:"username" form:"username"`
}

// ExerciseInput carries the raw POST /exercises fields. Everything stays a
// string here; validation owns all parsing and coercion.
type ExerciseInput struct {
	UserID      string `json:"userId" form:"userId"`
	Description string `json:"description" form:"description"`
	Duration    string `json:"duration" form:"duration"`
	Date        string `json:"date" form:"date"`
}

// LogQuery holds the raw GET /logs query parameters. Malformed values are
// ignored at query time rather than rejected.
type LogQuery struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}
