package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
)

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"     validate:"max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// EnrollRequest defines the payload for adding a language.
type EnrollRequest struct {
	LangID int64 `json:"lang_id" validate:"required,gt=0"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// SubmitExerciseRequest defines the payload for submitting an exercise.
// Score is a pointer so that a score of 0 is distinguishable from a missing one.
type SubmitExerciseRequest struct {
	ExerciseID int64  `json:"ex_id"   validate:"required"`
	Score      *int   `json:"score"   validate:"required"`
	LangID     *int64 `json:"lang_id" validate:"omitempty,gt=0"`
}

// SubmitExerciseResponse reports the new progress, or null without a language.
type SubmitExerciseResponse struct {
	Message     string   `json:"message"`
	NewProgress *float64 `json:"new_progress"`
}

// TranslateRequest defines the payload for the translate endpoint.
type TranslateRequest struct {
	Text string `json:"text" validate:"required"`
	Src  string `json:"src"`
	Tgt  string `json:"tgt"`
}

// TranslateResponse is returned by the translate endpoint.
type TranslateResponse struct {
	Translated string `json:"translated"`
}

// ChatRequest defines the payload for the chatbot endpoint.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse is returned by the chatbot endpoint.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ReminderResponse reports how many reminders were delivered.
type ReminderResponse struct {
	Sent int `json:"sent"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}
