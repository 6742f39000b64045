package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/api/shared"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/mocks"
	"github.com/phrazzld/lingua-api/internal/service"
	"github.com/phrazzld/lingua-api/internal/service/personalization"
	"github.com/phrazzld/lingua-api/internal/service/proxy"
	"github.com/phrazzld/lingua-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &domain.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}

// withUser adapts an authenticated handler for direct testing.
func withUser(h func(http.ResponseWriter, *http.Request, *domain.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { h(w, r, testUser) }
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestSignup(t *testing.T) {
	t.Parallel()

	accounts := &mocks.MockAccountService{
		SignupFn: func(_ context.Context, name, email, _ string) (string, *domain.User, error) {
			if email == "taken@example.com" {
				return "", nil, service.ErrDuplicateEmail
			}
			return "tok", &domain.User{ID: testUser.ID, Name: name, Email: email, HashedPassword: "secret-hash"}, nil
		},
	}
	h := http.HandlerFunc(NewAuthHandler(accounts).Signup)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       map[string]string{"name": "Ana", "email": "ana@example.com", "password": "p"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "duplicate email",
			body:       map[string]string{"email": "taken@example.com", "password": "p"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email already registered",
		},
		{
			name:       "missing email",
			body:       map[string]string{"password": "p"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid email: required field",
		},
		{
			name:       "bad email",
			body:       map[string]string{"email": "nope", "password": "p"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid email: invalid email format",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doRequest(t, h, http.MethodPost, "/api/signup", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rec))
				return
			}

			var resp AuthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "tok", resp.Token)
			assert.Equal(t, "ana@example.com", resp.User.Email)
			assert.Equal(t, "Ana", resp.User.Name)
			assert.NotContains(t, rec.Body.String(), "secret-hash")
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	accounts := &mocks.MockAccountService{
		LoginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if password != "right" {
				return "", nil, service.ErrInvalidCredentials
			}
			return "tok", testUser, nil
		},
	}
	h := http.HandlerFunc(NewAuthHandler(accounts).Login)

	rec := doRequest(t, h, http.MethodPost, "/api/login", map[string]string{"email": "ana@example.com", "password": "right"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"tok"`)

	rec = doRequest(t, h, http.MethodPost, "/api/login", map[string]string{"email": "ana@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", errorMessage(t, rec))
}

func TestLedgerHandler(t *testing.T) {
	t.Parallel()

	var enrolledLang int64
	ledger := &mocks.MockLedgerService{
		ListLanguagesFn: func(context.Context) ([]domain.Language, error) {
			return []domain.Language{{ID: 1, Name: "English"}, {ID: 2, Name: "Spanish"}}, nil
		},
		ListEnrollmentsFn: func(_ context.Context, userID uuid.UUID) ([]domain.EnrollmentView, error) {
			assert.Equal(t, testUser.ID, userID)
			return nil, nil
		},
		EnrollFn: func(_ context.Context, _ uuid.UUID, languageID int64) (*domain.Enrollment, error) {
			switch languageID {
			case 2:
				return nil, service.ErrDuplicateEnrollment
			case 99:
				return nil, service.ErrLanguageNotFound
			}
			enrolledLang = languageID
			return &domain.Enrollment{LanguageID: languageID}, nil
		},
	}
	h := NewLedgerHandler(ledger)

	rec := doRequest(t, withUser(h.ListLanguages), http.MethodGet, "/api/languages", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"English"},{"id":2,"name":"Spanish"}]`, rec.Body.String())

	rec = doRequest(t, withUser(h.ListEnrollments), http.MethodGet, "/api/user/languages", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	enroll := withUser(h.Enroll)

	rec = doRequest(t, enroll, http.MethodPost, "/api/user/languages", map[string]int64{"lang_id": 3})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Language added"}`, rec.Body.String())
	assert.Equal(t, int64(3), enrolledLang)

	rec = doRequest(t, enroll, http.MethodPost, "/api/user/languages", map[string]int64{"lang_id": 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Already added", errorMessage(t, rec))

	rec = doRequest(t, enroll, http.MethodPost, "/api/user/languages", map[string]int64{"lang_id": 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, enroll, http.MethodPost, "/api/user/languages", map[string]int64{"lang_id": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLedgerHandlerStorageFailure(t *testing.T) {
	t.Parallel()

	ledger := &mocks.MockLedgerService{
		ListLanguagesFn: func(context.Context) ([]domain.Language, error) {
			return nil, errors.New("pq: connection reset")
		},
	}

	rec := doRequest(t, withUser(NewLedgerHandler(ledger).ListLanguages), http.MethodGet, "/api/languages", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An unexpected error occurred", errorMessage(t, rec))
}

func practiceRouter(h *PracticeHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/lessons/{lang_id}", withUser(h.Lessons))
	r.Get("/api/exercises/{lang_id}", withUser(h.Exercises))
	r.Post("/api/exercise/submit", withUser(h.Submit))
	return r
}

func TestPracticeHandlerExercisesAndLessons(t *testing.T) {
	t.Parallel()

	practice := &mocks.MockPersonalizationService{
		ExercisesFn: func(_ context.Context, userID uuid.UUID, languageID int64) (*personalization.ExerciseSet, error) {
			assert.Equal(t, testUser.ID, userID)
			return &personalization.ExerciseSet{
				Tier: domain.TierIntermediate,
				Exercises: []domain.Exercise{{
					ID: 101, Type: domain.ExerciseTypeFlashcard, Difficulty: domain.TierIntermediate,
				}},
			}, nil
		},
		LessonsFn: func(_ context.Context, languageID int64) (*personalization.LessonSet, error) {
			return &personalization.LessonSet{LanguageID: languageID, Lessons: []domain.Lesson{}}, nil
		},
	}
	r := practiceRouter(NewPracticeHandler(practice))

	rec := doRequest(t, r, http.MethodGet, "/api/exercises/4", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"difficulty":2`)
	assert.NotContains(t, rec.Body.String(), "Tier")

	rec = doRequest(t, r, http.MethodGet, "/api/lessons/4", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"language_id":4,"lessons":[]}`, rec.Body.String())

	for _, bad := range []string{"abc", "0", "-1"} {
		rec = doRequest(t, r, http.MethodGet, "/api/exercises/"+bad, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
		assert.Equal(t, "Invalid lang_id: must be a positive integer", errorMessage(t, rec))
	}
}

func TestPracticeHandlerSubmit(t *testing.T) {
	t.Parallel()

	var got personalization.SubmitInput
	practice := &mocks.MockPersonalizationService{
		SubmitFn: func(_ context.Context, _ uuid.UUID, in personalization.SubmitInput) (*float64, error) {
			got = in
			if in.LanguageID == nil {
				return nil, nil
			}
			if *in.LanguageID == 99 {
				return nil, store.ErrLanguageNotFound
			}
			p := 20.0
			return &p, nil
		},
	}
	r := practiceRouter(NewPracticeHandler(practice))

	rec := doRequest(t, r, http.MethodPost, "/api/exercise/submit", `{"ex_id":101,"score":40,"lang_id":3}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Recorded","new_progress":20}`, rec.Body.String())
	assert.Equal(t, int64(101), got.ExerciseID)
	assert.Equal(t, 40, got.Score)

	rec = doRequest(t, r, http.MethodPost, "/api/exercise/submit", `{"ex_id":102,"score":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Recorded","new_progress":null}`, rec.Body.String())
	assert.Equal(t, 0, got.Score)

	rec = doRequest(t, r, http.MethodPost, "/api/exercise/submit", `{"ex_id":102}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid score: required field", errorMessage(t, rec))

	rec = doRequest(t, r, http.MethodPost, "/api/exercise/submit", `{"ex_id":101,"score":5,"lang_id":99}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Language not found", errorMessage(t, rec))
}

func TestProxyHandler(t *testing.T) {
	t.Parallel()

	p := &mocks.MockProxyService{
		TranslateFn: func(_ context.Context, text, _, tgt string) (string, error) {
			if text == "boom" {
				return "", errors.Join(proxy.ErrUpstream, errors.New("quota exceeded"))
			}
			return "[translated (" + tgt + ")] " + text, nil
		},
		ChatFn: func(_ context.Context, message string) (string, error) {
			return "Bot stub: I heard '" + message + "'", nil
		},
	}
	h := NewProxyHandler(p)

	rec := doRequest(t, withUser(h.Translate), http.MethodPost, "/api/translate", map[string]string{"text": "Hola", "tgt": "fr"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"translated":"[translated (fr)] Hola"}`, rec.Body.String())

	rec = doRequest(t, withUser(h.Translate), http.MethodPost, "/api/translate", map[string]string{"text": "boom"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "quota exceeded")

	rec = doRequest(t, withUser(h.Translate), http.MethodPost, "/api/translate", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, withUser(h.Chat), http.MethodPost, "/api/chatbot", map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reply":"Bot stub: I heard 'hi'"}`, rec.Body.String())

	rec = doRequest(t, withUser(h.Chat), http.MethodPost, "/api/chatbot", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid message: required field", errorMessage(t, rec))
}

func TestReminderHandler(t *testing.T) {
	t.Parallel()

	reminders := &mocks.MockReminderService{
		SendAllFn: func(context.Context) (int, error) { return 3, nil },
	}
	rec := doRequest(t, http.HandlerFunc(NewReminderHandler(reminders).SendReminder), http.MethodPost, "/api/send_reminder", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sent":3}`, rec.Body.String())
}
