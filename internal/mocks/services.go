package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/service"
	"github.com/phrazzld/lingua-api/internal/service/personalization"
	"github.com/phrazzld/lingua-api/internal/service/proxy"
	"github.com/phrazzld/lingua-api/internal/service/reminder"
)

// MockAccountService implements service.AccountService for handler tests.
type MockAccountService struct {
	SignupFn func(ctx context.Context, name, email, password string) (string, *domain.User, error)
	LoginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
}

var _ service.AccountService = (*MockAccountService)(nil)

// Signup implements service.AccountService.
func (m *MockAccountService) Signup(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	return m.SignupFn(ctx, name, email, password)
}

// Login implements service.AccountService.
func (m *MockAccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return m.LoginFn(ctx, email, password)
}

// MockLedgerService implements service.LedgerService for handler tests.
type MockLedgerService struct {
	ListLanguagesFn   func(ctx context.Context) ([]domain.Language, error)
	ListEnrollmentsFn func(ctx context.Context, userID uuid.UUID) ([]domain.EnrollmentView, error)
	EnrollFn          func(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error)
}

var _ service.LedgerService = (*MockLedgerService)(nil)

// ListLanguages implements service.LedgerService.
func (m *MockLedgerService) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return m.ListLanguagesFn(ctx)
}

// ListEnrollments implements service.LedgerService.
func (m *MockLedgerService) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]domain.EnrollmentView, error) {
	return m.ListEnrollmentsFn(ctx, userID)
}

// Enroll implements service.LedgerService.
func (m *MockLedgerService) Enroll(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error) {
	return m.EnrollFn(ctx, userID, languageID)
}

// MockPersonalizationService implements personalization.Service for handler tests.
type MockPersonalizationService struct {
	ExercisesFn func(ctx context.Context, userID uuid.UUID, languageID int64) (*personalization.ExerciseSet, error)
	LessonsFn   func(ctx context.Context, languageID int64) (*personalization.LessonSet, error)
	SubmitFn    func(ctx context.Context, userID uuid.UUID, in personalization.SubmitInput) (*float64, error)
}

var _ personalization.Service = (*MockPersonalizationService)(nil)

// Exercises implements personalization.Service.
func (m *MockPersonalizationService) Exercises(
	ctx context.Context,
	userID uuid.UUID,
	languageID int64,
) (*personalization.ExerciseSet, error) {
	return m.ExercisesFn(ctx, userID, languageID)
}

// Lessons implements personalization.Service.
func (m *MockPersonalizationService) Lessons(ctx context.Context, languageID int64) (*personalization.LessonSet, error) {
	return m.LessonsFn(ctx, languageID)
}

// Submit implements personalization.Service.
func (m *MockPersonalizationService) Submit(
	ctx context.Context,
	userID uuid.UUID,
	in personalization.SubmitInput,
) (*float64, error) {
	return m.SubmitFn(ctx, userID, in)
}

// MockProxyService implements proxy.Service for handler tests.
type MockProxyService struct {
	TranslateFn func(ctx context.Context, text, src, tgt string) (string, error)
	ChatFn      func(ctx context.Context, message string) (string, error)
}

var _ proxy.Service = (*MockProxyService)(nil)

// Translate implements proxy.Service.
func (m *MockProxyService) Translate(ctx context.Context, text, src, tgt string) (string, error) {
	return m.TranslateFn(ctx, text, src, tgt)
}

// Chat implements proxy.Service.
func (m *MockProxyService) Chat(ctx context.Context, message string) (string, error) {
	return m.ChatFn(ctx, message)
}

// MockReminderService implements reminder.Service for handler tests.
type MockReminderService struct {
	SendAllFn func(ctx context.Context) (int, error)
}

var _ reminder.Service = (*MockReminderService)(nil)

// SendAll implements reminder.Service.
func (m *MockReminderService) SendAll(ctx context.Context) (int, error) {
	return m.SendAllFn(ctx)
}
