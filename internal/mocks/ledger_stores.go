package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/store"
)

// MockLanguageStore implements store.LanguageStore for testing
type MockLanguageStore struct {
	ListFn    func(ctx context.Context) ([]domain.Language, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Language, error)
	SeedFn    func(ctx context.Context, names []string) error

	Languages []domain.Language
}

var _ store.LanguageStore = (*MockLanguageStore)(nil)

// List implements store.LanguageStore
func (m *MockLanguageStore) List(ctx context.Context) ([]domain.Language, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Languages, nil
}

// GetByID implements store.LanguageStore
func (m *MockLanguageStore) GetByID(ctx context.Context, id int64) (*domain.Language, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, l := range m.Languages {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, store.ErrLanguageNotFound
}

// Seed implements store.LanguageStore
func (m *MockLanguageStore) Seed(ctx context.Context, names []string) error {
	if m.SeedFn != nil {
		return m.SeedFn(ctx, names)
	}
	return nil
}

// MockEnrollmentStore implements store.EnrollmentStore for testing
type MockEnrollmentStore struct {
	CreateFn               func(ctx context.Context, e *domain.Enrollment) error
	GetFn                  func(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error)
	ListByUserFn           func(ctx context.Context, userID uuid.UUID) ([]domain.EnrollmentView, error)
	GetOrCreateForUpdateFn func(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error)
	UpdateProgressFn       func(ctx context.Context, e *domain.Enrollment) error

	// Call tracking for verification
	mu                  sync.Mutex
	GetOrCreateCalls    int
	UpdateProgressCalls []domain.Enrollment
	WithTxCalls         int
}

var _ store.EnrollmentStore = (*MockEnrollmentStore)(nil)

// Create implements store.EnrollmentStore
func (m *MockEnrollmentStore) Create(ctx context.Context, e *domain.Enrollment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

// Get implements store.EnrollmentStore
func (m *MockEnrollmentStore) Get(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID, languageID)
	}
	return nil, store.ErrEnrollmentNotFound
}

// ListByUser implements store.EnrollmentStore
func (m *MockEnrollmentStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.EnrollmentView, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return []domain.EnrollmentView{}, nil
}

// GetOrCreateForUpdate implements store.EnrollmentStore
func (m *MockEnrollmentStore) GetOrCreateForUpdate(
	ctx context.Context,
	userID uuid.UUID,
	languageID int64,
) (*domain.Enrollment, error) {
	m.mu.Lock()
	m.GetOrCreateCalls++
	m.mu.Unlock()
	if m.GetOrCreateForUpdateFn != nil {
		return m.GetOrCreateForUpdateFn(ctx, userID, languageID)
	}
	return domain.NewEnrollment(userID, languageID)
}

// UpdateProgress implements store.EnrollmentStore
func (m *MockEnrollmentStore) UpdateProgress(ctx context.Context, e *domain.Enrollment) error {
	m.mu.Lock()
	m.UpdateProgressCalls = append(m.UpdateProgressCalls, *e)
	m.mu.Unlock()
	if m.UpdateProgressFn != nil {
		return m.UpdateProgressFn(ctx, e)
	}
	return nil
}

// WithTx implements store.EnrollmentStore
func (m *MockEnrollmentStore) WithTx(*sql.Tx) store.EnrollmentStore {
	m.mu.Lock()
	m.WithTxCalls++
	m.mu.Unlock()
	return m
}

// MockExerciseResultStore implements store.ExerciseResultStore for testing
type MockExerciseResultStore struct {
	CreateFn func(ctx context.Context, r *domain.ExerciseResult) error

	mu      sync.Mutex
	Results []domain.ExerciseResult
}

var _ store.ExerciseResultStore = (*MockExerciseResultStore)(nil)

// Create implements store.ExerciseResultStore
func (m *MockExerciseResultStore) Create(ctx context.Context, r *domain.ExerciseResult) error {
	if m.CreateFn != nil {
		if err := m.CreateFn(ctx, r); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.Results = append(m.Results, *r)
	m.mu.Unlock()
	return nil
}

// WithTx implements store.ExerciseResultStore
func (m *MockExerciseResultStore) WithTx(*sql.Tx) store.ExerciseResultStore {
	return m
}
