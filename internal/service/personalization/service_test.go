package personalization_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/domain/mastery"
	"github.com/phrazzld/lingua-api/internal/mocks"
	"github.com/phrazzld/lingua-api/internal/service/personalization"
	"github.com/phrazzld/lingua-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc         personalization.Service
	mock        sqlmock.Sqlmock
	enrollments *mocks.MockEnrollmentStore
	results     *mocks.MockExerciseResultStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &fixture{
		mock:        mock,
		enrollments: &mocks.MockEnrollmentStore{},
		results:     &mocks.MockExerciseResultStore{},
	}
	f.svc, err = personalization.NewService(db, f.enrollments, f.results, mastery.NewDefaultService(), nil)
	require.NoError(t, err)
	return f
}

func TestExercisesTierFollowsProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress *float64
		want     domain.Tier
	}{
		{name: "not enrolled", progress: nil, want: domain.TierBeginner},
		{name: "beginner", progress: ptr(19.5), want: domain.TierBeginner},
		{name: "intermediate", progress: ptr(20), want: domain.TierIntermediate},
		{name: "advanced", progress: ptr(50), want: domain.TierAdvanced},
		{name: "complete", progress: ptr(100), want: domain.TierAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.enrollments.GetFn = func(_ context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error) {
				if tt.progress == nil {
					return nil, store.ErrEnrollmentNotFound
				}
				return &domain.Enrollment{UserID: userID, LanguageID: languageID, Progress: *tt.progress}, nil
			}

			set, err := f.svc.Exercises(context.Background(), uuid.New(), 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, set.Tier)
			require.NotEmpty(t, set.Exercises)
			for _, ex := range set.Exercises {
				assert.Equal(t, tt.want, ex.Difficulty)
			}
		})
	}
}

func TestExercisesStoreFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	dbErr := errors.New("timeout")
	f.enrollments.GetFn = func(context.Context, uuid.UUID, int64) (*domain.Enrollment, error) {
		return nil, dbErr
	}

	_, err := f.svc.Exercises(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, dbErr)
}

func TestLessons(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	set, err := f.svc.Lessons(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), set.LanguageID)
	assert.Len(t, set.Lessons, 2)
	assert.Equal(t, "Basics: Greetings", set.Lessons[0].Title)
}

// TestSubmitThenNextTier covers a score of 40 on a fresh enrollment: progress
// becomes 20.0 and the next exercise request is served at tier 2.
func TestSubmitThenNextTier(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	userID := uuid.New()
	lang := int64(3)

	var stored *domain.Enrollment
	f.enrollments.GetOrCreateForUpdateFn = func(_ context.Context, u uuid.UUID, l int64) (*domain.Enrollment, error) {
		e, err := domain.NewEnrollment(u, l)
		stored = e
		return e, err
	}
	f.enrollments.UpdateProgressFn = func(_ context.Context, e *domain.Enrollment) error {
		stored = e
		return nil
	}
	f.enrollments.GetFn = func(context.Context, uuid.UUID, int64) (*domain.Enrollment, error) {
		return stored, nil
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	got, err := f.svc.Submit(context.Background(), userID, personalization.SubmitInput{
		ExerciseID: 101,
		Score:      40,
		LanguageID: &lang,
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 20.0, *got, 1e-9)

	require.Len(t, f.results.Results, 1)
	assert.Equal(t, 40, f.results.Results[0].Score)
	require.NotNil(t, f.results.Results[0].LanguageID)
	assert.Equal(t, lang, *f.results.Results[0].LanguageID)
	require.Len(t, f.enrollments.UpdateProgressCalls, 1)
	assert.NoError(t, f.mock.ExpectationsWereMet())

	set, err := f.svc.Exercises(context.Background(), userID, lang)
	require.NoError(t, err)
	assert.Equal(t, domain.TierIntermediate, set.Tier)
}

func TestSubmitWithoutLanguage(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	got, err := f.svc.Submit(context.Background(), uuid.New(), personalization.SubmitInput{
		ExerciseID: 102,
		Score:      90,
	})
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Len(t, f.results.Results, 1)
	assert.Zero(t, f.enrollments.GetOrCreateCalls, "no enrollment may be created")
	assert.Empty(t, f.enrollments.UpdateProgressCalls)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSubmitSaturates(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	lang := int64(1)

	f.enrollments.GetOrCreateForUpdateFn = func(_ context.Context, u uuid.UUID, l int64) (*domain.Enrollment, error) {
		return &domain.Enrollment{ID: uuid.New(), UserID: u, LanguageID: l, Progress: 95}, nil
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	got, err := f.svc.Submit(context.Background(), uuid.New(), personalization.SubmitInput{
		ExerciseID: 101, Score: 100, LanguageID: &lang,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, *got, 1e-9)
}

func TestSubmitRollsBackOnFailure(t *testing.T) {
	t.Parallel()
	lang := int64(1)

	t.Run("result insert fails", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		dbErr := errors.New("insert failed")
		f.results.CreateFn = func(context.Context, *domain.ExerciseResult) error { return dbErr }

		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.svc.Submit(context.Background(), uuid.New(), personalization.SubmitInput{
			ExerciseID: 101, Score: 10, LanguageID: &lang,
		})
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, f.enrollments.GetOrCreateCalls)
		assert.Empty(t, f.enrollments.UpdateProgressCalls)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.enrollments.GetOrCreateForUpdateFn = func(context.Context, uuid.UUID, int64) (*domain.Enrollment, error) {
			return nil, store.ErrLanguageNotFound
		}

		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.svc.Submit(context.Background(), uuid.New(), personalization.SubmitInput{
			ExerciseID: 101, Score: 10, LanguageID: &lang,
		})
		assert.ErrorIs(t, err, store.ErrLanguageNotFound)
		assert.Empty(t, f.results.Results, "no result is written for an unknown language")
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})
}

func TestSubmitRequiresExercise(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), uuid.New(), personalization.SubmitInput{Score: 10})
	assert.ErrorIs(t, err, domain.ErrEmptyExerciseID)
}

func TestNewServiceValidatesDependencies(t *testing.T) {
	t.Parallel()

	_, err := personalization.NewService((*sql.DB)(nil), &mocks.MockEnrollmentStore{},
		&mocks.MockExerciseResultStore{}, mastery.NewDefaultService(), nil)
	assert.Error(t, err)
}

func ptr(f float64) *float64 { return &f }
