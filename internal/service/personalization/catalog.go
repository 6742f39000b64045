package personalization

import "github.com/phrazzld/lingua-api/internal/domain"

// sampleExercises is the static exercise catalog. Difficulty is stamped per
// request from the caller's progress.
var sampleExercises = []domain.Exercise{
	{
		ID:      101,
		Type:    domain.ExerciseTypeFlashcard,
		Content: map[string]string{"word": "Hello", "translation": "Hola"},
	},
	{
		ID:      102,
		Type:    domain.ExerciseTypeTranslation,
		Content: map[string]string{"text": "Good morning"},
	},
}

// sampleLessons is the static lesson catalog, shared by every language.
var sampleLessons = []domain.Lesson{
	{ID: 1, Title: "Basics: Greetings", Content: "Hello - Hi - How are you?"},
	{ID: 2, Title: "Basic Phrases", Content: "Please, Thank you, Sorry"},
}

// exercisesAt returns copies of the catalog exercises at the given tier.
func exercisesAt(tier domain.Tier) []domain.Exercise {
	out := make([]domain.Exercise, len(sampleExercises))
	for i, ex := range sampleExercises {
		content := make(map[string]string, len(ex.Content))
		for k, v := range ex.Content {
			content[k] = v
		}
		ex.Content = content
		ex.Difficulty = tier
		out[i] = ex
	}
	return out
}

func lessons() []domain.Lesson {
	out := make([]domain.Lesson, len(sampleLessons))
	copy(out, sampleLessons)
	return out
}
