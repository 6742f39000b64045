package domain

// Language is a language users can study. Languages are static reference
// data seeded at startup.
type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultLanguages is the seed set inserted when missing.
var DefaultLanguages = []string{"English", "Spanish", "French", "Hindi", "Chinese", "Japanese"}
