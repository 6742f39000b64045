package generation

import "errors"

var (
	// ErrGenerationFailed wraps a failed call to the model provider.
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrInvalidResponse means the provider answered without usable text.
	ErrInvalidResponse = errors.New("model returned no usable text")

	// ErrContentBlocked means a safety filter stopped the answer.
	ErrContentBlocked = errors.New("model blocked the content")

	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned before any call is made for a blank prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
