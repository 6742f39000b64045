// Package gemini provides an implementation of the generation.Generator
// interface backed by Google's Gemini API.
//
// The adapter sends a single text prompt per call, bounds each call with the
// configured request timeout, and returns the concatenated text of the first
// candidate. It does not retry; callers decide how to surface failures.
package gemini
