// Package generation defines the boundary between the application core and
// external text-generation services. Translation and chat requests are
// expressed as plain prompts; adapters such as the Gemini client in
// internal/platform/gemini implement the Generator interface.
package generation
