// Package tokenizer measures text length in model tokens. The scheme is
// pluggable; any implementation must be deterministic for a given input.
package tokenizer

// Counter counts the tokens in a piece of text.
type Counter interface {
	Count(text string) int
}
