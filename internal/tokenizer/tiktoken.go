package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Encoding is the byte-pair encoding used to measure generated content.
const Encoding = "cl100k_base"

// Tiktoken counts tokens under the cl100k_base encoding.
type Tiktoken struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktoken loads the cl100k_base encoding.
func NewTiktoken() (*Tiktoken, error) {
	encoding, err := tiktoken.GetEncoding(Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s encoding: %w", Encoding, err)
	}
	return &Tiktoken{encoding: encoding}, nil
}

// Count implements Counter.
func (t *Tiktoken) Count(text string) int {
	return len(t.encoding.Encode(text, nil, nil))
}
