package tokenizer

// MockCounter implements Counter for testing. Counts is consulted first by
// exact text; otherwise FixedCount is returned when set, falling back to the
// rune count of the input.
type MockCounter struct {
	Counts     map[string]int
	FixedCount int
}

// NewMockCounter creates a MockCounter with an empty lookup table.
func NewMockCounter() *MockCounter {
	return &MockCounter{Counts: make(map[string]int)}
}

// Count implements Counter.
func (m *MockCounter) Count(text string) int {
	if n, ok := m.Counts[text]; ok {
		return n
	}
	if m.FixedCount > 0 {
		return m.FixedCount
	}
	return len([]rune(text))
}
