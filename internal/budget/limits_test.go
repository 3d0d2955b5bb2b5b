package budget

import (
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		globalMaxLines int
		fileCount      int
		expectedLines  int
	}{
		{"single file hits per-file cap", 50000, 1, 5000},
		{"six files still capped", 50000, 6, 5000},
		{"eleven files divide below cap", 50000, 11, 4545},
		{"hundred files", 50000, 100, 500},
		{"more files than lines", 10, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits, err := Calculate(tt.globalMaxLines, tt.fileCount)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if limits.MaxLines != tt.expectedLines {
				t.Errorf("MaxLines = %d, want %d", limits.MaxLines, tt.expectedLines)
			}
			if limits.MaxTokens != MaxTokensPerFile {
				t.Errorf("MaxTokens = %d, want %d", limits.MaxTokens, MaxTokensPerFile)
			}
		})
	}
}

func TestCalculateRejectsEmptyManifest(t *testing.T) {
	for _, count := range []int{0, -1, -50} {
		if _, err := Calculate(MaxProjectLines, count); err == nil {
			t.Errorf("Calculate(_, %d) expected error, got nil", count)
		}
	}
}

// MaxLines may never exceed the per-file cap nor the even division of the
// global budget.
func TestCalculateBounds(t *testing.T) {
	for fileCount := 1; fileCount <= 200; fileCount++ {
		limits, err := Calculate(MaxProjectLines, fileCount)
		if err != nil {
			t.Fatalf("Calculate(_, %d) error = %v", fileCount, err)
		}
		if limits.MaxLines > MaxFileLines {
			t.Fatalf("fileCount %d: MaxLines %d exceeds cap %d", fileCount, limits.MaxLines, MaxFileLines)
		}
		if even := MaxProjectLines / fileCount; limits.MaxLines > even {
			t.Fatalf("fileCount %d: MaxLines %d exceeds even share %d", fileCount, limits.MaxLines, even)
		}
	}
}
