// Package preset ships the canned generation requests bundled with the
// binary: the simple/advanced presets behind the one-call endpoints and the
// example prompts suggested to users. Each preset is a markdown document with
// YAML frontmatter; the body is the project prompt.
package preset

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

//go:embed presets/*.md examples/*.md
var files embed.FS

// Preset is a ready-made generation request.
type Preset struct {
	Name      string `yaml:"name"`
	Features  string `yaml:"features"`
	TechStack string `yaml:"tech_stack"`
	Strict    bool   `yaml:"strict"`
	Detailed  bool   `yaml:"detailed"`
	Prompt    string `yaml:"-"`
}

var (
	simple   = mustLoad("presets/simple.md")
	advanced = mustLoad("presets/advanced.md")
	examples = mustLoadExamples()
)

// Simple returns the minimal starter preset.
func Simple() Preset {
	return simple
}

// Advanced returns the full-backend preset (strict + detailed).
func Advanced() Preset {
	return advanced
}

// Examples returns the suggested prompts in filename order.
func Examples() []Preset {
	out := make([]Preset, len(examples))
	copy(out, examples)
	return out
}

func parse(data []byte) (Preset, error) {
	var p Preset
	rest, err := frontmatter.Parse(bytes.NewReader(data), &p)
	if err != nil {
		return Preset{}, fmt.Errorf("failed to parse preset frontmatter: %w", err)
	}
	p.Prompt = strings.TrimSpace(string(rest))
	return p, nil
}

func mustLoad(path string) Preset {
	data, err := files.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("preset %s: %v", path, err))
	}
	p, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("preset %s: %v", path, err))
	}
	return p
}

func mustLoadExamples() []Preset {
	entries, err := files.ReadDir("examples")
	if err != nil {
		panic(fmt.Sprintf("preset examples: %v", err))
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	out := make([]Preset, 0, len(names))
	for _, name := range names {
		out = append(out, mustLoad("examples/"+name))
	}
	return out
}
