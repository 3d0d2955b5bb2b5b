// Package generate implements the interactive prompts that collect a
// generation request and render the run summary.
package generate

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/codesmith-ai/codesmith/internal/preset"
	"github.com/codesmith-ai/codesmith/internal/tui"
)

// featureOptions lists the feature tags the manifest rules react to.
var featureOptions = []string{
	"Authentication",
	"Database",
	"Forms",
	"Email",
	"Admin",
	"Docker",
	"Testing",
}

// Flow orchestrates the generate command questions using huh forms.
type Flow struct {
	theme *huh.Theme
}

// Result captures the successful output of the flow.
type Result struct {
	Prompt      string
	ProjectName string
	Features    string
	TechStack   string
}

// NewFlow constructs a Flow with the shared huh theme.
func NewFlow() *Flow {
	return &Flow{
		theme: tui.NewHuhTheme(),
	}
}

// Run executes the forms sequentially; returns nil result on user abort.
// A blank project name answer falls back to defaultName.
func (f *Flow) Run(defaultName string) (*Result, error) {
	prompt, err := f.inputDescription()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	name, err := f.inputProjectName(defaultName)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	features, err := f.selectFeatures()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	techStack, err := f.inputTechStack()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	return &Result{
		Prompt:      prompt,
		ProjectName: name,
		Features:    features,
		TechStack:   techStack,
	}, nil
}

func (f *Flow) inputDescription() (string, error) {
	prompt := ""

	var desc strings.Builder
	desc.WriteString("Describe the project to scaffold, for example:\n")
	for _, example := range preset.Examples() {
		fmt.Fprintf(&desc, "• %s\n", example.Prompt)
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Text.NewLine.SetKeys("ctrl+j")
	keyMap.Text.NewLine.SetHelp("ctrl+j", "new line")
	keyMap.Text.Submit.SetKeys("enter")
	keyMap.Text.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Lines(8).
				Value(&prompt).
				Placeholder("FastAPI microservice for user authentication with JWT").
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("please enter a valid description")
					}
					return nil
				}),
		).
			Title("Project Description").
			Description(desc.String()),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(prompt), nil
}

func (f *Flow) inputProjectName(defaultName string) (string, error) {
	name := ""

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Input.Submit.SetKeys("enter")
	keyMap.Input.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Value(&name).
				Placeholder(defaultName),
		).
			Title("Project Folder Name").
			Description(fmt.Sprintf("Leave blank to use %s.", defaultName)),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}

	return name, nil
}

func (f *Flow) selectFeatures() (string, error) {
	selected := make([]string, 0, len(featureOptions))

	opts := make([]huh.Option[string], 0, len(featureOptions))
	for _, feature := range featureOptions {
		opts = append(opts, huh.NewOption(feature, feature))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			newFeatureMultiSelect(&selected).
				Options(opts...),
		).
			Title("Special Features").
			Description("Select everything the generated project should include."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.Join(selected, ", "), nil
}

func (f *Flow) inputTechStack() (string, error) {
	techStack := ""

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Input.Submit.SetKeys("enter")
	keyMap.Input.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Value(&techStack).
				Placeholder("FastAPI, SQLite"),
		).
			Title("Preferred Tech Stack").
			Description("Comma-separated frameworks and libraries. Leave blank to let the model decide."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(techStack), nil
}
