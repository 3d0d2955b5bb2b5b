package generate

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
)

// featureMultiSelect wraps huh.MultiSelect so the submit help label reads
// "skip" while nothing is selected. Features are optional, an empty
// selection is a valid answer.
type featureMultiSelect struct {
	*huh.MultiSelect[string]
	selected *[]string
	keymap   *huh.KeyMap
}

func newFeatureMultiSelect(selected *[]string) *featureMultiSelect {
	return &featureMultiSelect{
		MultiSelect: huh.NewMultiSelect[string]().Value(selected),
		selected:    selected,
	}
}

func (p *featureMultiSelect) Options(options ...huh.Option[string]) *featureMultiSelect {
	p.MultiSelect.Options(options...)
	return p
}

func (p *featureMultiSelect) WithKeyMap(k *huh.KeyMap) huh.Field {
	p.keymap = k
	p.MultiSelect.WithKeyMap(k)
	return p
}

func (p *featureMultiSelect) KeyBinds() []key.Binding {
	binds := p.MultiSelect.KeyBinds()
	if p.keymap == nil {
		return binds
	}

	helpDesc := "continue"
	if p.selectedCount() == 0 {
		helpDesc = "skip"
	}

	submitKeys := p.keymap.MultiSelect.Submit.Keys()
	if len(submitKeys) == 0 {
		return binds
	}

	for i := range binds {
		if !bindingHasKeys(binds[i], submitKeys) {
			continue
		}
		helpKey := binds[i].Help().Key
		if helpKey == "" {
			helpKey = submitKeys[0]
		}
		binds[i].SetHelp(helpKey, helpDesc)
		break
	}

	return binds
}

// Update keeps the wrapper in place, the group stores whatever model the
// field returns.
func (p *featureMultiSelect) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := p.MultiSelect.Update(msg)
	p.MultiSelect = model.(*huh.MultiSelect[string])
	return p, cmd
}

func (p *featureMultiSelect) selectedCount() int {
	value, ok := p.MultiSelect.GetValue().([]string)
	if !ok {
		return 0
	}
	return len(value)
}

func bindingHasKeys(binding key.Binding, keys []string) bool {
	bindingKeys := binding.Keys()
	if len(bindingKeys) != len(keys) {
		return false
	}
	for i := range keys {
		if bindingKeys[i] != keys[i] {
			return false
		}
	}
	return true
}
