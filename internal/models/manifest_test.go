package models

import (
	"reflect"
	"testing"
)

func TestManifestSetPreservesOrder(t *testing.T) {
	m := NewManifest()
	m.Set("main.py", "entry point")
	m.Set("README.md", "docs")
	m.Set("config/settings.py", "settings")

	want := []string{"main.py", "README.md", "config/settings.py"}
	if got := m.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestManifestSetUpdatesInPlace(t *testing.T) {
	m := NewManifest()
	m.Set("main.py", "entry point")
	m.Set("README.md", "docs")
	m.Set("main.py", "application entry point")

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	// Updating must not move the entry to the end
	if got := m.Paths()[0]; got != "main.py" {
		t.Errorf("first path = %q, want main.py", got)
	}

	desc, ok := m.Description("main.py")
	if !ok || desc != "application entry point" {
		t.Errorf("Description(main.py) = %q, %v", desc, ok)
	}
}

func TestManifestLookupMissing(t *testing.T) {
	m := NewManifest()
	m.Set("main.py", "entry point")

	if m.Has("app/main.py") {
		t.Error("Has(app/main.py) = true, want false")
	}
	if _, ok := m.Description("app/main.py"); ok {
		t.Error("Description(app/main.py) found, want missing")
	}
}

func TestManifestEntriesIsACopy(t *testing.T) {
	m := NewManifest()
	m.Set("main.py", "entry point")

	entries := m.Entries()
	entries[0].Description = "mutated"

	desc, _ := m.Description("main.py")
	if desc != "entry point" {
		t.Errorf("Description(main.py) = %q after mutating copy, want entry point", desc)
	}
}
