package models

// ManifestEntry pairs a relative file path with a human-readable description
// of what the file should contain.
type ManifestEntry struct {
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Manifest is the ordered plan of files to generate for one project. Entry
// order defines the generation sequence. Paths are unique; setting an existing
// path updates its description without changing its position.
type Manifest struct {
	entries []ManifestEntry
	index   map[string]int
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		index: make(map[string]int),
	}
}

// Set adds an entry or updates the description of an existing path in place.
func (m *Manifest) Set(path, description string) {
	if i, ok := m.index[path]; ok {
		m.entries[i].Description = description
		return
	}
	m.index[path] = len(m.entries)
	m.entries = append(m.entries, ManifestEntry{Path: path, Description: description})
}

// Has reports whether the manifest contains the given path.
func (m *Manifest) Has(path string) bool {
	_, ok := m.index[path]
	return ok
}

// Description returns the description for a path, if present.
func (m *Manifest) Description(path string) (string, bool) {
	i, ok := m.index[path]
	if !ok {
		return "", false
	}
	return m.entries[i].Description, true
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Entries returns the entries in insertion order. The returned slice is a
// copy; mutating it does not affect the manifest.
func (m *Manifest) Entries() []ManifestEntry {
	out := make([]ManifestEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Paths returns the entry paths in insertion order.
func (m *Manifest) Paths() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Path
	}
	return out
}
