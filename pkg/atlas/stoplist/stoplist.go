package stoplist

import (
	"sort"
	"strings"
)

// Manager holds a set of stopwords. Terms are stored and compared in
// lower case, so "The" and "the" are the same stopword.
//
// A Manager is safe for concurrent reads; Add and Remove must not run
// concurrently with other calls.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	m := &Manager{stops: make(map[string]struct{}, len(initialStops))}
	for _, s := range initialStops {
		m.Add(s)
	}
	return m
}

// NewDefault creates a manager seeded with the built-in English list.
func NewDefault() *Manager {
	return NewManager(english)
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	if m == nil {
		return false
	}
	_, ok := m.stops[strings.ToLower(token)]
	return ok
}

// Add adds a token to the stoplist. Blank tokens are ignored.
func (m *Manager) Add(token string) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return
	}
	m.stops[token] = struct{}{}
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	delete(m.stops, strings.ToLower(token))
}

// Len returns the number of stopwords.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.stops)
}

// All returns all stopwords in lexical order.
func (m *Manager) All() []string {
	if m == nil {
		return []string{}
	}
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Default returns the built-in English stopwords in lexical order.
func Default() []string {
	return NewDefault().All()
}
