package stoplist

import (
	"reflect"
	"testing"
)

func TestManagerCaseInsensitive(t *testing.T) {
	m := NewManager([]string{"The", " OF ", ""})

	tests := []struct {
		token string
		want  bool
	}{
		{"the", true},
		{"THE", true},
		{"of", true},
		{"island", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := m.IsStop(tt.token); got != tt.want {
			t.Errorf("IsStop(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestManagerAddRemove(t *testing.T) {
	m := NewManager(nil)
	m.Add("Atlantis")
	if !m.IsStop("atlantis") {
		t.Error("added token should be a stopword")
	}
	m.Remove("ATLANTIS")
	if m.IsStop("atlantis") {
		t.Error("removed token should not be a stopword")
	}
}

func TestManagerAllSorted(t *testing.T) {
	m := NewManager([]string{"of", "and", "the", "and"})
	want := []string{"and", "of", "the"}
	if got := m.All(); !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	if m.IsStop("the") {
		t.Error("nil manager should not report stopwords")
	}
	if m.Len() != 0 || len(m.All()) != 0 {
		t.Error("nil manager should be empty")
	}
}

func TestDefault(t *testing.T) {
	m := NewDefault()
	for _, w := range []string{"the", "of", "and", "The", "was"} {
		if !m.IsStop(w) {
			t.Errorf("%q should be a default stopword", w)
		}
	}
	for _, w := range []string{"atlantis", "island", "ocean", "plato"} {
		if m.IsStop(w) {
			t.Errorf("%q should not be a default stopword", w)
		}
	}

	d := Default()
	d[0] = "changed"
	if Default()[0] == "changed" {
		t.Error("Default() must return a copy")
	}
}
