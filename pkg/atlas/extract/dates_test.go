package extract

import (
	"reflect"
	"testing"
)

func TestDates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "circa prefix",
			text: "The island sank circa 9000 BC according to Plato.",
			want: []string{"circa 9000 BC"},
		},
		{
			name: "document order and duplicates",
			text: "Plato wrote in 360 BC. Later, 360 BC was repeated and 1500 AD too.",
			want: []string{"360 BC", "360 BC", "1500 AD"},
		},
		{
			name: "no space before era",
			text: "Founded 9000BC and lost 12 century later.",
			want: []string{"9000BC", "12 century"},
		},
		{
			name: "bare number is not a date",
			text: "There were 300 ships and 10 kings.",
			want: nil,
		},
		{
			name: "ordinal century does not match",
			text: "In the 5th century BC the story spread.",
			want: nil,
		},
		{
			name: "five digits do not match",
			text: "about 12345 BC",
			want: nil,
		},
		{
			name: "era must be a whole word",
			text: "in 400 ADVENT and 30 BCE",
			want: nil,
		},
		{
			name: "case sensitive",
			text: "circa 500 bc",
			want: nil,
		},
		{
			name: "accented letter after era",
			text: "circa 900 BCé",
			want: nil,
		},
		{
			name: "accented letter before digits",
			text: "é900 BC",
			want: nil,
		},
		{
			name: "circa glued to a word falls back to the year",
			text: "écirca 900 BC",
			want: []string{"900 BC"},
		},
		{
			name: "accented neighbours outside the mention",
			text: "Atlántida sank in 900 BC, según Platón",
			want: []string{"900 BC"},
		},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dates(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Dates(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveYear(t *testing.T) {
	tests := []struct {
		mention string
		want    int
		ok      bool
	}{
		{"9000 BC", -9000, true},
		{"circa 9000 BC", -9000, true},
		{"9000BC", -9000, true},
		{"1500 AD", 1500, true},
		{"12 century", 12, true},
		{"5th century", 5, true},
		{"5th century BC", 5, true},
		{"0 AD", 0, true},
		{"360", 360, true},
		{"circa", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ResolveYear(tt.mention)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ResolveYear(%q) = (%d, %v), want (%d, %v)", tt.mention, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveYearsSkipsUnresolvable(t *testing.T) {
	got := ResolveYears([]string{"9000 BC", "circa", "1500 AD", "", "12 century"})
	want := []int{-9000, 1500, 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveYears() = %v, want %v", got, want)
	}

	if got := ResolveYears(nil); len(got) != 0 {
		t.Errorf("ResolveYears(nil) = %v, want empty", got)
	}
}

func TestExtractedDatesAlwaysResolve(t *testing.T) {
	text := "circa 9000 BC, 1500 AD, 9600BC and 12 century"
	mentions := Dates(text)
	if len(mentions) != 4 {
		t.Fatalf("expected 4 mentions, got %q", mentions)
	}
	for _, m := range mentions {
		if _, ok := ResolveYear(m); !ok {
			t.Errorf("mention %q did not resolve", m)
		}
	}
}
