package gallery

import "testing"

func TestNormalizeArtistName(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Claude Monet", "claude monet"},
		{"O'Keeffe, Georgia!!", "okeeffe georgia"},
		{"  Vincent   van\tGogh ", "vincent van gogh"},
		{"Paul Cézanne", "paul cezanne"},
		{"Jean-Léon Gérôme", "jeanleon gerome"},
		{"Katsushika Hokusai 葛飾北斎", "katsushika hokusai 葛飾北斎"},
		{"Workshop of Rembrandt (1606–1669)", "workshop of rembrandt 16061669"},
		{"", ""},
		{"?!.,", ""},
	}
	for _, tt := range tests {
		if got := NormalizeArtistName(tt.input); got != tt.want {
			t.Errorf("NormalizeArtistName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeArtistName_Idempotent(t *testing.T) {
	inputs := []string{
		"Claude Monet",
		"O'Keeffe, Georgia!!",
		"Pierre-Auguste Renoir",
		"Édouard Manet",
		"Utagawa Hiroshige 歌川広重",
		"  __under_score__  ",
		"\u110c\u2067\u1161",
		"\u110c\u0ee9\u1161\u2067",
	}
	for _, in := range inputs {
		once := NormalizeArtistName(in)
		if twice := NormalizeArtistName(once); twice != once {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeArtistName_ComposesAfterFiltering(t *testing.T) {
	// Jamo separated by a format character compose once it is dropped.
	if got := NormalizeArtistName("\u110c\u2067\u1161"); got != "\uc790" {
		t.Errorf("NormalizeArtistName() = %+q, want %+q", got, "\uc790")
	}
}

func TestIsArtistMatch(t *testing.T) {
	tests := []struct {
		name              string
		target, candidate string
		want              bool
	}{
		{"exact", "claude monet", "claude monet", true},
		{"reordered with extra word", "vincent van gogh", "van gogh vincent willem", true},
		{"unrelated", "pablo picasso", "monet claude", false},
		{"surname only candidate", "claude monet", "monet", false},
		{"substring both ways", "rembrandt", "rembrandt van rijn", true},
		{"candidate word inside target word", "degasse", "degas", true},
		{"two of three below threshold", "edgar hilaire degas", "edgar degas", false},
		{"single letter target words ignored", "j m w turner", "turner", true},
		{"no qualifying target words", "a", "anything", false},
		{"empty candidate", "claude monet", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsArtistMatch(tt.target, tt.candidate); got != tt.want {
				t.Errorf("IsArtistMatch(%q, %q) = %v, want %v", tt.target, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatcher_Threshold(t *testing.T) {
	loose := Matcher{Threshold: 0.5}
	if !loose.Match("edgar hilaire degas", "edgar degas") {
		t.Error("0.5 threshold should accept 2 of 3 words")
	}

	strict := Matcher{Threshold: 1}
	if strict.Match("vincent van gogh", "vincent gogh") {
		t.Error("1.0 threshold should require every word")
	}

	long := Matcher{MinTargetWordLen: 4}
	if !long.Match("vincent van gogh", "vincent gogh") {
		t.Error("words shorter than 4 runes should be ignored")
	}
}

func TestMatcher_WithDefaults(t *testing.T) {
	m := Matcher{Threshold: 3}.WithDefaults()
	if m.Threshold != DefaultMatchThreshold || m.MinTargetWordLen != DefaultMinTargetWordLen {
		t.Errorf("WithDefaults() = %+v", m)
	}
}

func TestRequiredMatches(t *testing.T) {
	tests := []struct {
		threshold float64
		n, want   int
	}{
		{0.7, 1, 1},
		{0.7, 2, 2},
		{0.7, 3, 3},
		{0.7, 4, 3},
		{0.7, 10, 7},
		{0.5, 4, 2},
		{1, 5, 5},
	}
	for _, tt := range tests {
		if got := requiredMatches(tt.threshold, tt.n); got != tt.want {
			t.Errorf("requiredMatches(%v, %d) = %d, want %d", tt.threshold, tt.n, got, tt.want)
		}
	}
}
