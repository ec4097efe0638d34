package segment

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func texts(text string, spans []Span) []string {
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.Text(text))
	}
	return out
}

func trimmedNonEmpty(text string, spans []Span) []string {
	var out []string
	for _, s := range texts(text, spans) {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func TestUnicodeSentences(t *testing.T) {
	text := "This is the first sentence. This is the second. And this is the third. And this is the third."

	seg, err := NewSentences(UAX29, language.English)
	if err != nil {
		t.Fatalf("NewSentences() error = %v", err)
	}

	spans, err := seg.Segment(text)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	got := trimmedNonEmpty(text, spans)
	want := []string{
		"This is the first sentence.",
		"This is the second.",
		"And this is the third.",
		"And this is the third.",
	}
	if len(got) != len(want) {
		t.Fatalf("Segment() returned %d sentences %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnicodeSpansCoverText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "Sentence 1 with 7 numbers 1, 2, 3"},
		{"cyrillic", "Привет, мир! Как дела?"},
		{"newlines", "first line\nsecond line\n\nthird"},
	}

	segmenters := []Segmenter{sentenceSegmenter{}, wordSegmenter{}}

	for _, tt := range tests {
		for _, seg := range segmenters {
			t.Run(tt.name+"/"+seg.Name(), func(t *testing.T) {
				spans, err := seg.Segment(tt.text)
				if err != nil {
					t.Fatalf("Segment() error = %v", err)
				}

				pos := 0
				for _, s := range spans {
					if s.Start != pos {
						t.Fatalf("span %v starts at %d, want %d", s, s.Start, pos)
					}
					if s.End <= s.Start {
						t.Fatalf("empty span %v", s)
					}
					pos = s.End
				}
				if pos != len(tt.text) {
					t.Errorf("spans end at %d, want %d", pos, len(tt.text))
				}
			})
		}
	}
}

func TestUnicodeWords(t *testing.T) {
	text := "Sentence 1 with 7 numbers 1, 2, 3"
	spans, _ := NewWords(language.English).Segment(text)

	got := trimmedNonEmpty(text, spans)
	want := []string{"Sentence", "1", "with", "7", "numbers", "1", ",", "2", ",", "3"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Segment() = %q, want %q", got, want)
	}
}

func TestProseSentences(t *testing.T) {
	text := "Mr. Smith went to Washington. He arrived at noon!  Then he left."

	seg, err := NewSentences(Prose, language.MustParse("en-US"))
	if err != nil {
		t.Fatalf("NewSentences() error = %v", err)
	}

	spans, err := seg.Segment(text)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if len(spans) == 0 {
		t.Fatal("Segment() returned no spans")
	}

	prev := 0
	for _, s := range spans {
		if s.Start < prev || s.End > len(text) || s.Start >= s.End {
			t.Fatalf("span %v out of order or range", s)
		}
		prev = s.End
	}
	if got := spans[len(spans)-1].Text(text); got != "Then he left." {
		t.Errorf("last sentence = %q, want %q", got, "Then he left.")
	}
}

func TestProseRejectsNonEnglish(t *testing.T) {
	_, err := NewSentences(Prose, language.Russian)
	if !errors.Is(err, ErrUnsupportedLocale) {
		t.Errorf("NewSentences(Prose, ru) error = %v, want ErrUnsupportedLocale", err)
	}
}

func TestProseEmpty(t *testing.T) {
	spans, err := proseSegmenter{}.Segment("   ")
	if err != nil || len(spans) != 0 {
		t.Errorf("Segment(blank) = %v, %v; want no spans, nil", spans, err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"", UAX29, false},
		{"uax29", UAX29, false},
		{"Prose", Prose, false},
		{"icu", UAX29, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if Kind(42).String() != "unknown" {
		t.Errorf("Kind(42).String() = %q, want unknown", Kind(42).String())
	}
}
