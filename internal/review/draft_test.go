package review

import (
	"errors"
	"strings"
	"testing"
)

func TestDraft_RoundTrip(t *testing.T) {
	drafts := []*Draft{
		NewDraft("serde", "1.0.0"),
		{
			Package:       "left-pad",
			Version:       "0.0.3",
			Digest:        "sha256:abc123",
			Thoroughness:  LevelHigh,
			Understanding: LevelHigh,
			Rating:        RatingStrong,
			Comment:       "Read every line.\nNo unsafe code.\n",
		},
		{
			Package:       "quoted: name",
			Version:       "",
			Thoroughness:  LevelNone,
			Understanding: LevelNone,
			Rating:        RatingNegative,
			Comment:       "# not a comment",
		},
	}

	for _, d := range drafts {
		text := d.String()
		if !strings.HasPrefix(text, header) {
			t.Errorf("Rendering should start with header, got %q", text)
		}

		parsed, err := ParseDraft(text)
		if err != nil {
			t.Fatalf("ParseDraft failed for %q: %v\n%s", d.Package, err, text)
		}
		if *parsed != *d {
			t.Errorf("Parsed draft mismatch:\ngot  %+v\nwant %+v", *parsed, *d)
		}
		if parsed.String() != text {
			t.Errorf("Re-rendered text differs:\ngot  %q\nwant %q", parsed.String(), text)
		}
	}
}

func TestParseDraft_Errors(t *testing.T) {
	valid := NewDraft("serde", "1.0.0").String()

	tests := []struct {
		name    string
		text    string
		want    error
		message string
	}{
		{"empty", "", ErrEmptyDraft, ""},
		{"only comments", "# nothing here\n", ErrEmptyDraft, ""},
		{"missing package", strings.Replace(valid, "package: serde", "package: \"\"", 1), ErrMissingPackage, ""},
		{"unknown field", valid + "extra: true\n", nil, "extra"},
		{"bad level", strings.Replace(valid, "thoroughness: low", "thoroughness: huge", 1), nil, `unknown thoroughness "huge"`},
		{"bad rating", strings.Replace(valid, "rating: positive", "rating: great", 1), nil, `unknown rating "great"`},
		{"not yaml", "package: [unterminated\n", nil, "review:"},
		{"second document", valid + "---\npackage: other\n", nil, "unexpected content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDraft(tt.text)
			if err == nil {
				t.Fatalf("Expected error for %q", tt.text)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected message containing %q, got %v", tt.message, err)
			}
		})
	}
}

func TestParseDraft_HandEdited(t *testing.T) {
	text := `package: tokio
version: 1.2.3
thoroughness: medium
understanding: low
rating: neutral
comment: skimmed the scheduler
`
	d, err := ParseDraft(text)
	if err != nil {
		t.Fatalf("ParseDraft failed: %v", err)
	}
	if d.Package != "tokio" || d.Thoroughness != LevelMedium || d.Rating != RatingNeutral {
		t.Errorf("Unexpected draft: %+v", *d)
	}
	if d.Comment != "skimmed the scheduler" {
		t.Errorf("Comment mismatch: got %q", d.Comment)
	}
}

func TestDraft_Render(t *testing.T) {
	d := NewDraft("serde", "1.0.0")

	text, err := d.render()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if text != d.String() {
		t.Errorf("String should match render output:\ngot  %q\nwant %q", d.String(), text)
	}
	if !strings.HasSuffix(text, "rating: positive\n") {
		t.Errorf("Encoder output not flushed: %q", text)
	}
}
