package review

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level grades how deeply the code was examined or understood
type Level string

const (
	LevelNone   Level = "none"
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Rating is the verdict of a review
type Rating string

const (
	RatingNegative Rating = "negative"
	RatingNeutral  Rating = "neutral"
	RatingPositive Rating = "positive"
	RatingStrong   Rating = "strong"
)

const header = `# Package review draft.
# Levels: none, low, medium, high
# Rating: negative, neutral, positive, strong
`

var (
	ErrEmptyDraft     = errors.New("review: draft is empty")
	ErrMissingPackage = errors.New("review: package is required")
)

// Draft is an unsigned package review
type Draft struct {
	Package       string `yaml:"package"`
	Version       string `yaml:"version"`
	Digest        string `yaml:"digest,omitempty"`
	Thoroughness  Level  `yaml:"thoroughness"`
	Understanding Level  `yaml:"understanding"`
	Rating        Rating `yaml:"rating"`
	Comment       string `yaml:"comment,omitempty"`
}

// NewDraft returns a draft for pkg with neutral defaults
func NewDraft(pkg, version string) *Draft {
	return &Draft{
		Package:       pkg,
		Version:       version,
		Thoroughness:  LevelLow,
		Understanding: LevelMedium,
		Rating:        RatingPositive,
	}
}

// String renders the canonical text form. If encoding fails the error is
// rendered as a comment, which ParseDraft then rejects as an empty draft.
func (d Draft) String() string {
	text, err := d.render()
	if err != nil {
		return fmt.Sprintf("%s# failed to render draft: %s\n", header, err)
	}
	return text
}

func (d Draft) render() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseDraft parses the text form produced by String
func ParseDraft(text string) (*Draft, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)

	var d Draft
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDraft
		}
		return nil, fmt.Errorf("review: %w", err)
	}

	// A second document means the operator pasted something extra
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("review: unexpected content after the draft")
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks required fields and enumerations
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Package) == "" {
		return ErrMissingPackage
	}
	if !d.Thoroughness.valid() {
		return fmt.Errorf("review: unknown thoroughness %q", d.Thoroughness)
	}
	if !d.Understanding.valid() {
		return fmt.Errorf("review: unknown understanding %q", d.Understanding)
	}
	if !d.Rating.valid() {
		return fmt.Errorf("review: unknown rating %q", d.Rating)
	}
	return nil
}

func (l Level) valid() bool {
	switch l {
	case LevelNone, LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

func (r Rating) valid() bool {
	switch r {
	case RatingNegative, RatingNeutral, RatingPositive, RatingStrong:
		return true
	}
	return false
}
