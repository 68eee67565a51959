package domain

// Style is the pedagogical tone of the generated teaching content.
type Style string

const (
	StyleHumorous       Style = "humorous"
	StyleSerious        Style = "serious"
	StyleStorytelling   Style = "storytelling"
	StyleConversational Style = "conversational"
	StyleAcademic       Style = "academic"
)

// DefaultStyle is used when a request does not name a style.
const DefaultStyle = StyleConversational

// Styles lists every accepted style in display order.
var Styles = []Style{StyleHumorous, StyleSerious, StyleStorytelling, StyleConversational, StyleAcademic}

func (s Style) String() string { return string(s) }

func (s Style) IsValid() bool {
	switch s {
	case StyleHumorous, StyleSerious, StyleStorytelling, StyleConversational, StyleAcademic:
		return true
	}
	return false
}

// Level is the learner proficiency the content is pitched at.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// DefaultLevel is used when a request does not name a level.
const DefaultLevel = LevelIntermediate

// Levels lists every accepted level from easiest to hardest.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// RawRequest is the inbound request exactly as the client sent it.
// Nil fields were absent from the payload.
type RawRequest struct {
	Word  *string `json:"word"`
	Style *string `json:"style,omitempty"`
	Level *string `json:"level,omitempty"`
}

// NewRawRequest builds a RawRequest from plain strings; empty style and level
// are treated as absent.
func NewRawRequest(word, style, level string) RawRequest {
	raw := RawRequest{Word: &word}
	if style != "" {
		raw.Style = &style
	}
	if level != "" {
		raw.Level = &level
	}
	return raw
}

// WordRequest is a validated request: the word is trimmed and lowercased and
// style and level carry their defaults.
type WordRequest struct {
	Word  string `json:"word"`
	Style Style  `json:"style"`
	Level Level  `json:"level"`
}

// Raw converts a validated request back into raw form.
func (r WordRequest) Raw() RawRequest {
	return NewRawRequest(r.Word, string(r.Style), string(r.Level))
}
