// Package prompt builds the teaching prompt sent to a language model and
// parses the model's reply into domain.EnhancedContent.
package prompt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

var styleTones = map[domain.Style]string{
	domain.StyleHumorous:       "Be playful and witty. Use light jokes, puns and funny mental images, but keep every fact correct.",
	domain.StyleSerious:        "Be precise and formal. Prefer clear definitions and accurate usage notes over entertainment.",
	domain.StyleStorytelling:   "Teach through a short narrative. Introduce the word inside a small story and keep returning to it.",
	domain.StyleConversational: "Talk to the learner like a friendly tutor. Use second person and everyday situations.",
	domain.StyleAcademic:       "Write like a linguistics lecturer. Mention etymology, register and collocation patterns where relevant.",
}

var levelAudiences = map[domain.Level]string{
	domain.LevelBeginner:     "The learner is a beginner (A1-A2). Use short sentences and only very common vocabulary.",
	domain.LevelIntermediate: "The learner is intermediate (B1-B2). Use natural sentences and explain less common words you use.",
	domain.LevelAdvanced:     "The learner is advanced (C1-C2). Use rich language and cover nuance, register and idiomatic use.",
}

const schema = `{
  "introduction": "<one or two sentences introducing the word>",
  "pronunciation": {
    "guide": "<how to pronounce it, using the phonetic transcription when available>",
    "tips": "<practical pronunciation tips>"
  },
  "meanings": [
    {
      "partOfSpeech": "<noun|verb|adjective|...>",
      "explanation": "<learner-friendly explanation>",
      "examples": ["<example sentence>"],
      "memoryTricks": ["<mnemonic or memory aid>"]
    }
  ],
  "usage": {
    "commonPhrases": ["<collocation or phrase>"],
    "situations": ["<situation where the word is used>"]
  },
  "funFacts": ["<optional interesting fact>"],
  "summary": "<one sentence recap>"
}`

// BuildTeachingPrompt renders the prompt for one validated request. The
// entries are embedded as JSON; unknown styles and levels fall back to the
// defaults' instructions.
func BuildTeachingPrompt(entries []domain.LexicalEntry, req domain.WordRequest) (string, error) {
	if entries == nil {
		entries = []domain.LexicalEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal dictionary entries: %w", err)
	}

	tone, ok := styleTones[req.Style]
	if !ok {
		tone = styleTones[domain.DefaultStyle]
	}
	audience, ok := levelAudiences[req.Level]
	if !ok {
		audience = levelAudiences[domain.DefaultLevel]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an experienced English teacher. Teach the word %q to a language learner.\n\n", req.Word)
	fmt.Fprintf(&b, "Style (%s): %s\n", req.Style, tone)
	fmt.Fprintf(&b, "Audience (%s): %s\n", req.Level, audience)

	if ph := domain.EntriesPhonetic(entries); ph.Text != "" {
		fmt.Fprintf(&b, "Phonetic transcription: %s\n", ph.Text)
	}

	fmt.Fprintf(&b, "\nDictionary data:\n%s\n\n", data)
	b.WriteString("Output ONLY a valid JSON object matching this exact schema:\n")
	b.WriteString(schema)
	b.WriteString(`

Rules:
- Base every meaning on the dictionary data; do not invent senses it does not contain
- Give 2-3 example sentences per meaning
- "funFacts" may be omitted when there is nothing interesting to say
- "introduction" and "summary" must not be empty
- Output ONLY the JSON, no markdown, no explanations`)

	return b.String(), nil
}

// ErrNoJSONObject is returned when a reply contains no JSON object at all.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// ParseEnhancedContent extracts the JSON object between the first "{" and the
// last "}" of text and decodes it strictly into EnhancedContent. Unknown
// fields, trailing data and an empty introduction or summary are rejected.
func ParseEnhancedContent(text string) (domain.EnhancedContent, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return domain.EnhancedContent{}, err
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	var content domain.EnhancedContent
	if err := dec.Decode(&content); err != nil {
		return domain.EnhancedContent{}, fmt.Errorf("decode content: %w", err)
	}
	if dec.More() {
		return domain.EnhancedContent{}, errors.New("decode content: unexpected data after object")
	}

	if strings.TrimSpace(content.Introduction) == "" {
		return domain.EnhancedContent{}, errors.New("missing introduction")
	}
	if strings.TrimSpace(content.Summary) == "" {
		return domain.EnhancedContent{}, errors.New("missing summary")
	}

	return content.Normalized(), nil
}

func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", ErrNoJSONObject
	}
	return s[start : end+1], nil
}
