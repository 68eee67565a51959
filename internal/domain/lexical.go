package domain

// MaxDefinitionsPerMeaning caps the definitions kept for each meaning after processing.
const MaxDefinitionsPerMeaning = 3

// LexicalEntry is one dictionary headword record. The JSON shape follows the
// FreeDictionary API and is returned to clients unchanged as originalData.
type LexicalEntry struct {
	Word       string            `json:"word"`
	Phonetic   string            `json:"phonetic,omitempty"`
	Phonetics  []PhoneticVariant `json:"phonetics"`
	Origin     string            `json:"origin,omitempty"`
	Meanings   []Meaning         `json:"meanings"`
	License    *License          `json:"license,omitempty"`
	SourceURLs []string          `json:"sourceUrls"`
}

// PhoneticVariant is one transcription and/or audio recording of the headword.
type PhoneticVariant struct {
	Text      string   `json:"text,omitempty"`
	Audio     string   `json:"audio,omitempty"`
	SourceURL string   `json:"sourceUrl,omitempty"`
	License   *License `json:"license,omitempty"`
}

// Meaning groups the definitions of one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single sense with an optional usage example.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

// License describes the licensing terms of dictionary content.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PhoneticChoice is the transcription picked for display. Both fields may be empty.
type PhoneticChoice struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// IsEmpty reports whether no phonetic information was found.
func (p PhoneticChoice) IsEmpty() bool { return p.Text == "" && p.Audio == "" }

// ProcessEntries returns a copy of entries with every meaning's definitions
// truncated to the first MaxDefinitionsPerMeaning. Order is preserved and the
// input is not modified.
func ProcessEntries(entries []LexicalEntry) []LexicalEntry {
	out := make([]LexicalEntry, len(entries))
	for i, entry := range entries {
		meanings := make([]Meaning, len(entry.Meanings))
		for j, m := range entry.Meanings {
			defs := m.Definitions
			if len(defs) > MaxDefinitionsPerMeaning {
				defs = defs[:MaxDefinitionsPerMeaning]
			}
			m.Definitions = append([]Definition(nil), defs...)
			if m.Definitions == nil {
				m.Definitions = []Definition{}
			}
			meanings[j] = m
		}
		entry.Meanings = meanings
		out[i] = entry
	}
	return out
}

// BestPhonetic picks the transcription to present: the first variant carrying
// both audio and text, else the first carrying text, else an empty choice.
// The input order decides ties.
func BestPhonetic(variants []PhoneticVariant) PhoneticChoice {
	for _, v := range variants {
		if v.Audio != "" && v.Text != "" {
			return PhoneticChoice{Text: v.Text, Audio: v.Audio}
		}
	}
	for _, v := range variants {
		if v.Text != "" {
			return PhoneticChoice{Text: v.Text}
		}
	}
	return PhoneticChoice{}
}

// EntriesPhonetic returns BestPhonetic of the first entry, or an empty choice
// when there are no entries.
func EntriesPhonetic(entries []LexicalEntry) PhoneticChoice {
	if len(entries) == 0 {
		return PhoneticChoice{}
	}
	return BestPhonetic(entries[0].Phonetics)
}
