package domain

// EnhancedContent is the generated teaching document for one word. Its
// meanings are generated independently of the dictionary entry's meanings.
type EnhancedContent struct {
	Introduction  string               `json:"introduction"`
	Pronunciation PronunciationGuide   `json:"pronunciation"`
	Meanings      []MeaningExplanation `json:"meanings"`
	Usage         Usage                `json:"usage"`
	FunFacts      []string             `json:"funFacts,omitempty"`
	Summary       string               `json:"summary"`
}

// PronunciationGuide explains how to say the word.
type PronunciationGuide struct {
	Guide string `json:"guide"`
	Tips  string `json:"tips"`
}

// MeaningExplanation teaches one part of speech.
type MeaningExplanation struct {
	PartOfSpeech string   `json:"partOfSpeech"`
	Explanation  string   `json:"explanation"`
	Examples     []string `json:"examples"`
	MemoryTricks []string `json:"memoryTricks"`
}

// Usage lists common collocations and situations for the word.
type Usage struct {
	CommonPhrases []string `json:"commonPhrases"`
	Situations    []string `json:"situations"`
}

// EmptyEnhancedContent is the content carried by failure responses: every
// string empty, every list empty, no fun facts.
func EmptyEnhancedContent() EnhancedContent {
	return EnhancedContent{
		Meanings: []MeaningExplanation{},
		Usage: Usage{
			CommonPhrases: []string{},
			Situations:    []string{},
		},
	}
}

// Normalized returns a copy with nil lists replaced by empty ones so the JSON
// form always carries arrays. FunFacts stays nil when there are none.
func (c EnhancedContent) Normalized() EnhancedContent {
	meanings := make([]MeaningExplanation, len(c.Meanings))
	for i, m := range c.Meanings {
		m.Examples = nonNil(m.Examples)
		m.MemoryTricks = nonNil(m.MemoryTricks)
		meanings[i] = m
	}
	c.Meanings = meanings
	c.Usage.CommonPhrases = nonNil(c.Usage.CommonPhrases)
	c.Usage.Situations = nonNil(c.Usage.Situations)
	if len(c.FunFacts) == 0 {
		c.FunFacts = nil
	}
	return c
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
