package domain

import "time"

// TimestampLayout renders timestamps as ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// UnknownWord stands in for the word of a failed request that carried none.
const UnknownWord = "unknown"

// TeachingResponse is the envelope returned for every teaching request.
// When Success is false, OriginalData is empty, EnhancedContent is
// EmptyEnhancedContent and Error holds the reason.
type TeachingResponse struct {
	Word            string          `json:"word"`
	Style           string          `json:"style"`
	OriginalData    []LexicalEntry  `json:"originalData"`
	EnhancedContent EnhancedContent `json:"enhancedContent"`
	Timestamp       string          `json:"timestamp"`
	Success         bool            `json:"success"`
	Error           string          `json:"error,omitempty"`
}

// FormatTimestamp renders t the way TeachingResponse.Timestamp expects.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewSuccessResponse assembles the envelope for a completed pipeline run.
func NewSuccessResponse(req WordRequest, entries []LexicalEntry, content EnhancedContent, now time.Time) TeachingResponse {
	if entries == nil {
		entries = []LexicalEntry{}
	}
	return TeachingResponse{
		Word:            req.Word,
		Style:           string(req.Style),
		OriginalData:    entries,
		EnhancedContent: content.Normalized(),
		Timestamp:       FormatTimestamp(now),
		Success:         true,
	}
}

// NewFailureResponse assembles the envelope for a failed run. Word and style
// fall back to the raw input, then to UnknownWord and DefaultStyle.
func NewFailureResponse(raw RawRequest, errMsg string, now time.Time) TeachingResponse {
	word := UnknownWord
	if raw.Word != nil && *raw.Word != "" {
		word = *raw.Word
	}
	style := string(DefaultStyle)
	if raw.Style != nil && *raw.Style != "" {
		style = *raw.Style
	}
	return TeachingResponse{
		Word:            word,
		Style:           style,
		OriginalData:    []LexicalEntry{},
		EnhancedContent: EmptyEnhancedContent(),
		Timestamp:       FormatTimestamp(now),
		Success:         false,
		Error:           errMsg,
	}
}
