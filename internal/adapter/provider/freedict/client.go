// Package freedict looks words up in the FreeDictionary API.
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/word-teacher/internal/config"
	"github.com/heartmarshall/word-teacher/internal/domain"
)

const (
	defaultBaseURL      = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 2 << 20

	providerName = "dictionary"
)

// Client fetches lexical entries from the FreeDictionary API. It never retries:
// a failed lookup is reported to the caller as is.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	maxBodyBytes int64
	log          *slog.Logger
}

// NewClient creates a Client from the dictionary settings.
func NewClient(cfg config.DictionaryConfig, logger *slog.Logger) *Client {
	c := NewClientWithURL(cfg.BaseURL, logger)
	if cfg.Timeout > 0 {
		c.httpClient.Timeout = cfg.Timeout
	}
	if cfg.MaxBodyBytes > 0 {
		c.maxBodyBytes = cfg.MaxBodyBytes
	}
	return c
}

// NewClientWithURL creates a Client with a custom base URL and default limits (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: defaultTimeout},
		maxBodyBytes: defaultMaxBodyBytes,
		log:          logger.With("adapter", "freedict"),
	}
}

// Lookup fetches every entry the provider has for word.
//
// A 404 yields *domain.NotFoundError, any other non-2xx status or transport
// failure yields *domain.UpstreamError, and a body that is not a non-empty
// entry array yields *domain.FormatError.
func (c *Client) Lookup(ctx context.Context, word string) ([]domain.LexicalEntry, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(word)

	c.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewUpstreamError(providerName, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, domain.NewUpstreamError(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.log.InfoContext(ctx, "freedict word not found", slog.String("word", word))
		return nil, &domain.NotFoundError{Word: word}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WarnContext(ctx, "freedict unexpected status", slog.String("word", word), slog.Int("status", resp.StatusCode))
		return nil, &domain.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, domain.NewUpstreamError(providerName, fmt.Errorf("read body: %w", err))
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, &domain.FormatError{
			Source:  providerName,
			Message: fmt.Sprintf("response for %q exceeds %d bytes", word, c.maxBodyBytes),
		}
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &domain.FormatError{
			Source:  providerName,
			Message: fmt.Sprintf("cannot decode entries for %q", word),
			Err:     err,
		}
	}
	if len(entries) == 0 {
		return nil, &domain.FormatError{
			Source:  providerName,
			Message: fmt.Sprintf("no entries returned for %q", word),
		}
	}

	result := mapAPIResponse(entries)

	c.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(result)),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// mapAPIResponse converts the API entries into domain entries one to one,
// keeping provider order and replacing missing lists with empty ones.
func mapAPIResponse(entries []apiEntry) []domain.LexicalEntry {
	result := make([]domain.LexicalEntry, 0, len(entries))

	for _, e := range entries {
		entry := domain.LexicalEntry{
			Word:       e.Word,
			Phonetic:   e.Phonetic,
			Phonetics:  make([]domain.PhoneticVariant, 0, len(e.Phonetics)),
			Origin:     e.Origin,
			Meanings:   make([]domain.Meaning, 0, len(e.Meanings)),
			License:    mapLicense(e.License),
			SourceURLs: e.SourceURLs,
		}
		if entry.SourceURLs == nil {
			entry.SourceURLs = []string{}
		}

		for _, ph := range e.Phonetics {
			entry.Phonetics = append(entry.Phonetics, domain.PhoneticVariant{
				Text:      strings.TrimSpace(ph.Text),
				Audio:     normalizeAudioURL(ph.Audio),
				SourceURL: ph.SourceURL,
				License:   mapLicense(ph.License),
			})
		}

		for _, m := range e.Meanings {
			meaning := domain.Meaning{
				PartOfSpeech: m.PartOfSpeech,
				Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
				Synonyms:     m.Synonyms,
				Antonyms:     m.Antonyms,
			}
			for _, d := range m.Definitions {
				meaning.Definitions = append(meaning.Definitions, domain.Definition{
					Definition: d.Definition,
					Example:    d.Example,
					Synonyms:   d.Synonyms,
					Antonyms:   d.Antonyms,
				})
			}
			entry.Meanings = append(entry.Meanings, meaning)
		}

		result = append(result, entry)
	}

	return result
}

func mapLicense(l *apiLicense) *domain.License {
	if l == nil || (l.Name == "" && l.URL == "") {
		return nil
	}
	return &domain.License{Name: l.Name, URL: l.URL}
}

// normalizeAudioURL turns the protocol-relative URLs some entries carry
// ("//ssl.gstatic.com/...") into https URLs.
func normalizeAudioURL(audio string) string {
	audio = strings.TrimSpace(audio)
	if strings.HasPrefix(audio, "//") {
		return "https:" + audio
	}
	return audio
}
