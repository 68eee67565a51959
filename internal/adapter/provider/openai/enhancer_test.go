package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/word-teacher/internal/config"
	"github.com/heartmarshall/word-teacher/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) config.EnhancerConfig {
	return config.EnhancerConfig{
		Provider:    config.ProviderOpenAI,
		APIKey:      "sk-test",
		Model:       "gpt-test",
		BaseURL:     baseURL,
		MaxTokens:   512,
		Temperature: 0.2,
		Timeout:     5 * time.Second,
	}
}

func testRequest() domain.WordRequest {
	return domain.WordRequest{Word: "hello", Style: domain.StyleHumorous, Level: domain.LevelBeginner}
}

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"model": "gpt-test",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"},
		},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 20},
	})
	return string(b)
}

const contentJSON = `{"introduction":"Hello is a greeting.","pronunciation":{"guide":"heh-LOH","tips":"Stress the second syllable."},` +
	`"meanings":[],"usage":{"commonPhrases":["say hello"],"situations":["meeting people"]},"funFacts":["It dates from the 1800s."],"summary":"Say hello!"}`

func TestEnhancer_Enhance_Success(t *testing.T) {
	t.Parallel()

	var got chatRequest
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completion(contentJSON))
	}))
	defer srv.Close()

	content, err := NewEnhancer(testConfig(srv.URL+"/"), newTestLogger()).Enhance(context.Background(), nil, testRequest())
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-test", got.Model)
	assert.Equal(t, 512, got.MaxTokens)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[1].Content, "humorous")

	assert.Equal(t, "Hello is a greeting.", content.Introduction)
	assert.Equal(t, []domain.MeaningExplanation{}, content.Meanings)
	assert.Equal(t, []string{"It dates from the 1800s."}, content.FunFacts)
}

func TestEnhancer_Enhance_MissingKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://127.0.0.1:1")
	cfg.APIKey = ""

	_, err := NewEnhancer(cfg, newTestLogger()).Enhance(context.Background(), nil, testRequest())
	require.Error(t, err)
	assert.Equal(t, domain.KindConfig, domain.KindOf(err))
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestEnhancer_Enhance_StatusError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	_, err := NewEnhancer(testConfig(srv.URL), newTestLogger()).Enhance(context.Background(), nil, testRequest())
	require.Error(t, err)

	var up *domain.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, http.StatusUnauthorized, up.StatusCode)
	assert.Equal(t, "openai provider error: 401 Unauthorized: Incorrect API key provided", err.Error())
	require.Error(t, up.Err)
	assert.Equal(t, "Incorrect API key provided", up.Err.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestEnhancer_Enhance_BadReplies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "no choices", body: `{"choices":[]}`},
		{name: "content not an object", body: completion("no idea")},
		{name: "content missing summary", body: completion(`{"introduction":"hi"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewEnhancer(testConfig(srv.URL), newTestLogger()).Enhance(context.Background(), nil, testRequest())
			require.Error(t, err)
			assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}

func TestEnhancer_Enhance_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	_, err := NewEnhancer(cfg, newTestLogger()).Enhance(context.Background(), nil, testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
