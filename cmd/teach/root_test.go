package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

func setupProviders(t *testing.T, apiKey string) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dict := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ephemeral" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `[{"word":"ephemeral","meanings":[{"partOfSpeech":"adjective","definitions":[{"definition":"Lasting a very short time."}]}]}]`)
	}))
	t.Cleanup(dict.Close)

	enh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content := `{"introduction":"Ephemeral things fade fast.","pronunciation":{"guide":"ih-FEM-er-al","tips":""},"meanings":[],"usage":{"commonPhrases":[],"situations":[]},"summary":"Short-lived."}`
		body, _ := json.Marshal(map[string]any{"choices": []map[string]any{{"message": map[string]any{"content": content}}}})
		_, _ = w.Write(body)
	}))
	t.Cleanup(enh.Close)

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DICTIONARY_BASE_URL", dict.URL)
	t.Setenv("ENHANCER_PROVIDER", "openai")
	t.Setenv("ENHANCER_BASE_URL", enh.URL)
	t.Setenv("ENHANCER_MODEL", "gpt-test")
	t.Setenv("ENHANCER_API_KEY", apiKey)
	t.Setenv("OPENAI_API_KEY", "")
	if apiKey == "" {
		os.Unsetenv("ENHANCER_API_KEY")
	}
	os.Unsetenv("OPENAI_API_KEY")
}

func execute(t *testing.T, args ...string) (domain.TeachingResponse, string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	var resp domain.TeachingResponse
	if out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	}
	return resp, out.String(), err
}

func TestTeach_Success(t *testing.T) {
	setupProviders(t, "sk-test")

	resp, raw, err := execute(t, "Ephemeral", "--style", "academic", "--pretty")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "ephemeral", resp.Word)
	assert.Equal(t, "academic", resp.Style)
	assert.Equal(t, "Short-lived.", resp.EnhancedContent.Summary)
	assert.Contains(t, raw, "\n  \"word\": \"ephemeral\"")
}

func TestTeach_FailureExitsWithError(t *testing.T) {
	setupProviders(t, "sk-test")

	resp, _, err := execute(t, "zzzznotaword")
	require.ErrorIs(t, err, errTeachingFailed)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "fetch dictionary: ")
}

func TestTeach_MissingCredential(t *testing.T) {
	setupProviders(t, "")

	resp, _, err := execute(t, "ephemeral")
	require.ErrorIs(t, err, errTeachingFailed)
	assert.Contains(t, resp.Error, "enhance content: config: ")
}

func TestTeach_InvalidLevel(t *testing.T) {
	setupProviders(t, "sk-test")

	resp, _, err := execute(t, "ephemeral", "--level", "expert")
	require.ErrorIs(t, err, errTeachingFailed)
	assert.Contains(t, resp.Error, `invalid level "expert"`)
}

func TestTeach_RequiresExactlyOneWord(t *testing.T) {
	setupProviders(t, "sk-test")

	_, out, err := execute(t)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errTeachingFailed)
	assert.Empty(t, out)
}
