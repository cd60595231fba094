package classifier

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseProposal(t *testing.T) {
	t.Run("should parse a plain JSON answer", func(t *testing.T) {
		proposal, err := parseProposal(`{"primaryPillar":"Shine In","subComponent":"Self Awareness","competence":"Emotional Insight","behavior":"Names own emotions","maturityLevel":"intermediate"}`)

		assert.NoError(t, err)
		assert.Equal(t, "Shine In", proposal.PrimaryPillar)
		assert.Equal(t, "intermediate", proposal.MaturityLevel)
	})

	t.Run("should tolerate a markdown code fence", func(t *testing.T) {
		proposal, err := parseProposal("```json\n{\"primaryPillar\":\"Shine Out\"}\n```")

		assert.NoError(t, err)
		assert.Equal(t, "Shine Out", proposal.PrimaryPillar)
	})

	t.Run("should fail on prose", func(t *testing.T) {
		_, err := parseProposal("I think this belongs to the Shine In pillar.")

		assert.Error(t, err)
	})
}

func TestBuildURL(t *testing.T) {
	provider := &OpenAIProvider{}

	t.Run("should default to the OpenAI endpoint", func(t *testing.T) {
		assert.Equal(t, "https://api.openai.com/v1/chat/completions", provider.BuildURL(""))
	})

	t.Run("should append the chat completions path to custom bases", func(t *testing.T) {
		assert.Equal(t, "http://localhost:11434/v1/chat/completions", provider.BuildURL("http://localhost:11434/v1/"))
	})

	t.Run("should not double the path", func(t *testing.T) {
		assert.Equal(t, "http://proxy/v1/chat/completions", provider.BuildURL("http://proxy/v1/chat/completions"))
	})
}

func TestClassify(t *testing.T) {
	t.Run("should post a chat completion and parse the proposal", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"primaryPillar\":\"Shine In\",\"behavior\":\"Asks for feedback\"}"}}]}`)) // nolint: errcheck
		}))
		defer srv.Close()

		client := &Client{
			httpClient: &http.Client{Timeout: time.Second},
			provider:   &OpenAIProvider{},
			baseURL:    srv.URL,
			model:      "gpt-4o-mini",
		}

		proposal, err := client.Classify("Feedback workshop", "recorded session")

		assert.NoError(t, err)
		assert.Equal(t, "Shine In", proposal.PrimaryPillar)
		assert.Equal(t, "Asks for feedback", proposal.Behavior)
	})

	t.Run("should surface non-200 responses as errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := &Client{
			httpClient: &http.Client{Timeout: time.Second},
			provider:   &OpenAIProvider{},
			baseURL:    srv.URL,
			model:      "gpt-4o-mini",
		}

		_, err := client.Classify("x", "y")

		assert.Error(t, err)
	})
}
