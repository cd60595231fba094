package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/shared"
)

const systemPrompt = `You classify leadership-methodology content against a fixed taxonomy.
Answer with a single JSON object with the keys primaryPillar, subComponent, competence, behavior, maturityLevel.
Use empty strings for levels you cannot determine.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client proposes taxonomy classifications for new content through an
// OpenAI-compatible chat-completions API.
type Client struct {
	httpClient *http.Client
	provider   Provider
	baseURL    string
	model      string
}

func New() (*Client, error) {
	providerName := os.Getenv("CLASSIFIER_PROVIDER")
	if providerName == "" {
		providerName = "openai"
	}
	provider := GetProvider(providerName)
	if provider == nil {
		return nil, fmt.Errorf("unknown classifier provider %q", providerName)
	}

	model := os.Getenv("CLASSIFIER_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		provider:   provider,
		baseURL:    os.Getenv("CLASSIFIER_BASE_URL"),
		model:      model,
	}, nil
}

func (c *Client) Classify(title, observations string) (dtos.ClassificationProposal, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Title: %s\n\nObservations: %s", title, observations)},
		},
	})
	if err != nil {
		return dtos.ClassificationProposal{}, err
	}

	req, err := http.NewRequest(http.MethodPost, c.provider.BuildURL(c.baseURL), bytes.NewReader(payload))
	if err != nil {
		return dtos.ClassificationProposal{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.provider.SetHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dtos.ClassificationProposal{}, errors.Wrap(err, "classification request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dtos.ClassificationProposal{}, fmt.Errorf("classification request returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return dtos.ClassificationProposal{}, errors.Wrap(err, "could not decode classification response")
	}
	if len(parsed.Choices) == 0 {
		return dtos.ClassificationProposal{}, errors.New("classification response contains no choices")
	}

	return parseProposal(parsed.Choices[0].Message.Content)
}

// parseProposal tolerates the model wrapping its JSON answer in a markdown
// code fence.
func parseProposal(content string) (dtos.ClassificationProposal, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var proposal dtos.ClassificationProposal
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &proposal); err != nil {
		return dtos.ClassificationProposal{}, errors.Wrap(err, "could not parse classification proposal")
	}
	return proposal, nil
}

// Module provides the classifier client as the shared interface
var Module = fx.Options(
	fx.Provide(fx.Annotate(New, fx.As(new(shared.Classifier)))),
)
