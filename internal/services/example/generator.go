package example

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wortle/wortle-server/internal/model"
)

// Errors
var (
	// ErrNotConfigured means the OpenAI API key is absent. The example
	// endpoint degrades to a configuration error; no upstream call is
	// attempted.
	ErrNotConfigured = errors.New("openai api key not configured")
)

// Source tags which parse path produced a generation result
type Source string

const (
	// SourceJSON means the model honored the requested JSON shape
	SourceJSON Source = "json"
	// SourceLines means the response was salvaged line by line
	SourceLines Source = "lines"
)

// Result is a parsed generation outcome
type Result struct {
	Example model.Example
	Source  Source
}

// Generator produces an example sentence for a vocabulary word
type Generator interface {
	Generate(ctx context.Context, word string) (*Result, error)
}

const systemPrompt = "Kamu asisten yang menulis satu kalimat Jerman singkat " +
	"dan terjemahannya dalam Bahasa Indonesia. Hanya output JSON, tanpa penjelasan tambahan."

const promptTemplate = `Buat satu contoh kalimat singkat dalam bahasa Jerman yang menggunakan kata "%s".
Berikan juga terjemahan dalam bahasa Indonesia.
Output hanya berupa JSON dengan dua properti: "german" dan "translation".
Gunakan Zeitform: {Präsens / Perfekt}.
Gunakan 1 subject {ich, du, er/sie/es, wir, ihr, sie}.
Pastikan konjugasi kata kerja sesuai dengan subjek.
Jika menggunakan Perfekt, pilih auxiliary verb (haben/sein) yang tepat.

Contoh output:
{
  "german": "Das ist ein Beispiel.",
  "translation": "Ini adalah contoh."
}

Jangan tambahan penjelasan lain.`

// OpenAIGeneratorConfig configures the OpenAI chat-completions client
type OpenAIGeneratorConfig struct {
	// APIKey authenticates against OpenAI; empty means unconfigured
	APIKey string
	// BaseURL is the API root (overridable for tests)
	BaseURL string
	// HTTPClient is the client used for generation calls
	HTTPClient *http.Client

	Model       string
	MaxTokens   int
	Temperature float64
}

// DefaultOpenAIGeneratorConfig returns production defaults with a bounded
// request timeout
func DefaultOpenAIGeneratorConfig() OpenAIGeneratorConfig {
	return OpenAIGeneratorConfig{
		BaseURL:     "https://api.openai.com",
		HTTPClient:  &http.Client{Timeout: 15 * time.Second},
		Model:       "gpt-3.5-turbo",
		MaxTokens:   200,
		Temperature: 0.5,
	}
}

// OpenAIGenerator calls the OpenAI chat-completions endpoint with a fixed
// instructional prompt and parses the answer into a two-field example
type OpenAIGenerator struct {
	cfg OpenAIGeneratorConfig
}

// NewOpenAIGenerator creates a new OpenAIGenerator
func NewOpenAIGenerator(cfg OpenAIGeneratorConfig) *OpenAIGenerator {
	defaults := DefaultOpenAIGeneratorConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaults.HTTPClient
	}
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaults.MaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaults.Temperature
	}
	return &OpenAIGenerator{cfg: cfg}
}

// Ensure OpenAIGenerator implements the interface
var _ Generator = (*OpenAIGenerator)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate builds the prompt for the word, calls the completion endpoint
// and parses the response
func (g *OpenAIGenerator) Generate(ctx context.Context, word string) (*Result, error) {
	if g.cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(promptTemplate, word)},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil && resp.StatusCode < 400 {
		return nil, fmt.Errorf("openai response decode failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return nil, fmt.Errorf("openai api error: %s", parsed.Error.Message)
		}
		return nil, fmt.Errorf("openai api error: status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return nil, errors.New("invalid openai response: no choices")
	}

	return parseExample(strings.TrimSpace(parsed.Choices[0].Message.Content)), nil
}

// parseExample turns raw completion text into a two-field example.
//
// A direct JSON parse is attempted first. If the model did not honor the
// requested shape, the first non-blank line becomes the German sentence
// and the second becomes the translation, defaulting to the empty string
// when absent. Both paths coerce missing fields to "", never null, so the
// response shape stays uniform for clients.
func parseExample(text string) *Result {
	var fields struct {
		German      *string `json:"german"`
		Translation *string `json:"translation"`
	}
	if err := json.Unmarshal([]byte(text), &fields); err == nil {
		example := model.Example{}
		if fields.German != nil {
			example.German = *fields.German
		}
		if fields.Translation != nil {
			example.Translation = *fields.Translation
		}
		return &Result{Example: example, Source: SourceJSON}
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	example := model.Example{German: text}
	if len(lines) > 0 {
		example.German = lines[0]
	}
	if len(lines) > 1 {
		example.Translation = lines[1]
	}
	return &Result{Example: example, Source: SourceLines}
}
