package example

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestParseExampleJSON(t *testing.T) {
	result := parseExample(`{"german": "Das Haus ist groß.", "translation": "Rumah itu besar."}`)

	assert.Equal(t, SourceJSON, result.Source)
	assert.Equal(t, "Das Haus ist groß.", result.Example.German)
	assert.Equal(t, "Rumah itu besar.", result.Example.Translation)
}

func TestParseExampleJSONMissingFields(t *testing.T) {
	result := parseExample(`{"german": "Das Haus ist groß."}`)

	assert.Equal(t, SourceJSON, result.Source)
	assert.Equal(t, "Das Haus ist groß.", result.Example.German)
	assert.Equal(t, "", result.Example.Translation, "missing fields coerce to empty string")
}

func TestParseExampleJSONNullFields(t *testing.T) {
	result := parseExample(`{"german": null, "translation": null}`)

	assert.Equal(t, SourceJSON, result.Source)
	assert.Equal(t, "", result.Example.German)
	assert.Equal(t, "", result.Example.Translation)
}

func TestParseExampleLines(t *testing.T) {
	result := parseExample("Das Haus ist groß.\nRumah itu besar.")

	assert.Equal(t, SourceLines, result.Source)
	assert.Equal(t, "Das Haus ist groß.", result.Example.German)
	assert.Equal(t, "Rumah itu besar.", result.Example.Translation)
}

func TestParseExampleLinesSkipsBlanks(t *testing.T) {
	result := parseExample("Das Haus ist groß.\n\n   \nRumah itu besar.")

	assert.Equal(t, SourceLines, result.Source)
	assert.Equal(t, "Das Haus ist groß.", result.Example.German)
	assert.Equal(t, "Rumah itu besar.", result.Example.Translation)
}

func TestParseExampleSingleLine(t *testing.T) {
	result := parseExample("Das Haus ist groß.")

	assert.Equal(t, SourceLines, result.Source)
	assert.Equal(t, "Das Haus ist groß.", result.Example.German)
	assert.Equal(t, "", result.Example.Translation)
}

type OpenAIGeneratorSuite struct {
	suite.Suite
	ctx context.Context
}

func TestOpenAIGeneratorSuite(t *testing.T) {
	suite.Run(t, new(OpenAIGeneratorSuite))
}

func (s *OpenAIGeneratorSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *OpenAIGeneratorSuite) newGenerator(handler http.HandlerFunc) *OpenAIGenerator {
	server := httptest.NewServer(handler)
	s.T().Cleanup(server.Close)
	return NewOpenAIGenerator(OpenAIGeneratorConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
}

func completionResponse(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(body)
}

func (s *OpenAIGeneratorSuite) TestGenerateSuccess() {
	generator := s.newGenerator(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/v1/chat/completions", r.URL.Path)
		s.Equal("Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("gpt-3.5-turbo", req.Model)
		s.Equal(200, req.MaxTokens)
		s.InDelta(0.5, req.Temperature, 0.001)
		s.Require().Len(req.Messages, 2)
		s.Contains(req.Messages[1].Content, `"Haus"`)

		fmt.Fprint(w, completionResponse(`{"german": "Das Haus ist groß.", "translation": "Rumah itu besar."}`))
	})

	result, err := generator.Generate(s.ctx, "Haus")
	s.Require().NoError(err)
	s.Equal(SourceJSON, result.Source)
	s.Equal("Das Haus ist groß.", result.Example.German)
	s.Equal("Rumah itu besar.", result.Example.Translation)
}

func (s *OpenAIGeneratorSuite) TestGenerateLinesFallback() {
	generator := s.newGenerator(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionResponse("Das Haus ist groß.\nRumah itu besar."))
	})

	result, err := generator.Generate(s.ctx, "Haus")
	s.Require().NoError(err)
	s.Equal(SourceLines, result.Source)
	s.Equal("Das Haus ist groß.", result.Example.German)
	s.Equal("Rumah itu besar.", result.Example.Translation)
}

func (s *OpenAIGeneratorSuite) TestGenerateAPIError() {
	generator := s.newGenerator(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "Incorrect API key provided"}}`)
	})

	_, err := generator.Generate(s.ctx, "Haus")
	s.Require().Error(err)
	s.Contains(err.Error(), "Incorrect API key provided")
}

func (s *OpenAIGeneratorSuite) TestGenerateNoChoices() {
	generator := s.newGenerator(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	})

	_, err := generator.Generate(s.ctx, "Haus")
	s.Require().Error(err)
	s.Contains(err.Error(), "no choices")
}

func (s *OpenAIGeneratorSuite) TestGenerateWithoutKeyMakesNoRequest() {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	s.T().Cleanup(server.Close)

	generator := NewOpenAIGenerator(OpenAIGeneratorConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})

	_, err := generator.Generate(s.ctx, "Haus")
	s.ErrorIs(err, ErrNotConfigured)
	s.Equal(0, calls)
}

func TestPromptMentionsRequestedShape(t *testing.T) {
	prompt := fmt.Sprintf(promptTemplate, "Haus")

	require.True(t, strings.Contains(prompt, `"german"`))
	require.True(t, strings.Contains(prompt, `"translation"`))
}
