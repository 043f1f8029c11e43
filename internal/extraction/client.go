// Package extraction is the upstream collaborator: it turns a raw
// incident narrative into a DescriptiveExtract using an LLM. It sits
// strictly outside the mapping core and communicates with it only
// through the typed extract; nothing here shares state with the mapper
// or validator.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/patrolsync/nibrs/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

// Extractor produces a DescriptiveExtract from a raw narrative.
type Extractor interface {
	Extract(ctx context.Context, narrative string) (models.DescriptiveExtract, error)
}

const systemPrompt = `You are a precise police report extraction system. You must respond with ONLY valid JSON matching this structure:
{"incident_number":"","incident_date":"","incident_time":"","offenses":[{"description":"","attempted":false}],"location":"","weapons":[],"victims":[{"age":-1,"sex":"","race":"","ethnicity":"","relationship":"","injury":""}],"offenders":[{"age":-1,"sex":"","race":"","ethnicity":"","relationship":""}],"properties":[{"description":"","value":0,"loss_description":""}],"narrative":""}
Extract only facts stated in the narrative. Use -1 for unknown ages and empty strings for unknown fields. Describe each distinct criminal act as one offense entry.`

// Config holds the OpenAI parameters for the extraction call.
type Config struct {
	Model     string
	MaxTokens int
}

// Client is the OpenAI-backed Extractor.
type Client struct {
	api *openai.Client
	cfg Config
}

// NewClient constructs a Client from an API key and config.
func NewClient(apiKey string, cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	return &Client{api: openai.NewClient(apiKey), cfg: cfg}
}

// Extract runs the extraction call and parses the JSON response.
func (c *Client) Extract(ctx context.Context, narrative string) (models.DescriptiveExtract, error) {
	if narrative == "" {
		return models.DescriptiveExtract{}, fmt.Errorf("narrative is empty")
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               c.cfg.Model,
		MaxCompletionTokens: c.cfg.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: narrative},
		},
	})
	if err != nil {
		return models.DescriptiveExtract{}, fmt.Errorf("extraction failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return models.DescriptiveExtract{}, fmt.Errorf("extraction returned no choices")
	}

	extract, err := ParseExtractResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return models.DescriptiveExtract{}, err
	}

	// The narrative is passed through verbatim regardless of what the
	// model echoed back.
	extract.Narrative = narrative
	return extract, nil
}

// ParseExtractResponse converts a model response into a
// DescriptiveExtract, recovering JSON wrapped in markdown or prose.
func ParseExtractResponse(response string) (models.DescriptiveExtract, error) {
	var extract models.DescriptiveExtract
	if err := json.Unmarshal([]byte(response), &extract); err == nil {
		return extract, nil
	}

	start := findJSONStart(response)
	end := findJSONEnd(response)
	if start < 0 || end <= start {
		return models.DescriptiveExtract{}, fmt.Errorf("no JSON object found in extraction response")
	}

	if err := json.Unmarshal([]byte(response[start:end+1]), &extract); err != nil {
		return models.DescriptiveExtract{}, fmt.Errorf("json parse error: %w", err)
	}
	return extract, nil
}

// findJSONStart looks for the start of a JSON object in text.
func findJSONStart(text string) int {
	for i, ch := range text {
		if ch == '{' {
			return i
		}
	}
	return -1
}

// findJSONEnd looks for the matching end of the first JSON object.
func findJSONEnd(text string) int {
	depth := 0
	inString := false
	escape := false

	for i, ch := range text {
		if escape {
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		if ch == '{' {
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
