// Package summarize produces the explanation paragraph rendered under the
// results table. With an Anthropic key configured the text is generated
// from the feature table; otherwise the configured or built-in fallback is
// used.
package summarize

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"autoready/internal/config"
	"autoready/internal/domain"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

const fallbackExplanation = "Departments with high task repetition, structured documents, and dense " +
	"internal communication are the strongest candidates for workflow automation. " +
	"Low or negative average sentiment combined with high stakeholder dependency " +
	"usually signals coordination overhead that automation alone will not remove."

const systemPrompt = "You are an operations analyst. Given per-department workflow metrics, " +
	"write one short paragraph (3-5 sentences, plain prose, no markdown) explaining which " +
	"departments look ready for workflow automation and why. Reference departments by name."

// Explanation returns the text to render. LLM failures fall back to the
// static explanation rather than failing the run.
func Explanation(cfg config.Config, table domain.FeatureTable) string {
	fallback := cfg.Explanation
	if fallback == "" {
		fallback = fallbackExplanation
	}
	if cfg.AnthropicAPIKey == "" || len(table) == 0 {
		return fallback
	}

	model := cfg.LLMModel
	if model == "" {
		model = defaultAnthropicModel
	}
	text, err := callAnthropic(cfg.AnthropicAPIKey, model, systemPrompt, buildPrompt(table))
	if err != nil {
		log.Printf("explanation summarizer failed, using fallback: %v", err)
		return fallback
	}
	return strings.TrimSpace(text)
}

func buildPrompt(table domain.FeatureTable) string {
	var b strings.Builder
	b.WriteString("Per-department workflow metrics:\n")
	for _, rec := range table {
		fmt.Fprintf(&b,
			"- %s: tasks=%d complexity=%d documents=%d communications=%d sentiment=%.2f dependency=%.2f time_spread=%.0fs\n",
			rec.DepartmentName, rec.TaskRepetitionScore, rec.WorkflowComplexity,
			rec.DataStructureScore, rec.CommunicationFrequency, rec.AverageSentiment,
			rec.StakeholderDependency, rec.TimeSpread,
		)
	}
	return b.String()
}

func callAnthropic(apiKey, model, systemPrompt, userPrompt string) (string, error) {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	message, err := client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("explanation model=%s size=%d tokens_in=%d tokens_out=%d",
				model, len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens)
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in Anthropic response")
}
