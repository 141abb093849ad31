package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ytgebes/biospace/pkg/config"
	"github.com/ytgebes/biospace/pkg/content"
	"github.com/ytgebes/biospace/pkg/domain"
)

// Assistant uses LLM to summarize publications, answer questions and translate UI text.
// Every action makes at most one model call, failures are not retried.
type Assistant struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewAssistant creates a new LLM assistant
func NewAssistant(cfg config.LLMConfig) *Assistant {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Assistant{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// Summarize produces a Markdown summary of the document text.
// Blank text is rejected without calling the model.
func (a *Assistant) Summarize(ctx context.Context, text string) domain.SummaryResult {
	if strings.TrimSpace(text) == "" {
		return domain.SummaryFailed(domain.KindParse, "no text to summarize")
	}

	prompt := buildSummaryPrompt(content.Truncate(text, a.config.SummaryInputChars))
	reply, err := a.complete(ctx, summarySystemPrompt, prompt)
	if err != nil {
		log.Printf("[WARN] summarize failed: %v", err)
		return domain.SummaryFailed(domain.KindModel, err.Error())
	}
	return domain.SummaryResult{Markdown: reply}
}

// SummarizeFetch summarizes a fetched document, a failed fetch is passed through untouched
func (a *Assistant) SummarizeFetch(ctx context.Context, fetched domain.FetchResult) domain.SummaryResult {
	if !fetched.OK() {
		return domain.SummaryFailed(fetched.Kind, fetched.Err)
	}
	return a.Summarize(ctx, fetched.Text)
}

// Ask answers a question using only the given publications as context
func (a *Assistant) Ask(ctx context.Context, question string, pubs []domain.Publication) domain.SummaryResult {
	reply, err := a.complete(ctx, a.systemMsg, buildChatPrompt(question, pubs))
	if err != nil {
		log.Printf("[WARN] chat answer failed: %v", err)
		return domain.SummaryFailed(domain.KindModel, err.Error())
	}
	return domain.SummaryResult{Markdown: reply}
}

// TranslateStrings translates the values of src into lang keeping the keys.
// English is returned as is.
func (a *Assistant) TranslateStrings(ctx context.Context, src map[string]string, lang string) (map[string]string, error) {
	if lang == domain.DefaultLanguage || len(src) == 0 {
		res := make(map[string]string, len(src))
		for k, v := range src {
			res[k] = v
		}
		return res, nil
	}

	prompt, err := buildTranslateObjectPrompt(src, lang)
	if err != nil {
		return nil, domain.Fail(domain.KindTranslation, "can't build prompt", err)
	}
	reply, err := a.complete(ctx, translateSystemPrompt, prompt)
	if err != nil {
		return nil, domain.Fail(domain.KindTranslation, "translate strings", err)
	}
	return parseTranslatedObject(reply, src)
}

// TranslateList translates items into lang preserving order and length
func (a *Assistant) TranslateList(ctx context.Context, items []string, lang string) ([]string, error) {
	if lang == domain.DefaultLanguage || len(items) == 0 {
		res := make([]string, len(items))
		copy(res, items)
		return res, nil
	}

	prompt, err := buildTranslateListPrompt(items, lang)
	if err != nil {
		return nil, domain.Fail(domain.KindTranslation, "can't build prompt", err)
	}
	reply, err := a.complete(ctx, translateSystemPrompt, prompt)
	if err != nil {
		return nil, domain.Fail(domain.KindTranslation, "translate list", err)
	}
	return parseTranslatedList(reply, items)
}

// complete makes a single chat completion call and returns the first choice text
func (a *Assistant) complete(ctx context.Context, system, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       a.config.Model,
		Temperature: float32(a.config.Temperature),
		MaxTokens:   a.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from llm")
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("empty response from llm")
	}
	return reply, nil
}
