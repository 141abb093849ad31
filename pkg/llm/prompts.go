package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ytgebes/biospace/pkg/domain"
)

// default system prompt for chat answers
const defaultSystemPrompt = `You are a specialized AI assistant with expertise in NASA's bioscience research.
Your knowledge is grounded in a database of NASA bioscience publications.
Answer the user's question based *only* on the context provided by the user message.
If the context is insufficient, state that you cannot find the answer in the provided publications.
Be helpful and concise, and cite the titles of the papers you are referencing in your answer.`

const summarySystemPrompt = "You summarize scientific publications for a general audience. Output clean Markdown only."

const translateSystemPrompt = "You are a translation engine. Output only the requested JSON, no commentary."

// noContext is sent in place of publication context when nothing matched the question
const noContext = "No specific publications found for this query."

func buildSummaryPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Summarize this NASA bioscience paper. Output in clean Markdown with a ")
	sb.WriteString("level 3 heading (###) titled 'Key Findings' (using bullet points) and ")
	sb.WriteString("a level 3 heading (###) titled 'Overview Summary' (using a short plain-language paragraph).\n\n")
	sb.WriteString("Content:\n")
	sb.WriteString(text)
	return sb.String()
}

func buildChatPrompt(question string, pubs []domain.Publication) string {
	var sb strings.Builder
	sb.WriteString("--- CONTEXT ---\n")
	if len(pubs) == 0 {
		sb.WriteString(noContext)
	} else {
		sb.WriteString("Based on the following relevant publications:\n")
		for _, p := range pubs {
			sb.WriteString(fmt.Sprintf("- **Title:** %s\n", p.Title))
			if p.Link != "" {
				sb.WriteString(fmt.Sprintf("  Link: %s\n", p.Link))
			}
		}
	}
	sb.WriteString("\n\n--- USER'S QUESTION ---\n")
	sb.WriteString(question)
	return sb.String()
}

func buildTranslateObjectPrompt(src map[string]string, lang string) (string, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return "", fmt.Errorf("marshal strings: %w", err)
	}
	return fmt.Sprintf("Translate the VALUES of the following JSON object into %s.\n"+
		"Return ONLY a JSON object with the same keys and translated values (no commentary).\n"+
		"Input JSON:\n%s\n", lang, data), nil
}

func buildTranslateListPrompt(items []string, lang string) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return fmt.Sprintf("Translate this list of short strings into %s. "+
		"Return a JSON array of translated strings in the same order.\n"+
		"Input: %s\n", lang, data), nil
}

// jsonSpan returns the text between the first open and the last close delimiter, inclusive
func jsonSpan(content string, open, closing byte) (string, bool) {
	start := strings.IndexByte(content, open)
	end := strings.LastIndexByte(content, closing)
	if start == -1 || end == -1 || start >= end {
		return "", false
	}
	return content[start : end+1], true
}

// parseTranslatedObject checks the model output carries a non-empty value for every source key
func parseTranslatedObject(content string, src map[string]string) (map[string]string, error) {
	span, ok := jsonSpan(content, '{', '}')
	if !ok {
		return nil, domain.Fail(domain.KindTranslation, "no json object found in model output", nil)
	}
	var parsed map[string]string
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, domain.Fail(domain.KindTranslation, "failed to parse json object", err)
	}

	res := make(map[string]string, len(src))
	for k := range src {
		v, ok := parsed[k]
		if !ok || strings.TrimSpace(v) == "" {
			return nil, domain.Fail(domain.KindTranslation, fmt.Sprintf("translation is missing key %q", k), nil)
		}
		res[k] = v
	}
	return res, nil
}

// parseTranslatedList checks the model output is an array of the same length as the input
func parseTranslatedList(content string, items []string) ([]string, error) {
	span, ok := jsonSpan(content, '[', ']')
	if !ok {
		return nil, domain.Fail(domain.KindTranslation, "no json array found in model output", nil)
	}
	var parsed []string
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, domain.Fail(domain.KindTranslation, "failed to parse json array", err)
	}
	if len(parsed) != len(items) {
		return nil, domain.Fail(domain.KindTranslation,
			fmt.Sprintf("translated %d items, expected %d", len(parsed), len(items)), nil)
	}
	return parsed, nil
}
