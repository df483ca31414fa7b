// Package draft generates outline drafts from a free-form topic using an
// LLM completion endpoint.
//
// The package is a thin boundary: [Completer] is "prompt in, text out", and
// [Outline] turns a topic into a validated outline Structure by prompting for
// the outline JSON contract and parsing the response. The bundled [Client]
// speaks the OpenAI-compatible chat-completions protocol, which local
// runtimes (llama.cpp, vLLM, Ollama) also serve.
package draft

import (
	"context"
	"strings"

	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

// Completer produces a text completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const promptTemplate = `Create a mindmap outline for the topic below.

Respond with ONLY a JSON object in this exact shape:

{
  "title": "short central topic",
  "branches": [
    {
      "label": "main topic",
      "subbranches": [
        {"label": "sub-topic"}
      ]
    }
  ]
}

Rules:
- 4 to 7 branches, each with 2 or 3 subbranches
- labels are short phrases, not sentences
- no markdown outside the JSON

Topic: %TOPIC%`

// Outline asks the completer for an outline on the given topic and parses
// the response into a validated structure. Model output that does not parse
// as a valid outline reports COMPLETION_FAILED with the validation cause.
func Outline(ctx context.Context, c Completer, topic string) (*outline.Structure, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "draft topic is empty")
	}

	prompt := strings.ReplaceAll(promptTemplate, "%TOPIC%", topic)
	text, err := c.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s, err := outline.Read(strings.NewReader(extractJSON(text)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCompletionFailed, err,
			"model response is not a valid outline")
	}
	return s, nil
}

// extractJSON pulls the JSON payload out of a completion. Models often wrap
// JSON in a fenced code block or surround it with prose; this strips fences
// and trims to the outermost braces.
func extractJSON(text string) string {
	if i := strings.Index(text, "```json"); i >= 0 {
		text = text[i+len("```json"):]
		if j := strings.Index(text, "```"); j >= 0 {
			text = text[:j]
		}
	} else if i := strings.Index(text, "```"); i >= 0 {
		text = text[i+len("```"):]
		if j := strings.Index(text, "```"); j >= 0 {
			text = text[:j]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}
