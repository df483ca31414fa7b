package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanderlabs/mindweave/pkg/draft"
	"github.com/yanderlabs/mindweave/pkg/outline"
	"github.com/yanderlabs/mindweave/pkg/pipeline"
)

// draftCommand creates the draft command for generating outlines with an LLM.
func (c *CLI) draftCommand() *cobra.Command {
	var (
		baseURL string
		model   string
		output  string
		render  bool
		theme   string
	)

	cmd := &cobra.Command{
		Use:   "draft [topic...]",
		Short: "Draft an outline for a topic using a completion endpoint",
		Long: `Draft a mindmap outline from a free-form topic.

The draft command asks an OpenAI-compatible chat-completions endpoint for an
outline (title, branches, sub-branches) and saves it as a JSON file ready
for 'mindweave render'. Point --base-url at a local llama.cpp, vLLM, or
Ollama server to draft without an API key; for hosted endpoints set
MINDWEAVE_API_KEY or the draft.api_key config value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")
			return c.runDraft(cmd.Context(), topic, baseURL, model, output, render, theme)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", c.Config.Draft.BaseURL, "completion endpoint base URL")
	cmd.Flags().StringVar(&model, "model", c.Config.Draft.Model, "model name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "outline file to write (default: derived from the drafted title)")
	cmd.Flags().BoolVar(&render, "render", false, "render the drafted outline immediately")
	cmd.Flags().StringVarP(&theme, "theme", "t", c.Config.Theme, "theme for --render")

	return cmd
}

func (c *CLI) runDraft(ctx context.Context, topic, baseURL, model, output string, render bool, theme string) error {
	var clientOpts []draft.ClientOption
	if baseURL != "" {
		clientOpts = append(clientOpts, draft.WithBaseURL(baseURL))
	}
	if model != "" {
		clientOpts = append(clientOpts, draft.WithModel(model))
	}
	client := draft.NewClient(c.Config.Draft.APIKey, clientOpts...)

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drafting %q...", topic))
	spinner.Start()

	s, err := draft.Outline(ctx, client, topic)
	if err != nil {
		spinner.StopWithError("Draft failed")
		return err
	}
	spinner.Stop()

	if output == "" {
		output = pipeline.SanitizeName(s.Title) + ".json"
	}
	if err := outline.Save(s, output); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("drafted %q", s.Title))
	printSuccess("Drafted %q", s.Title)
	printFile(output)
	printStats(1+len(s.Branches)+s.LeafCount(), len(s.Branches)+s.LeafCount(), 0)

	if render {
		return c.runRender(ctx, output, pipeline.Options{Theme: theme, Logger: c.Logger}, renderOpts{output: "."})
	}

	printNextStep("Render it", fmt.Sprintf("mindweave render %s", output))
	return nil
}
