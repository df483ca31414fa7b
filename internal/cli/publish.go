package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanderlabs/mindweave/pkg/board"
	"github.com/yanderlabs/mindweave/pkg/cache"
	"github.com/yanderlabs/mindweave/pkg/errors"
	"github.com/yanderlabs/mindweave/pkg/outline"
)

// publishCommand creates the publish command for pushing outlines to the board.
func (c *CLI) publishCommand() *cobra.Command {
	var (
		boardURI string
		image    string
		publish  bool
	)

	cmd := &cobra.Command{
		Use:   "publish [outline.json]",
		Short: "Publish an outline as a page on the team board",
		Long: `Publish a content outline as a page on the shared team board (MongoDB).

The page is composed from the outline: a heading per branch, a bullet per
sub-branch, and sub-branch notes as paragraphs (long notes are split at
sentence boundaries). Pass --image to attach a rendered mindmap. Pages are
created as drafts; --publish moves them straight to published.

Run without arguments to pick an outline file interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if boardURI == "" {
				return errors.New(errors.ErrCodeInvalidInput,
					"no board configured: pass --board or set board.uri in %s", ConfigPath())
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				picked, err := pickOutline(".")
				if err != nil {
					return err
				}
				input = picked
			}
			return c.runPublish(cmd.Context(), input, boardURI, image, publish)
		},
	}

	cmd.Flags().StringVar(&boardURI, "board", c.Config.Board.URI, "board MongoDB URI (mongodb://host:port)")
	cmd.Flags().StringVar(&image, "image", "", "rendered mindmap image to attach")
	cmd.Flags().BoolVar(&publish, "publish", false, "mark the page published instead of draft")

	return cmd
}

func (c *CLI) runPublish(ctx context.Context, input, boardURI, image string, publish bool) error {
	s, err := outline.Load(input)
	if err != nil {
		return err
	}

	raw, err := outline.Marshal(s)
	if err != nil {
		return err
	}
	page := board.ComposePage(s, cache.Hash(raw), image)

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Publishing to board...")
	spinner.Start()

	store, err := board.Connect(ctx, boardURI)
	if err != nil {
		spinner.StopWithError("Board unreachable")
		return err
	}
	defer store.Close(ctx)

	id, err := store.CreatePage(ctx, page)
	if err != nil {
		spinner.StopWithError("Publish failed")
		return err
	}

	if publish {
		if err := store.UpdateStatus(ctx, id, board.StatusPublished); err != nil {
			spinner.StopWithError("Publish failed")
			return err
		}
	}
	spinner.Stop()

	status := board.StatusDraft
	if publish {
		status = board.StatusPublished
	}
	prog.done(fmt.Sprintf("published %q", page.Title))
	printSuccess("Created page %q (%s)", page.Title, status)
	printKeyValue("Page ID", id)
	printKeyValue("Blocks", fmt.Sprintf("%d", len(page.Blocks)))
	return nil
}
