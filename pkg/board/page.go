// Package board publishes rendered mindmaps as pages on a shared team board.
//
// A board page is a block document: a heading per branch, a bullet per leaf,
// and the leaf notes as paragraph blocks. Pages are persisted in MongoDB via
// [Store] and move through a draft/published status lifecycle.
package board

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanderlabs/mindweave/pkg/outline"
)

// MaxBlockChars is the maximum text length of one paragraph block. Longer
// note text is split at sentence boundaries by [SplitBlocks].
const MaxBlockChars = 1800

// MaxPageBlocks caps the number of blocks on one page. Boards commonly
// enforce a per-request block limit; excess blocks are dropped from the end.
const MaxPageBlocks = 100

// Status is the page lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// BlockKind distinguishes the block types a page is composed of.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockBullet    BlockKind = "bullet"
	BlockParagraph BlockKind = "paragraph"
	BlockImage     BlockKind = "image"
)

// Block is one content element on a page.
type Block struct {
	Kind BlockKind `json:"kind" bson:"kind"`
	Text string    `json:"text" bson:"text"`
}

// Page is one board entry for a published mindmap.
type Page struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	OutlineHash string    `json:"outline_hash" bson:"outline_hash"`
	Status      Status    `json:"status" bson:"status"`
	Blocks      []Block   `json:"blocks" bson:"blocks"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// SplitBlocks splits text into chunks of at most maxLen characters, breaking
// at sentence boundaries (period followed by space). A single sentence longer
// than maxLen becomes its own oversized chunk rather than being cut mid-word.
func SplitBlocks(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	sentences := strings.SplitAfter(text, ". ")
	var chunks []string
	var current strings.Builder

	for _, sentence := range sentences {
		if current.Len()+len(sentence) > maxLen && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}
	return chunks
}

// ComposePage builds a draft page from an outline and the artifact path of
// its rendered image. The outline hash ties the page back to the exact
// content it was rendered from.
func ComposePage(s *outline.Structure, outlineHash, imagePath string) *Page {
	now := time.Now().UTC()
	page := &Page{
		ID:          uuid.NewString(),
		Title:       s.Title,
		OutlineHash: outlineHash,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if imagePath != "" {
		page.Blocks = append(page.Blocks, Block{Kind: BlockImage, Text: imagePath})
	}

	for _, branch := range s.Branches {
		page.Blocks = append(page.Blocks, Block{Kind: BlockHeading, Text: branch.Label})
		for _, leaf := range branch.Subbranches {
			page.Blocks = append(page.Blocks, Block{Kind: BlockBullet, Text: leaf.Label})
			for _, note := range leaf.Notes {
				for _, chunk := range SplitBlocks(note, MaxBlockChars) {
					page.Blocks = append(page.Blocks, Block{Kind: BlockParagraph, Text: chunk})
				}
			}
		}
	}

	if len(page.Blocks) > MaxPageBlocks {
		page.Blocks = page.Blocks[:MaxPageBlocks]
	}
	return page
}
