package board

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yanderlabs/mindweave/pkg/errors"
)

const (
	defaultDatabase  = "mindweave"
	pagesCollection  = "pages"
	connectTimeout   = 10 * time.Second
	operationTimeout = 15 * time.Second
)

// Store persists board pages in MongoDB.
type Store struct {
	client *mongo.Client
	pages  *mongo.Collection
}

// Connect opens a MongoDB connection from a URI (mongodb://host:port) and
// verifies it with a ping. Failures report BOARD_UNAVAILABLE so the CLI can
// tell a broken board apart from a broken outline.
func Connect(ctx context.Context, uri string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBoardUnavailable, err, "connect to board at %s", uri)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeBoardUnavailable, err, "board at %s is not responding", uri)
	}

	return &Store{
		client: client,
		pages:  client.Database(defaultDatabase).Collection(pagesCollection),
	}, nil
}

// CreatePage inserts a page and returns its ID.
func (s *Store) CreatePage(ctx context.Context, page *Page) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if _, err := s.pages.InsertOne(ctx, page); err != nil {
		return "", errors.Wrap(errors.ErrCodeBoardUnavailable, err, "create page %q", page.Title)
	}
	return page.ID, nil
}

// GetPage fetches a page by ID.
func (s *Store) GetPage(ctx context.Context, id string) (*Page, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	var page Page
	err := s.pages.FindOne(ctx, bson.M{"_id": id}).Decode(&page)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeNotFound, "page %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBoardUnavailable, err, "fetch page %s", id)
	}
	return &page, nil
}

// UpdateStatus moves a page to a new lifecycle status.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	res, err := s.pages.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBoardUnavailable, err, "update page %s", id)
	}
	if res.MatchedCount == 0 {
		return errors.New(errors.ErrCodeNotFound, "page %s not found", id)
	}
	return nil
}

// ListPages returns pages filtered by status, newest first. An empty status
// returns all pages.
func (s *Store) ListPages(ctx context.Context, status Status) ([]Page, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := s.pages.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBoardUnavailable, err, "list pages")
	}
	defer cur.Close(ctx)

	var pages []Page
	if err := cur.All(ctx, &pages); err != nil {
		return nil, errors.Wrap(errors.ErrCodeBoardUnavailable, err, "decode pages")
	}
	return pages, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
