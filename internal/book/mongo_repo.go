package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CollectionName is the MongoDB collection holding books.
const CollectionName = "books"

type bookDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Title     any           `bson:"title"`
	Author    any           `bson:"author"`
	Year      any           `bson:"year"`
	Genre     any           `bson:"genre"`
	Place     any           `bson:"place"`
	Pages     any           `bson:"pages"`
	Publisher any           `bson:"publisher"`
	ISBN      any           `bson:"isbn"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d bookDocument) toBook() Book {
	return Book{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Author:    d.Author,
		Year:      d.Year,
		Genre:     d.Genre,
		Place:     d.Place,
		Pages:     d.Pages,
		Publisher: d.Publisher,
		ISBN:      d.ISBN,
		CreatedAt: d.CreatedAt,
	}
}

type MongoRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoRepo(db *mongo.Database, timeout time.Duration) *MongoRepo {
	return &MongoRepo{coll: db.Collection(CollectionName), timeout: timeout}
}

func (r *MongoRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func (r *MongoRepo) List(ctx context.Context) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(timeoutCtx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer func() { _ = cursor.Close(timeoutCtx) }()

	var docs []bookDocument
	if err := cursor.All(timeoutCtx, &docs); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}

	out := make([]Book, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toBook())
	}
	return out, nil
}

func (r *MongoRepo) GetByID(ctx context.Context, id string) (Book, error) {
	oid, err := parseID(id)
	if err != nil {
		return Book{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc bookDocument
	if err := r.coll.FindOne(timeoutCtx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("find book %s: %w", id, err)
	}
	return doc.toBook(), nil
}

func (r *MongoRepo) Create(ctx context.Context, b *Book) error {
	doc := bookDocument{
		ID:        bson.NewObjectID(),
		Title:     b.Title,
		Author:    b.Author,
		Year:      b.Year,
		Genre:     b.Genre,
		Place:     b.Place,
		Pages:     b.Pages,
		Publisher: b.Publisher,
		ISBN:      b.ISBN,
		CreatedAt: b.CreatedAt,
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(timeoutCtx, doc); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	b.ID = doc.ID.Hex()
	return nil
}

// Update replaces the stored attributes of b in a single round trip. The
// document is rebuilt from the eight attributes, keeping only _id and
// createdAt from the stored copy, so keys from older writes do not linger.
func (r *MongoRepo) Update(ctx context.Context, b Book) error {
	oid, err := parseID(b.ID)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(timeoutCtx, bson.M{"_id": oid}, replacePipeline(b))
	if err != nil {
		return fmt.Errorf("update book %s: %w", b.ID, err)
	}
	// MatchedCount, not ModifiedCount: an unchanged book still exists.
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// replacePipeline wraps every client value in $literal so strings such as
// "$title" are stored as given instead of read as field paths.
func replacePipeline(b Book) mongo.Pipeline {
	literal := func(v any) bson.D { return bson.D{{Key: "$literal", Value: v}} }
	doc := bson.D{
		{Key: "_id", Value: "$_id"},
		{Key: "title", Value: literal(b.Title)},
		{Key: "author", Value: literal(b.Author)},
		{Key: "year", Value: literal(b.Year)},
		{Key: "genre", Value: literal(b.Genre)},
		{Key: "place", Value: literal(b.Place)},
		{Key: "pages", Value: literal(b.Pages)},
		{Key: "publisher", Value: literal(b.Publisher)},
		{Key: "isbn", Value: literal(b.ISBN)},
		{Key: "createdAt", Value: "$createdAt"},
	}
	return mongo.Pipeline{{{Key: "$replaceWith", Value: doc}}}
}

func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(timeoutCtx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
