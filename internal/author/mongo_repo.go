package author

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CollectionName is the MongoDB collection holding authors.
const CollectionName = "authors"

type authorDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	FirstName string        `bson:"firstName"`
	LastName  string        `bson:"lastName"`
	BirthYear int           `bson:"birthYear"`
}

func (d authorDocument) toAuthor() Author {
	return Author{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		BirthYear: d.BirthYear,
	}
}

func newDocument(a Author) authorDocument {
	return authorDocument{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		BirthYear: a.BirthYear,
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

func (r *MongoRepo) List(ctx context.Context) ([]Author, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(timeoutCtx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer func() { _ = cursor.Close(timeoutCtx) }()

	var docs []authorDocument
	if err := cursor.All(timeoutCtx, &docs); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}

	out := make([]Author, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toAuthor())
	}
	return out, nil
}

func (r *MongoRepo) GetByID(ctx context.Context, id string) (Author, error) {
	oid, err := parseID(id)
	if err != nil {
		return Author{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc authorDocument
	if err := r.coll.FindOne(timeoutCtx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Author{}, ErrNotFound
		}
		return Author{}, fmt.Errorf("find author %s: %w", id, err)
	}
	return doc.toAuthor(), nil
}

func (r *MongoRepo) Create(ctx context.Context, a *Author) error {
	doc := newDocument(*a)
	doc.ID = bson.NewObjectID()

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(timeoutCtx, doc); err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	a.ID = doc.ID.Hex()
	return nil
}

func (r *MongoRepo) Replace(ctx context.Context, a Author) error {
	oid, err := parseID(a.ID)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.ReplaceOne(timeoutCtx, bson.M{"_id": oid}, newDocument(a))
	if err != nil {
		return fmt.Errorf("replace author %s: %w", a.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
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
		return fmt.Errorf("delete author %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
