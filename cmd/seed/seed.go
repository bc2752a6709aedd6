package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/mongodb"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	firstNames = []string{"Ada", "Alan", "Grace", "Ursula", "Jorge", "Toni", "Italo", "Octavia", "Haruki", "Chimamanda"}
	lastNames  = []string{"Lovelace", "Turing", "Hopper", "Le Guin", "Borges", "Morrison", "Calvino", "Butler", "Murakami", "Adichie"}
	genres     = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography", "Philosophy", "Art"}
	places     = []string{"London", "New York", "Buenos Aires", "Tokyo", "Lagos", "Turin", "Paris", "Berlin"}
	publishers = []string{"Penguin", "HarperCollins", "Oxford", "Cambridge", "MIT Press", "Springer", "Wiley", "Elsevier"}
	words      = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
)

func runSeed(cmd *cobra.Command, args []string) error {
	if seedAuthors < 0 || seedBooks < 0 {
		return errors.New("--authors and --books must not be negative")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	conn, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = conn.Close(context.Background()) }()

	db, err := conn.Database()
	if err != nil {
		return err
	}

	if seedDrop {
		if err := dropCollections(ctx, db); err != nil {
			return err
		}
	}

	gen := newGenerator(seedRandom)
	authors := author.NewService(author.NewMongoRepo(db, cfg.Mongo.OpTimeout))
	books := book.NewService(book.NewMongoRepo(db, cfg.Mongo.OpTimeout))

	log.Printf("Seeding db=%s authors=%d books=%d", cfg.Mongo.Database, seedAuthors, seedBooks)
	for i := 0; i < seedAuthors; i++ {
		if _, err := authors.Create(ctx, gen.author()); err != nil {
			return fmt.Errorf("insert author %d: %w", i+1, err)
		}
	}
	for i := 0; i < seedBooks; i++ {
		if _, err := books.Create(ctx, gen.book(i+1)); err != nil {
			return fmt.Errorf("insert book %d: %w", i+1, err)
		}
		if (i+1)%100 == 0 {
			log.Printf("Inserted %d/%d books", i+1, seedBooks)
		}
	}

	log.Printf("Successfully inserted %d authors and %d books", seedAuthors, seedBooks)
	return nil
}

func dropCollections(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{author.CollectionName, book.CollectionName} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
		log.Printf("Dropped collection %s", name)
	}
	return nil
}

type generator struct {
	rnd *rand.Rand
}

func newGenerator(seed int64) *generator {
	return &generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *generator) pick(list []string) string {
	return list[g.rnd.Intn(len(list))]
}

func (g *generator) author() author.Input {
	return author.Input{
		FirstName: g.pick(firstNames),
		LastName:  g.pick(lastNames),
		BirthYear: 1800 + g.rnd.Intn(200),
	}
}

func (g *generator) book(n int) book.Input {
	return book.Input{
		Title:     fmt.Sprintf("%s and %s", g.pick(words), g.pick(words)),
		Author:    g.pick(firstNames) + " " + g.pick(lastNames),
		Year:      1950 + g.rnd.Intn(75),
		Genre:     g.pick(genres),
		Place:     g.pick(places),
		Pages:     100 + g.rnd.Intn(800),
		Publisher: g.pick(publishers),
		ISBN:      fmt.Sprintf("978%010d", n),
	}
}
