package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	seedAuthors int
	seedBooks   int
	seedDrop    bool
	seedRandom  int64
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the library database with sample authors and books",
	Long: "Insert generated authors and books through the same repositories the API uses. " +
		"Connection settings come from MONGODB_URI and MONGODB_DB (or .env).",
	RunE:         runSeed,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVar(&seedAuthors, "authors", 50, "Number of authors to insert")
	rootCmd.Flags().IntVar(&seedBooks, "books", 200, "Number of books to insert")
	rootCmd.Flags().BoolVar(&seedDrop, "drop", false, "Drop the authors and books collections first")
	rootCmd.Flags().Int64Var(&seedRandom, "seed", 1, "Random seed for generated data")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
