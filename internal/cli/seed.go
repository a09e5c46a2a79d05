package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/signsetu/signsetu/internal/config"
	"github.com/signsetu/signsetu/internal/database"
)

// SeedCommand replaces all word content with the bundled demo set.
type SeedCommand struct {
	DatabasePath string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replace all word content with the bundled demo words.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.SeedDemoWords(); err != nil {
		return fmt.Errorf("failed to seed demo words: %w", err)
	}

	fmt.Println("Successfully seeded demo words")
	return nil
}
