package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Applies every *up.sql migration in order, or a single one when its name
// is passed as the first argument.
func main() {
	_ = godotenv.Load()

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	basePath := filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")

	files, err := migrationFiles(basePath)
	if err != nil {
		log.Fatal(err)
	}

	if len(os.Args) > 1 {
		files = filterByName(files, os.Args[1])
		if len(files) == 0 {
			log.Fatalf("no migration matches %q", os.Args[1])
		}
	}

	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(basePath, name))
		if err != nil {
			log.Fatal(err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("failed to execute %s: %v", name, err)
		}

		fmt.Printf("applied %s\n", name)
	}
}

func migrationFiles(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

func filterByName(files []string, name string) []string {
	var matched []string
	for _, f := range files {
		if strings.Contains(f, name) {
			matched = append(matched, f)
		}
	}
	return matched
}
