// Command seed_catalog populates the books and students tables with
// sample records so the catalog can be tried out before any real data
// exists. It works entirely offline and leaves the circulation log alone.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"library-catalog/library"
)

// Sample catalog (title, author pairs keyed by book ID).
var sampleBooks = []struct {
	id     string
	title  string
	author string
}{
	{"B001", "1984", "George Orwell"},
	{"B002", "Animal Farm", "George Orwell"},
	{"B003", "The Diary of a Young Girl", "Anne Frank"},
	{"B004", "The Art of War", "Sun Tzu"},
	{"B005", "The Fellowship of the Ring", "J.R.R. Tolkien"},
	{"B006", "The Two Towers", "J.R.R. Tolkien"},
	{"B007", "The Return of the King", "J.R.R. Tolkien"},
	{"B008", "Romeo and Juliet", "William Shakespeare"},
	{"B009", "The Three Musketeers", "Alexandre Dumas"},
	{"B010", "Pride and Prejudice", "Jane Austen"},
}

var sampleStudents = []struct {
	id   string
	name string
}{
	{"S001", "Alice Johnson"},
	{"S002", "Bob Martin"},
	{"S003", "Charlie Nguyen"},
	{"S004", "Dana Whitfield"},
	{"S005", "Elena Petrova"},
	{"S006", "Farid Haddad"},
	{"S007", "Grace Okafor"},
	{"S008", "Hiro Tanaka"},
}

func main() {
	configPath := "configs/library.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := library.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	store, err := library.NewStore(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}

	books := make([]*library.Book, 0, len(sampleBooks))
	for _, sb := range sampleBooks {
		books = append(books, &library.Book{
			ID:     sb.id,
			Title:  sb.title,
			Author: sb.author,
			Copies: rand.Intn(10) + 1,
		})
	}

	students := make([]*library.Student, 0, len(sampleStudents))
	for _, ss := range sampleStudents {
		students = append(students, &library.Student{ID: ss.id, Name: ss.name})
	}

	if err := store.Save(books, students); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tables: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d books and %d students into %s\n",
		len(books), len(students), cfg.Data.Dir)
	fmt.Printf("%-8s %-40s %-25s %s\n", "ID", "Title", "Author", "Copies")
	for _, b := range books {
		fmt.Printf("%-8s %-40s %-25s %d\n", b.ID, b.Title, b.Author, b.Copies)
	}
}
