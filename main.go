package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"library-catalog/library"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "library-catalog",
		Short:         "Track library inventory and lending activity",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "configs/library.yaml", "path to config file")

	root.AddCommand(
		stockCmd(),
		searchBookCmd(),
		searchStudentCmd(),
		issueCmd(),
		returnCmd(),
		penaltyCmd(),
		logsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openCatalog wires config, logger, store and librarian for a command run.
func openCatalog() (*library.Librarian, error) {
	cfg, err := library.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	store, err := library.NewStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	return library.NewLibrarian(store, cfg.PenaltyConfig(), logger)
}

func stockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "List every book with its available copies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := openCatalog()
			if err != nil {
				return err
			}
			printStock(lib.CheckStock())
			return nil
		},
	}
}

func searchBookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search-book [query]",
		Short: "Search books by title or author substring",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := openCatalog()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			books := lib.SearchBook(query)
			if len(books) == 0 {
				fmt.Printf("No books found matching %q.\n", query)
				return nil
			}
			fmt.Printf("%-8s %-40s %-25s %s\n", "ID", "Title", "Author", "Copies")
			fmt.Println(strings.Repeat("-", 85))
			for _, b := range books {
				fmt.Printf("%-8s %-40s %-25s %d\n",
					b.ID, truncateString(b.Title, 40), truncateString(b.Author, 25), b.Copies)
			}
			return nil
		},
	}
}

func searchStudentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search-student [query]",
		Short: "Search students by name or ID substring",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := openCatalog()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			students := lib.SearchStudent(query)
			if len(students) == 0 {
				fmt.Printf("No students found matching %q.\n", query)
				return nil
			}
			fmt.Printf("%-8s %-30s %s\n", "ID", "Name", "Borrowed")
			fmt.Println(strings.Repeat("-", 70))
			for _, s := range students {
				borrowed := "None"
				if len(s.Borrowed) > 0 {
					borrowed = strings.Join(s.Borrowed, ", ")
				}
				fmt.Printf("%-8s %-30s %s\n", s.ID, truncateString(s.Name, 30), borrowed)
			}
			return nil
		},
	}
}

func issueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issue <book-id> <student-id>",
		Short: "Issue a book to a student",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := openCatalog()
			if err != nil {
				return err
			}
			return printOutcome(lib.IssueBook(args[0], args[1]))
		},
	}
}

func returnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <book-id> <student-id>",
		Short: "Return a book borrowed by a student",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := openCatalog()
			if err != nil {
				return err
			}
			return printOutcome(lib.ReturnBook(args[0], args[1]))
		},
	}
}

func penaltyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "penalty <issue-date> <return-date>",
		Short: "Compute the late fee for a loan (dates as YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := openCatalog()
			if err != nil {
				return err
			}
			penalty, err := lib.CalculatePenalty(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Penalty: %.2f\n", penalty)
			return nil
		},
	}
}

func logsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Show the circulation log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := openCatalog()
			if err != nil {
				return err
			}
			entries, err := lib.TransactionLog()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No transactions recorded.")
				return nil
			}
			fmt.Printf("%-8s %-8s %-10s %s\n", "Kind", "Book", "Student", "Time")
			fmt.Println(strings.Repeat("-", 50))
			for _, e := range entries {
				fmt.Printf("%-8s %-8s %-10s %s\n",
					e.Kind, e.BookID, e.StudentID, e.Time.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func printStock(stock []library.StockEntry) {
	if len(stock) == 0 {
		fmt.Println("No books in library.")
		return
	}
	fmt.Printf("%-8s %-40s %-25s %s\n", "ID", "Title", "Author", "Copies")
	fmt.Println(strings.Repeat("-", 85))
	for _, e := range stock {
		fmt.Printf("%-8s %-40s %-25s %d\n",
			e.ID, truncateString(e.Title, 40), truncateString(e.Author, 25), e.Copies)
	}
}

// printOutcome renders a circulation result. Business-rule refusals are
// part of normal desk operation, so they print like any other outcome
// rather than failing the command.
func printOutcome(message string, err error) error {
	var circErr *library.CirculationError
	if errors.As(err, &circErr) {
		fmt.Println(circErr.Message)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
