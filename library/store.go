package library

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Store persists the book and student collections as flat comma-delimited
// tables and appends rows to the circulation log. It never mutates entity
// state; the Librarian decides when snapshots are taken.
type Store struct {
	booksPath    string
	studentsPath string
	logsPath     string

	logger *log.Logger
}

// NewStore creates a store over the configured table locations, creating
// the data directory so first-run saves succeed.
func NewStore(cfg *Config, logger *log.Logger) (*Store, error) {
	if dir := cfg.Data.Dir; dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &Store{
		booksPath:    cfg.BooksPath(),
		studentsPath: cfg.StudentsPath(),
		logsPath:     cfg.LogsPath(),
		logger:       logger,
	}, nil
}

// Load reads both tables into memory. A missing table file loads as an
// empty collection so a fresh data directory bootstraps cleanly. A
// malformed row is skipped with a warning rather than aborting the load.
func (s *Store) Load() ([]*Book, []*Student, error) {
	var books []*Book
	err := s.readTable(s.booksPath, func(record []string) error {
		b, err := BookFromRecord(record)
		if err != nil {
			return err
		}
		books = append(books, b)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var students []*Student
	err = s.readTable(s.studentsPath, func(record []string) error {
		st, err := StudentFromRecord(record)
		if err != nil {
			return err
		}
		students = append(students, st)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return books, students, nil
}

// Save rewrites both tables with the current collections. Called after
// every successful mutation so on-disk state tracks memory.
func (s *Store) Save(books []*Book, students []*Student) error {
	bookRecords := make([][]string, 0, len(books))
	for _, b := range books {
		bookRecords = append(bookRecords, b.Record())
	}
	if err := s.writeTable(s.booksPath, bookRecords); err != nil {
		return err
	}

	studentRecords := make([][]string, 0, len(students))
	for _, st := range students {
		studentRecords = append(studentRecords, st.Record())
	}
	if err := s.writeTable(s.studentsPath, studentRecords); err != nil {
		return err
	}

	s.logger.Debug("saved snapshot", "books", len(books), "students", len(students))
	return nil
}

// AppendLog adds one row to the circulation log. Existing rows are never
// rewritten.
func (s *Store) AppendLog(entry LogEntry) error {
	f, err := os.OpenFile(s.logsPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log table: %w", err)
	}

	w := csv.NewWriter(f)
	err = w.Write(entry.Record())
	if err == nil {
		w.Flush()
		err = w.Error()
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("append log row: %w", err)
	}
	return f.Close()
}

// ReadLog returns every circulation log row in append order. A missing
// log file reads as empty.
func (s *Store) ReadLog() ([]LogEntry, error) {
	var entries []LogEntry
	err := s.readTable(s.logsPath, func(record []string) error {
		e, err := LogEntryFromRecord(record)
		if err != nil {
			return err
		}
		entries = append(entries, *e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// readTable streams rows of a CSV table into parse. A parse failure
// skips the row with a diagnostic; read failures abort.
func (s *Store) readTable(path string, parse func([]string) error) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open table %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width is validated per entity
	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read table %s: %w", path, err)
		}
		if err := parse(record); err != nil {
			s.logger.Warn("skipping malformed row",
				"table", filepath.Base(path), "line", line, "err", err)
		}
	}
}

func (s *Store) writeTable(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write table %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write table %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write table %s: %w", path, err)
	}
	return nil
}
