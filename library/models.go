package library

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Book represents a title held by the library. Copies counts the copies
// currently on the shelf and available for loan.
type Book struct {
	ID     string `json:"book_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Copies int    `json:"copies"`
}

// Record converts the book into its flat table row.
func (b *Book) Record() []string {
	return []string{b.ID, b.Title, b.Author, strconv.Itoa(b.Copies)}
}

// BookFromRecord builds a Book from a table row of
// [book_id, title, author, copies]. A non-numeric copies field is a
// format error for that row.
func BookFromRecord(record []string) (*Book, error) {
	if len(record) != 4 {
		return nil, fmt.Errorf("book record has %d fields, want 4", len(record))
	}
	copies, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("book %s: bad copies %q: %w", record[0], record[3], err)
	}
	return &Book{ID: record[0], Title: record[1], Author: record[2], Copies: copies}, nil
}

// Student represents a registered borrower. Borrowed holds the book IDs
// of open loans in issue order, one entry per copy held.
type Student struct {
	ID       string   `json:"student_id"`
	Name     string   `json:"name"`
	Borrowed []string `json:"borrowed_books"`
}

// Record converts the student into its flat table row. Open loans are
// comma-joined into the third field, which is empty for no loans.
func (s *Student) Record() []string {
	return []string{s.ID, s.Name, strings.Join(s.Borrowed, ",")}
}

// StudentFromRecord builds a Student from a table row of
// [student_id, name, borrowed]. An empty borrowed field means no open
// loans, not an error.
func StudentFromRecord(record []string) (*Student, error) {
	if len(record) != 3 {
		return nil, fmt.Errorf("student record has %d fields, want 3", len(record))
	}
	var borrowed []string
	if record[2] != "" {
		borrowed = strings.Split(record[2], ",")
	}
	return &Student{ID: record[0], Name: record[1], Borrowed: borrowed}, nil
}

// addBook records one more open loan for the student.
func (s *Student) addBook(bookID string) {
	s.Borrowed = append(s.Borrowed, bookID)
}

// removeBook closes one open loan, removing the first matching entry.
// Reports whether an entry was removed.
func (s *Student) removeBook(bookID string) bool {
	for i, id := range s.Borrowed {
		if id == bookID {
			s.Borrowed = append(s.Borrowed[:i], s.Borrowed[i+1:]...)
			return true
		}
	}
	return false
}

// TransactionKind labels a row in the circulation log.
type TransactionKind string

const (
	KindIssue  TransactionKind = "Issue"
	KindReturn TransactionKind = "Return"
)

// logTimeLayout is the timestamp format used in the log table.
const logTimeLayout = "2006-01-02 15:04:05"

// LogEntry is one immutable row of the circulation log.
type LogEntry struct {
	Kind      TransactionKind
	BookID    string
	StudentID string
	Time      time.Time
}

// Record converts the entry into its flat table row.
func (e *LogEntry) Record() []string {
	return []string{string(e.Kind), e.BookID, e.StudentID, e.Time.Format(logTimeLayout)}
}

// LogEntryFromRecord builds a LogEntry from a table row of
// [kind, book_id, student_id, timestamp].
func LogEntryFromRecord(record []string) (*LogEntry, error) {
	if len(record) != 4 {
		return nil, fmt.Errorf("log record has %d fields, want 4", len(record))
	}
	ts, err := time.Parse(logTimeLayout, record[3])
	if err != nil {
		return nil, fmt.Errorf("log record: bad timestamp %q: %w", record[3], err)
	}
	return &LogEntry{
		Kind:      TransactionKind(record[0]),
		BookID:    record[1],
		StudentID: record[2],
		Time:      ts,
	}, nil
}
