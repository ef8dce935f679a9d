package library

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Borrow cap per student.
const maxBorrowedBooks = 5

// Patron-facing result messages.
const (
	msgInvalidID    = "Invalid book or student ID"
	msgNotAvailable = "Book not available"
	msgBorrowLimit  = "Student cannot borrow more books"
	msgNotBorrowed  = "Book not borrowed by this student"
	msgIssued       = "Book issued successfully"
	msgReturned     = "Book returned successfully"
)

// StockEntry is one row of the stock listing.
type StockEntry struct {
	ID     string
	Title  string
	Author string
	Copies int
}

// Librarian owns the book and student collections and is the only
// component that mutates them. Every successful issue or return appends
// a log row and rewrites the snapshot before the call returns, so disk
// never trails memory by more than one operation.
type Librarian struct {
	mu       sync.Mutex
	store    *Store
	books    []*Book
	students []*Student

	penalties PenaltyConfig
	logger    *log.Logger

	// now is swapped out by tests to pin log timestamps.
	now func() time.Time
}

// NewLibrarian loads both collections through the store. Missing tables
// load as empty collections for first-run bootstrap.
func NewLibrarian(store *Store, penalties PenaltyConfig, logger *log.Logger) (*Librarian, error) {
	books, students, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &Librarian{
		store:     store,
		books:     books,
		students:  students,
		penalties: penalties,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// ------------------ Read-only queries ------------------

// CheckStock lists every book's id, title, author and available copies
// in stored order.
func (l *Librarian) CheckStock() []StockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	stock := make([]StockEntry, 0, len(l.books))
	for _, b := range l.books {
		stock = append(stock, StockEntry{ID: b.ID, Title: b.Title, Author: b.Author, Copies: b.Copies})
	}
	return stock
}

// SearchBook returns books whose title or author contains query,
// case-insensitively, in stored order. An empty query matches every book.
func (l *Librarian) SearchBook(query string) []*Book {
	l.mu.Lock()
	defer l.mu.Unlock()

	q := strings.ToLower(query)
	var matches []*Book
	for _, b := range l.books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) {
			matches = append(matches, b)
		}
	}
	return matches
}

// SearchStudent returns students whose name or id contains query,
// case-insensitively, in stored order.
func (l *Librarian) SearchStudent(query string) []*Student {
	l.mu.Lock()
	defer l.mu.Unlock()

	q := strings.ToLower(query)
	var matches []*Student
	for _, s := range l.students {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.ID), q) {
			matches = append(matches, s)
		}
	}
	return matches
}

// ------------------ Circulation ------------------

// IssueBook lends one copy of the book to the student. Business-rule
// failures return a CirculationError and leave all state, including the
// log, untouched. On success the copy count, the student's borrow list,
// the log and the on-disk snapshot all move together.
//
// A storage failure after the in-memory mutation is surfaced wrapped in
// ErrStorage; the mutation stands, matching snapshot-persistence
// semantics where the next successful save wins.
func (l *Librarian) IssueBook(bookID, studentID string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	book := l.findBook(bookID)
	student := l.findStudent(studentID)
	if book == nil || student == nil {
		return "", newCirculationError(ErrNotFound, msgInvalidID)
	}
	if book.Copies <= 0 {
		return "", newCirculationError(ErrOutOfStock, msgNotAvailable)
	}
	if len(student.Borrowed) >= maxBorrowedBooks {
		return "", newCirculationError(ErrLimitExceeded, msgBorrowLimit)
	}

	book.Copies--
	student.addBook(bookID)
	if err := l.commit(KindIssue, bookID, studentID); err != nil {
		return "", err
	}

	l.logger.Info("book issued", "book", bookID, "student", studentID)
	return msgIssued, nil
}

// ReturnBook takes back one copy of the book from the student. The same
// atomicity and failure rules as IssueBook apply.
func (l *Librarian) ReturnBook(bookID, studentID string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	book := l.findBook(bookID)
	student := l.findStudent(studentID)
	if book == nil || student == nil {
		return "", newCirculationError(ErrNotFound, msgInvalidID)
	}
	if !student.removeBook(bookID) {
		return "", newCirculationError(ErrNotBorrowed, msgNotBorrowed)
	}

	book.Copies++
	if err := l.commit(KindReturn, bookID, studentID); err != nil {
		return "", err
	}

	l.logger.Info("book returned", "book", bookID, "student", studentID)
	return msgReturned, nil
}

// CalculatePenalty computes the late fee for a loan issued and returned
// on the given "YYYY-MM-DD" dates. Pure query: no log row, no save, and
// ReturnBook does not invoke it.
func (l *Librarian) CalculatePenalty(issueDate, returnDate string) (float64, error) {
	return l.penalties.Penalty(issueDate, returnDate)
}

// TransactionLog returns the circulation log in append order.
func (l *Librarian) TransactionLog() ([]LogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.ReadLog()
}

// ------------------ Internals ------------------

// commit appends the log row and rewrites the snapshot for a mutation
// already applied in memory. Caller holds the mutex.
func (l *Librarian) commit(kind TransactionKind, bookID, studentID string) error {
	entry := LogEntry{Kind: kind, BookID: bookID, StudentID: studentID, Time: l.now()}
	if err := l.store.AppendLog(entry); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := l.store.Save(l.books, l.students); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func (l *Librarian) findBook(id string) *Book {
	for _, b := range l.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (l *Librarian) findStudent(id string) *Student {
	for _, s := range l.students {
		if s.ID == id {
			return s
		}
	}
	return nil
}
