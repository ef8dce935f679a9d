package library

import "testing"

func TestBookFromRecordBadCopies(t *testing.T) {
	_, err := BookFromRecord([]string{"B001", "1984", "George Orwell", "many"})
	if err == nil {
		t.Fatalf("want error for non-numeric copies")
	}
}

func TestBookFromRecordWrongWidth(t *testing.T) {
	_, err := BookFromRecord([]string{"B001", "1984", "George Orwell"})
	if err == nil {
		t.Fatalf("want error for short record")
	}
}

func TestStudentFromRecordEmptyBorrowed(t *testing.T) {
	s, err := StudentFromRecord([]string{"S001", "Alice", ""})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(s.Borrowed) != 0 {
		t.Fatalf("want no borrowed books, got %v", s.Borrowed)
	}
}

func TestStudentRecordJoinsBorrowed(t *testing.T) {
	s := &Student{ID: "S001", Name: "Alice", Borrowed: []string{"B001", "B002"}}
	rec := s.Record()
	if rec[2] != "B001,B002" {
		t.Fatalf("want comma-joined borrowed field, got %q", rec[2])
	}
}

func TestStudentRemoveBookFirstMatchOnly(t *testing.T) {
	s := &Student{ID: "S001", Name: "Alice", Borrowed: []string{"B001", "B002", "B001"}}
	if !s.removeBook("B001") {
		t.Fatalf("remove should succeed")
	}
	if len(s.Borrowed) != 2 || s.Borrowed[0] != "B002" || s.Borrowed[1] != "B001" {
		t.Fatalf("want one occurrence removed, got %v", s.Borrowed)
	}
	if s.removeBook("B999") {
		t.Fatalf("remove of unheld book should fail")
	}
}
