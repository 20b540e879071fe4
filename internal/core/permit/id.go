// Package permit contains the pure business rules of the permitting workflow handlers.
// This is part of the Functional Core - no I/O, only pure functions.
package permit

import (
	"fmt"
	"strings"
)

// RecordID is the host's three-part record identifier.
type RecordID struct {
	ID1 string
	ID2 string
	ID3 string
}

// String renders the id as ID1-ID2-ID3.
func (id RecordID) String() string {
	return fmt.Sprintf("%s-%s-%s", id.ID1, id.ID2, id.ID3)
}

// IsZero reports whether any part of the id is missing.
func (id RecordID) IsZero() bool {
	return id.ID1 == "" || id.ID2 == "" || id.ID3 == ""
}

// ParseRecordID parses ID1-ID2-ID3. The first part may itself contain dashes
// (e.g. "2025PA-000002-00000-00002"), so the id is split from the right.
func ParseRecordID(s string) (RecordID, error) {
	s = strings.TrimSpace(s)
	last := strings.LastIndex(s, "-")
	if last <= 0 {
		return RecordID{}, fmt.Errorf("invalid record id %q: expected ID1-ID2-ID3", s)
	}
	mid := strings.LastIndex(s[:last], "-")
	if mid <= 0 {
		return RecordID{}, fmt.Errorf("invalid record id %q: expected ID1-ID2-ID3", s)
	}

	id := RecordID{ID1: s[:mid], ID2: s[mid+1 : last], ID3: s[last+1:]}
	if id.IsZero() {
		return RecordID{}, fmt.Errorf("invalid record id %q: empty component", s)
	}
	return id, nil
}
