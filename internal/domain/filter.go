package domain

import "github.com/google/uuid"

// ReorderItem represents an item to reorder with its new position.
type ReorderItem struct {
	ID       uuid.UUID
	Position int
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// Pagination describes a page of results.
type Pagination struct {
	Page  int
	Limit int
	Total int
}

// TaskFilter contains filtering/pagination parameters for task searches.
type TaskFilter struct {
	BoardID uuid.UUID
	ListID  *uuid.UUID
	Search  *string
	Page    Page
}

// Slot is the (id, position) pair of one member of an ordered collection.
type Slot struct {
	ID       uuid.UUID
	Position int
}
