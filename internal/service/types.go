package service

import (
	"errors"

	"solarhub-backend/internal/store"
)

// ErrNotFound is returned when an id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// TableView is the screen state a managed table returns to its handler:
// the derived (filtered, sorted) records plus the view state that
// produced them.
type TableView[T any] struct {
	Records    []T             `json:"records"`
	Total      int             `json:"total"`
	SearchTerm string          `json:"search_term"`
	SortKey    string          `json:"sort_key"`
	Direction  store.Direction `json:"direction"`
}

func tableView[T any](records []T, term, key string, dir store.Direction) TableView[T] {
	return TableView[T]{
		Records:    records,
		Total:      len(records),
		SearchTerm: term,
		SortKey:    key,
		Direction:  dir,
	}
}

// UserDirectory resolves user records for screens that reference users by
// id (task assignees, department managers).
type UserDirectory interface {
	GetByID(id int) (name string, role string, ok bool)
}

// Event is the payload broadcast over the websocket hub when a collection
// changes.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
