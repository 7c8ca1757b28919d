package domain

import (
	"context"
	"errors"
)

// Sentinel errors for event operations.
var (
	ErrEventNotFound = errors.New("event not found")
)

// Event represents one entry of the shared calendar. The JSON tags are the
// wire layout of the persisted events document; "organisators" is the
// historical key and must not be renamed.
type Event struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	Organizers string `json:"organisators"`
	Price      string `json:"price"`
	PriceRaw   string `json:"price_raw"`
	Place      string `json:"place"`
	Link       string `json:"link"`
}

// EventRepository defines the interface for event storage. The collection is
// ordered; insertion order is the display order.
type EventRepository interface {
	// Append adds the event to the end of the collection and persists it.
	// Duplicate names are permitted.
	Append(ctx context.Context, event *Event) error
	// FindByName returns the first event whose name matches
	// case-insensitively, or ErrEventNotFound.
	FindByName(ctx context.Context, name string) (*Event, error)
	// RemoveByName removes every event whose name matches case-insensitively
	// and reports whether anything was removed.
	RemoveByName(ctx context.Context, name string) (bool, error)
	// ListAll returns a snapshot of all events in insertion order.
	ListAll(ctx context.Context) ([]*Event, error)
}
