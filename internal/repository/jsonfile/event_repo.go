package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"calendarbot/internal/domain"
)

type eventsDocument struct {
	Events []*domain.Event `json:"events"`
}

type eventRepository struct {
	path string
	mu   sync.Mutex
}

// NewEventRepository returns an EventRepository backed by the JSON document
// at path. A missing or malformed file reads as an empty store.
func NewEventRepository(path string) domain.EventRepository {
	return &eventRepository{path: path}
}

func (r *eventRepository) load() *eventsDocument {
	doc := &eventsDocument{Events: []*domain.Event{}}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return &eventsDocument{Events: []*domain.Event{}}
	}
	if doc.Events == nil {
		doc.Events = []*domain.Event{}
	}
	return doc
}

func (r *eventRepository) save(doc *eventsDocument) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return writeFileAtomic(r.path, data)
}

func (r *eventRepository) Append(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := r.load()
	stored := *event
	doc.Events = append(doc.Events, &stored)
	return r.save(doc)
}

func (r *eventRepository) FindByName(ctx context.Context, name string) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.load().Events {
		if strings.EqualFold(e.Name, name) {
			found := *e
			return &found, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

// RemoveByName removes every case-insensitive match in one call, matching
// the historical store behavior over duplicate names.
func (r *eventRepository) RemoveByName(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := r.load()
	kept := doc.Events[:0]
	for _, e := range doc.Events {
		if !strings.EqualFold(e.Name, name) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(doc.Events) {
		return false, nil
	}
	doc.Events = kept
	if err := r.save(doc); err != nil {
		return false, err
	}
	return true, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := r.load()
	events := make([]*domain.Event, len(doc.Events))
	for i, e := range doc.Events {
		copied := *e
		events[i] = &copied
	}
	return events, nil
}
