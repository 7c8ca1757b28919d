package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"calendarbot/internal/clock"
	"calendarbot/internal/domain"
)

// Conversation states. The creation flow walks the event states in order;
// the deletion flow has its own two.
type convState int

const (
	stateEventName convState = iota
	stateEventDate
	stateEventOrganizer
	stateEventPrice
	stateEventPlace
	stateEventLink
	stateDeleteName
	stateConfirmDelete
)

// session is the transient per-identity state of an in-progress flow: the
// current state plus either the partially built event (creation) or the
// typed name of the deletion candidate.
type session struct {
	state        convState
	draft        *domain.Event
	deleteTarget string
	lastActive   time.Time
}

// sessionTable keys sessions by identity. At most one session exists per
// identity; sessions idle longer than ttl are evicted lazily on access.
// Messages from one identity arrive strictly in order, so a session is never
// touched concurrently; the mutex only guards the map itself.
type sessionTable struct {
	mu     sync.Mutex
	byUser map[domain.UserID]*session
	ttl    time.Duration
	clock  clock.Clock
}

func newSessionTable(ttl time.Duration, clk clock.Clock) *sessionTable {
	return &sessionTable{
		byUser: make(map[domain.UserID]*session),
		ttl:    ttl,
		clock:  clk,
	}
}

func (t *sessionTable) get(id domain.UserID) *session {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.byUser[id]
	if !ok {
		return nil
	}
	now := t.clock.Now()
	if t.ttl > 0 && now.Sub(s.lastActive) > t.ttl {
		delete(t.byUser, id)
		return nil
	}
	s.lastActive = now
	return s
}

func (t *sessionTable) put(id domain.UserID, s *session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s.lastActive = t.clock.Now()
	t.byUser[id] = s
}

func (t *sessionTable) clear(id domain.UserID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.byUser, id)
}

// advance feeds one inbound message into the identity's active session.
func (s *chatService) advance(ctx context.Context, id domain.UserID, sess *session, text string) ([]domain.Reply, error) {
	switch sess.state {
	case stateEventName:
		// The first creation input re-checks permission; later steps are
		// covered by the entry check.
		if !s.access.Authorize(ctx, id, domain.RoleCommander) {
			s.sessions.clear(id)
			return s.deniedReply(ctx, id), nil
		}
		if text == "" {
			return textReply(msgNameEmpty), nil
		}
		sess.draft.Name = text
		sess.state = stateEventDate
		return textReply(msgPromptDate), nil

	case stateEventDate:
		if !ValidateDate(text) {
			return textReply(msgBadDate), nil
		}
		sess.draft.Date = text
		sess.state = stateEventOrganizer
		return textReply(msgPromptOrganizer), nil

	case stateEventOrganizer:
		if text == "" {
			return textReply(msgOrganizerEmpty), nil
		}
		sess.draft.Organizers = text
		sess.state = stateEventPrice
		return textReply(msgPromptPrice), nil

	case stateEventPrice:
		if !ValidatePrice(text) {
			return textReply(msgBadPrice), nil
		}
		sess.draft.PriceRaw = text
		sess.draft.Price = FormatPrice(text)
		sess.state = stateEventPlace
		return textReply(msgPromptPlace), nil

	case stateEventPlace:
		if text == "" {
			return textReply(msgPlaceEmpty), nil
		}
		sess.draft.Place = text
		sess.state = stateEventLink
		return textReply(msgPromptLink), nil

	case stateEventLink:
		if text == "" {
			return textReply(msgLinkEmpty), nil
		}
		sess.draft.Link = text
		if err := s.events.Append(ctx, sess.draft); err != nil {
			// Keep the session so the user can resubmit the link and retry
			// the save.
			s.logger.Error("saving event failed", "user_id", id, "event", sess.draft.Name, "error", err)
			return textReply(msgEventSaveFailed), nil
		}
		s.sessions.clear(id)
		s.logger.Info("event created", "user_id", id, "event", sess.draft.Name)
		return s.menuReply(ctx, id, msgEventAdded), nil

	case stateDeleteName:
		return s.advanceDeleteName(ctx, id, sess, text)

	case stateConfirmDelete:
		return s.advanceConfirmDelete(ctx, id, sess, text)
	}

	// Unreachable with a well-formed table; drop the session rather than
	// wedge the user.
	s.sessions.clear(id)
	return nil, nil
}

func (s *chatService) advanceDeleteName(ctx context.Context, id domain.UserID, sess *session, text string) ([]domain.Reply, error) {
	if !s.access.Authorize(ctx, id, domain.RoleAdmin) {
		s.sessions.clear(id)
		return s.deniedReply(ctx, id), nil
	}
	if text == domain.LabelCancelDelete {
		s.sessions.clear(id)
		return s.menuReply(ctx, id, msgDeleteCancelled), nil
	}
	if text == "" {
		return textReply(msgDeleteNameEmpty), nil
	}
	event, err := s.events.FindByName(ctx, text)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return []domain.Reply{{
				Text:     fmt.Sprintf(msgEventNotFoundFmt, text),
				Keyboard: domain.KeyboardDelete,
			}}, nil
		}
		return nil, err
	}
	// Only the typed name is remembered; the delete re-resolves it at commit
	// time, so a concurrent removal shows up as a failed delete.
	sess.deleteTarget = text
	sess.state = stateConfirmDelete
	return []domain.Reply{{
		Text:     renderDeleteConfirmation(event),
		HTML:     true,
		Keyboard: domain.KeyboardConfirmDelete,
	}}, nil
}

func (s *chatService) advanceConfirmDelete(ctx context.Context, id domain.UserID, sess *session, text string) ([]domain.Reply, error) {
	if !s.access.Authorize(ctx, id, domain.RoleAdmin) {
		s.sessions.clear(id)
		return s.deniedReply(ctx, id), nil
	}
	name := sess.deleteTarget
	s.sessions.clear(id)
	switch text {
	case domain.LabelConfirmDelete:
		removed, err := s.events.RemoveByName(ctx, name)
		if err != nil {
			s.logger.Error("deleting event failed", "user_id", id, "event", name, "error", err)
		}
		if err != nil || !removed {
			return s.menuReply(ctx, id, fmt.Sprintf(msgDeleteFailedFmt, name)), nil
		}
		s.logger.Info("event deleted", "user_id", id, "event", name)
		return s.menuReply(ctx, id, fmt.Sprintf(msgDeletedFmt, name)), nil
	case domain.LabelDenyDelete:
		return s.menuReply(ctx, id, msgDeleteCancelled), nil
	default:
		// Anything else cancels the deletion implicitly.
		return s.menuReply(ctx, id, msgUnknownCommand), nil
	}
}
