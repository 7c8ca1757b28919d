package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"calendarbot/internal/clock"
	"calendarbot/internal/domain"
)

// Top-level commands.
const (
	cmdStart  = "/start"
	cmdStop   = "/stop"
	cmdCancel = "/cancel"
)

type chatService struct {
	events   domain.EventRepository
	access   domain.AccessService
	sessions *sessionTable
	logger   *slog.Logger
}

// NewChatService creates the ChatService driving the menus and both
// conversation flows. Sessions idle longer than sessionTTL are abandoned.
func NewChatService(events domain.EventRepository, access domain.AccessService, clk clock.Clock, sessionTTL time.Duration, logger *slog.Logger) domain.ChatService {
	return &chatService{
		events:   events,
		access:   access,
		sessions: newSessionTable(sessionTTL, clk),
		logger:   logger,
	}
}

// HandleMessage routes one inbound message. Routing order: top-level
// commands, then flow entry points (which abandon any active session), then
// the active session, then menu labels. Unrecognized text outside a flow is
// ignored.
func (s *chatService) HandleMessage(ctx context.Context, id domain.UserID, text string) ([]domain.Reply, error) {
	switch text {
	case cmdStart:
		return s.handleStart(ctx, id)
	case cmdStop:
		return s.handleStop(ctx, id)
	case cmdCancel:
		return s.handleCancel(ctx, id)
	case domain.LabelReportEvent:
		return s.startCreation(ctx, id)
	case domain.LabelDeleteEvent:
		return s.startDeletion(ctx, id)
	}

	if sess := s.sessions.get(id); sess != nil {
		return s.advance(ctx, id, sess, strings.TrimSpace(text))
	}

	switch text {
	case domain.LabelShowEvents:
		return s.showEvents(ctx)
	case domain.LabelEventsMenu:
		return s.menuReply(ctx, id, msgEventsMenu), nil
	case domain.LabelBack:
		return []domain.Reply{{Text: msgMainMenu, Keyboard: domain.KeyboardMain}}, nil
	}
	return nil, nil
}

func (s *chatService) handleStart(ctx context.Context, id domain.UserID) ([]domain.Reply, error) {
	role := s.access.ResolveRole(ctx, id)
	return []domain.Reply{{
		Text:     fmt.Sprintf(msgGreetingFmt, role),
		Keyboard: domain.KeyboardMain,
	}}, nil
}

func (s *chatService) handleStop(ctx context.Context, id domain.UserID) ([]domain.Reply, error) {
	if !s.access.Authorize(ctx, id, domain.RoleAdmin) {
		return s.deniedReply(ctx, id), nil
	}
	s.logger.Info("shutdown requested", "user_id", id)
	return []domain.Reply{{
		Text:     msgStopping,
		Keyboard: domain.KeyboardRemove,
		Shutdown: true,
	}}, nil
}

// handleCancel ends the active flow, if any. Outside a flow the command is
// silently ignored.
func (s *chatService) handleCancel(ctx context.Context, id domain.UserID) ([]domain.Reply, error) {
	if s.sessions.get(id) == nil {
		return nil, nil
	}
	s.sessions.clear(id)
	return s.menuReply(ctx, id, msgOperationCancelled), nil
}

func (s *chatService) startCreation(ctx context.Context, id domain.UserID) ([]domain.Reply, error) {
	if !s.access.Authorize(ctx, id, domain.RoleCommander) {
		s.sessions.clear(id)
		return s.deniedReply(ctx, id), nil
	}
	s.sessions.put(id, &session{state: stateEventName, draft: &domain.Event{}})
	return []domain.Reply{{Text: msgPromptName, Keyboard: domain.KeyboardRemove}}, nil
}

func (s *chatService) startDeletion(ctx context.Context, id domain.UserID) ([]domain.Reply, error) {
	if !s.access.Authorize(ctx, id, domain.RoleAdmin) {
		s.sessions.clear(id)
		return s.deniedReply(ctx, id), nil
	}
	s.sessions.put(id, &session{state: stateDeleteName})
	return []domain.Reply{{Text: msgPromptDeleteName, Keyboard: domain.KeyboardDelete}}, nil
}

func (s *chatService) showEvents(ctx context.Context) ([]domain.Reply, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return textReply(msgNoEvents), nil
	}
	replies := make([]domain.Reply, 0, len(events))
	for _, e := range events {
		replies = append(replies, domain.Reply{
			Text:          renderEventCard(e),
			HTML:          true,
			NoLinkPreview: true,
		})
	}
	return replies, nil
}

// deniedReply is the fixed insufficient-permission notice, sent with the
// events keyboard of the caller's actual role.
func (s *chatService) deniedReply(ctx context.Context, id domain.UserID) []domain.Reply {
	return s.menuReply(ctx, id, msgInsufficientPermission)
}

// menuReply wraps text with the role-appropriate events keyboard.
func (s *chatService) menuReply(ctx context.Context, id domain.UserID, text string) []domain.Reply {
	return []domain.Reply{{
		Text:     text,
		Keyboard: domain.KeyboardEvents,
		Role:     s.access.ResolveRole(ctx, id),
	}}
}

func textReply(text string) []domain.Reply {
	return []domain.Reply{{Text: text}}
}
