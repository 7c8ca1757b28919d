// Package telegram adapts the chat service to the Telegram Bot API: it long
// polls for updates, forwards each inbound text message, and renders replies
// with the fixed keyboard set.
package telegram

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"calendarbot/internal/domain"
)

const pollTimeoutSeconds = 30

// Bot runs the update loop over one bot API connection.
type Bot struct {
	api    *tgbotapi.BotAPI
	chat   domain.ChatService
	logger *slog.Logger
}

// New creates a Bot delivering updates to the given chat service.
func New(api *tgbotapi.BotAPI, chat domain.ChatService, logger *slog.Logger) *Bot {
	return &Bot{api: api, chat: chat, logger: logger}
}

// Run polls for updates until the context is cancelled or a reply requests
// shutdown. Replies of a handled message are always delivered before the
// loop exits.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeoutSeconds
	updates := b.api.GetUpdatesChan(cfg)
	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		msg := update.Message
		if msg == nil || msg.From == nil || msg.Text == "" {
			continue
		}
		start := time.Now()
		userID := domain.UserID(msg.From.ID)
		replies, err := b.chat.HandleMessage(ctx, userID, msg.Text)
		if err != nil {
			b.logger.Error("handling message failed", "user_id", userID, "error", err)
			continue
		}
		shutdown := false
		for _, reply := range replies {
			if err := b.send(msg.Chat.ID, reply); err != nil {
				b.logger.Error("sending reply failed", "user_id", userID, "error", err)
			}
			shutdown = shutdown || reply.Shutdown
		}
		b.logger.Info("message handled",
			"user_id", userID,
			"replies", len(replies),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if shutdown {
			return nil
		}
	}
	return nil
}

func (b *Bot) send(chatID int64, reply domain.Reply) error {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.HTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if reply.NoLinkPreview {
		msg.DisableWebPagePreview = true
	}
	if markup := keyboardMarkup(reply); markup != nil {
		msg.ReplyMarkup = markup
	}
	_, err := b.api.Send(msg)
	return err
}

// keyboardMarkup maps a reply's keyboard selector to Telegram markup.
// Returns nil when the current keyboard should stay as is.
func keyboardMarkup(reply domain.Reply) interface{} {
	switch reply.Keyboard {
	case domain.KeyboardMain:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(domain.LabelEventsMenu)),
		)
	case domain.KeyboardEvents:
		return eventsKeyboard(reply.Role)
	case domain.KeyboardDelete:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(domain.LabelCancelDelete)),
		)
	case domain.KeyboardConfirmDelete:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(domain.LabelConfirmDelete),
				tgbotapi.NewKeyboardButton(domain.LabelDenyDelete),
			),
		)
	case domain.KeyboardRemove:
		return tgbotapi.NewRemoveKeyboard(true)
	}
	return nil
}

// eventsKeyboard shows only the actions the role may take.
func eventsKeyboard(role domain.Role) tgbotapi.ReplyKeyboardMarkup {
	switch role {
	case domain.RoleAdmin:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(domain.LabelReportEvent),
				tgbotapi.NewKeyboardButton(domain.LabelShowEvents),
			),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(domain.LabelDeleteEvent)),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(domain.LabelBack)),
		)
	case domain.RoleCommander:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(domain.LabelReportEvent),
				tgbotapi.NewKeyboardButton(domain.LabelShowEvents),
			),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(domain.LabelBack)),
		)
	default:
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(domain.LabelShowEvents)),
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(domain.LabelBack)),
		)
	}
}
