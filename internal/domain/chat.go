package domain

import "context"

// Reply-keyboard button labels. The dispatcher matches inbound text against
// these exact strings; the transport renders them as keyboard buttons.
const (
	LabelEventsMenu    = "События"
	LabelShowEvents    = "Показать события"
	LabelReportEvent   = "Сообщить о событии"
	LabelDeleteEvent   = "Удалить событие"
	LabelBack          = "Назад"
	LabelCancelDelete  = "Отменить удаление"
	LabelConfirmDelete = "Да, удалить"
	LabelDenyDelete    = "Нет, отменить"
)

// Keyboard identifies which fixed reply-keyboard variant should accompany a
// reply. The transport renders the actual markup.
type Keyboard int

const (
	// KeyboardNone leaves the current keyboard untouched.
	KeyboardNone Keyboard = iota
	// KeyboardMain shows the single top-level menu button.
	KeyboardMain
	// KeyboardEvents shows the events submenu for the role carried in the
	// reply.
	KeyboardEvents
	// KeyboardDelete shows the delete-flow abort button.
	KeyboardDelete
	// KeyboardConfirmDelete shows the confirm/deny buttons.
	KeyboardConfirmDelete
	// KeyboardRemove removes any visible keyboard.
	KeyboardRemove
)

// Reply is one outbound message produced while handling an inbound one.
type Reply struct {
	Text string
	// HTML marks the text as pre-escaped HTML markup.
	HTML bool
	// NoLinkPreview suppresses link previews for the message.
	NoLinkPreview bool
	Keyboard      Keyboard
	// Role selects the variant when Keyboard is KeyboardEvents.
	Role Role
	// Shutdown asks the transport to stop after delivering this reply.
	Shutdown bool
}

// ChatService handles a single inbound message and returns the replies to
// send back, in order. An empty slice means the message is ignored.
type ChatService interface {
	HandleMessage(ctx context.Context, id UserID, text string) ([]Reply, error)
}
