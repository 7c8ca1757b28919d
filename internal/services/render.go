package services

import (
	"fmt"
	"html"

	"calendarbot/internal/domain"
)

// renderEventCard renders one event as an HTML message. User-supplied fields
// are escaped.
func renderEventCard(e *domain.Event) string {
	return fmt.Sprintf(
		"🎉 <b>%s</b>\n\n"+
			"📅 <b>Дата:</b> %s\n"+
			"👥 <b>Организатор:</b> %s\n"+
			"💰 <b>Цена:</b> %s\n"+
			"📍 <b>Место:</b> %s\n"+
			"🔗 <b>Ссылка:</b> %s",
		html.EscapeString(e.Name),
		html.EscapeString(e.Date),
		html.EscapeString(e.Organizers),
		html.EscapeString(e.Price),
		html.EscapeString(e.Place),
		html.EscapeString(e.Link),
	)
}

// renderDeleteConfirmation renders the summary shown before a deletion is
// confirmed.
func renderDeleteConfirmation(e *domain.Event) string {
	return fmt.Sprintf(
		"🗑️ <b>Удаление события:</b>\n\n"+
			"🎉 <b>%s</b>\n"+
			"📅 <b>Дата:</b> %s\n"+
			"👥 <b>Организатор:</b> %s\n\n"+
			"Вы уверены, что хотите удалить это событие?",
		html.EscapeString(e.Name),
		html.EscapeString(e.Date),
		html.EscapeString(e.Organizers),
	)
}
