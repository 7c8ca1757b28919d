package telegram

import (
	"testing"

	"calendarbot/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonLabels(markup tgbotapi.ReplyKeyboardMarkup) [][]string {
	rows := make([][]string, len(markup.Keyboard))
	for i, row := range markup.Keyboard {
		for _, btn := range row {
			rows[i] = append(rows[i], btn.Text)
		}
	}
	return rows
}

func TestEventsKeyboardPerRole(t *testing.T) {
	tests := []struct {
		name string
		role domain.Role
		want [][]string
	}{
		{
			"admin sees everything",
			domain.RoleAdmin,
			[][]string{
				{domain.LabelReportEvent, domain.LabelShowEvents},
				{domain.LabelDeleteEvent},
				{domain.LabelBack},
			},
		},
		{
			"commander cannot delete",
			domain.RoleCommander,
			[][]string{
				{domain.LabelReportEvent, domain.LabelShowEvents},
				{domain.LabelBack},
			},
		},
		{
			"user can only browse",
			domain.RoleUser,
			[][]string{
				{domain.LabelShowEvents},
				{domain.LabelBack},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := eventsKeyboard(tt.role)
			assert.True(t, markup.ResizeKeyboard)
			assert.Equal(t, tt.want, buttonLabels(markup))
		})
	}
}

func TestKeyboardMarkup(t *testing.T) {
	assert.Nil(t, keyboardMarkup(domain.Reply{Keyboard: domain.KeyboardNone}))

	main, ok := keyboardMarkup(domain.Reply{Keyboard: domain.KeyboardMain}).(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok)
	assert.Equal(t, [][]string{{domain.LabelEventsMenu}}, buttonLabels(main))

	confirm, ok := keyboardMarkup(domain.Reply{Keyboard: domain.KeyboardConfirmDelete}).(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok)
	assert.Equal(t, [][]string{{domain.LabelConfirmDelete, domain.LabelDenyDelete}}, buttonLabels(confirm))

	remove, ok := keyboardMarkup(domain.Reply{Keyboard: domain.KeyboardRemove}).(tgbotapi.ReplyKeyboardRemove)
	require.True(t, ok)
	assert.True(t, remove.RemoveKeyboard)
}
