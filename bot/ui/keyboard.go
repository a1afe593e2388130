package ui

import (
	"fmt"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"

	"AtsAssistant/entity"
)

// SelectableItem is one button of a selection list.
type SelectableItem struct {
	ID   string
	Text string
}

// SchoolItems turns catalog schools into selection buttons labelled with the
// school name and governorate.
func SchoolItems(schools []entity.School) []SelectableItem {
	items := make([]SelectableItem, 0, len(schools))
	for _, s := range schools {
		text := s.Name
		if s.Governorate != "" {
			text = fmt.Sprintf("%s - %s", s.Name, s.Governorate)
		}
		items = append(items, SelectableItem{ID: s.ID, Text: text})
	}
	return items
}

// SelectionKeyboard puts every item on its own row.
func SelectionKeyboard(items []SelectableItem) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items))
	for _, item := range items {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			{Text: item.Text, CallbackData: BuildCallback(ActionSelect, item.ID)},
		})
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
