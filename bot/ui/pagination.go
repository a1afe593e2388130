package ui

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

const (
	DefaultItemsPerPage = 5

	backText = "◀️ السابق"
	nextText = "التالي ▶️"
)

// PaginatedList creates an inline keyboard with one page of items and a
// navigation row.
//
//	[Item 1]
//	...
//	[Item 5]
//	[◀️ السابق] [1/3] [التالي ▶️]
func PaginatedList(items []SelectableItem, currentPage, totalPages int) tgbotapi.InlineKeyboardMarkup {
	keyboard := SelectionKeyboard(items)

	navRow := buildNavRow(currentPage, totalPages)
	if len(navRow) > 0 {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, navRow)
	}

	return keyboard
}

// buildNavRow is empty for a single page. Missing back or next buttons are
// replaced with blank noop buttons so the indicator stays centred.
func buildNavRow(currentPage, totalPages int) []tgbotapi.InlineKeyboardButton {
	if totalPages <= 1 {
		return nil
	}

	navRow := make([]tgbotapi.InlineKeyboardButton, 0, 3)

	if currentPage > 1 {
		navRow = append(navRow, tgbotapi.InlineKeyboardButton{
			Text:         backText,
			CallbackData: BuildCallback(ActionPage, strconv.Itoa(currentPage-1)),
		})
	} else {
		navRow = append(navRow, noopButton(" "))
	}

	navRow = append(navRow, noopButton(fmt.Sprintf("%d/%d", currentPage, totalPages)))

	if currentPage < totalPages {
		navRow = append(navRow, tgbotapi.InlineKeyboardButton{
			Text:         nextText,
			CallbackData: BuildCallback(ActionPage, strconv.Itoa(currentPage+1)),
		})
	} else {
		navRow = append(navRow, noopButton(" "))
	}

	return navRow
}

func noopButton(text string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.InlineKeyboardButton{Text: text, CallbackData: BuildCallback(ActionNoop)}
}

// GetPageSlice returns the items of a 1-based page, nil past the end.
func GetPageSlice[T any](items []T, page, itemsPerPage int) []T {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * itemsPerPage
	if start >= len(items) {
		return nil
	}

	end := start + itemsPerPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// CalculateTotalPages never returns less than one.
func CalculateTotalPages(totalItems, itemsPerPage int) int {
	if itemsPerPage <= 0 {
		return 1
	}
	pages := totalItems / itemsPerPage
	if totalItems%itemsPerPage > 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return pages
}

// ClampPage keeps page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
