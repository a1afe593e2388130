package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AtsAssistant/entity"
)

func items(n int) []SelectableItem {
	out := make([]SelectableItem, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, SelectableItem{ID: fmt.Sprintf("ATS-%03d", i), Text: fmt.Sprintf("School %d", i)})
	}
	return out
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 5, 3},
		{7, 0, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.perPage), func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.perPage))
		})
	}
}

func TestGetPageSlice(t *testing.T) {
	all := items(12)

	assert.Equal(t, all[0:5], GetPageSlice(all, 1, 5))
	assert.Equal(t, all[5:10], GetPageSlice(all, 2, 5))
	assert.Equal(t, all[10:12], GetPageSlice(all, 3, 5))
	assert.Nil(t, GetPageSlice(all, 4, 5))
	assert.Equal(t, all[0:5], GetPageSlice(all, 0, 5), "pages below one start at the first page")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(9, 3))
}

func TestPaginatedListSinglePageHasNoNavigation(t *testing.T) {
	kb := PaginatedList(items(3), 1, 1)

	require.Len(t, kb.InlineKeyboard, 3)
	for i, row := range kb.InlineKeyboard {
		require.Len(t, row, 1)
		assert.Equal(t, fmt.Sprintf("ats:select:ATS-%03d", i+1), row[0].CallbackData)
	}
}

func TestPaginatedListNavigation(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		wantBack string
		wantNext string
	}{
		{"first page", 1, "ats:noop", "ats:page:2"},
		{"middle page", 2, "ats:page:1", "ats:page:3"},
		{"last page", 3, "ats:page:2", "ats:noop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := PaginatedList(items(DefaultItemsPerPage), tt.page, 3)

			require.Len(t, kb.InlineKeyboard, DefaultItemsPerPage+1)
			nav := kb.InlineKeyboard[DefaultItemsPerPage]
			require.Len(t, nav, 3)
			assert.Equal(t, tt.wantBack, nav[0].CallbackData)
			assert.Equal(t, fmt.Sprintf("%d/3", tt.page), nav[1].Text)
			assert.Equal(t, "ats:noop", nav[1].CallbackData)
			assert.Equal(t, tt.wantNext, nav[2].CallbackData)
		})
	}
}

func TestSchoolItems(t *testing.T) {
	got := SchoolItems([]entity.School{
		{ID: "ATS-001", Name: "مدرسة النيل", Governorate: "القاهرة"},
		{ID: "ATS-002", Name: "مدرسة الدلتا"},
	})

	assert.Equal(t, []SelectableItem{
		{ID: "ATS-001", Text: "مدرسة النيل - القاهرة"},
		{ID: "ATS-002", Text: "مدرسة الدلتا"},
	}, got)
}
