package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"

	"AtsAssistant/bot/ui"
	"AtsAssistant/entity"
	"AtsAssistant/impl/core"
	"AtsAssistant/internal/lib/sl"
)

const (
	noResultsText     = "لا توجد نتائج مطابقة."
	expiredSearchText = "انتهت صلاحية نتائج البحث، أعد البحث بالأمر /search"
)

func sessionID(userId int64) string {
	return fmt.Sprintf("tg:%d", userId)
}

// commandArg returns the text after the command word.
func commandArg(text string) string {
	_, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(arg)
}

func plainText(msg *tgbotapi.Message) bool {
	return message.Text(msg) && !strings.HasPrefix(msg.Text, "/")
}

func (t *TgBot) handleStart(_ *tgbotapi.Bot, ctx *ext.Context) error {
	if t.core == nil {
		return nil
	}
	greeting := t.core.Greeting(sessionID(ctx.EffectiveUser.Id))
	t.plainResponse(ctx.EffectiveChat.Id, greeting.Text)
	return nil
}

func (t *TgBot) handleReset(_ *tgbotapi.Bot, ctx *ext.Context) error {
	if t.core == nil {
		return nil
	}
	greeting := t.core.ResetConversation(context.Background(), sessionID(ctx.EffectiveUser.Id))
	t.plainResponse(ctx.EffectiveChat.Id, greeting.Text)
	return nil
}

func (t *TgBot) handleSearch(b *tgbotapi.Bot, ctx *ext.Context) error {
	if t.core == nil {
		return nil
	}
	query := commandArg(ctx.EffectiveMessage.Text)
	if query == "" {
		t.plainResponse(ctx.EffectiveChat.Id, "اكتب كلمة البحث بعد الأمر، مثال: /search القاهرة")
		return nil
	}

	userId := ctx.EffectiveUser.Id
	schools := t.core.Schools(context.Background(), sessionID(userId), entity.FilterCriteria{Query: query})
	if len(schools) == 0 {
		t.plainResponse(ctx.EffectiveChat.Id, noResultsText)
		return nil
	}
	t.searches.set(userId, query)

	text, keyboard := searchPage(schools, 1)
	_, err := b.SendMessage(ctx.EffectiveChat.Id, text, &tgbotapi.SendMessageOpts{
		ReplyMarkup: keyboard,
	})
	if err != nil {
		return fmt.Errorf("send search results: %w", err)
	}
	return nil
}

// handleCallback serves the buttons of the search results keyboard.
func (t *TgBot) handleCallback(b *tgbotapi.Bot, ctx *ext.Context) error {
	cq := ctx.CallbackQuery
	if _, err := cq.Answer(b, nil); err != nil {
		t.log.Debug("answer callback", sl.Err(err))
	}
	if t.core == nil {
		return nil
	}

	cb := ui.ParseCallback(cq.Data)
	if cb == nil {
		return nil
	}
	userId := ctx.EffectiveUser.Id

	switch cb.Action {
	case ui.ActionPage:
		query, ok := t.searches.get(userId)
		if !ok {
			t.plainResponse(ctx.EffectiveChat.Id, expiredSearchText)
			return nil
		}
		schools := t.core.Schools(context.Background(), sessionID(userId), entity.FilterCriteria{Query: query})
		if len(schools) == 0 {
			t.plainResponse(ctx.EffectiveChat.Id, noResultsText)
			return nil
		}
		_, keyboard := searchPage(schools, cb.PageNumber())
		_, _, err := ctx.EffectiveMessage.EditReplyMarkup(b, &tgbotapi.EditMessageReplyMarkupOpts{
			ReplyMarkup: keyboard,
		})
		if err != nil {
			return fmt.Errorf("edit search page: %w", err)
		}

	case ui.ActionSelect:
		school, err := t.core.School(cb.SelectedID())
		if errors.Is(err, core.ErrSchoolNotFound) {
			t.plainResponse(ctx.EffectiveChat.Id, "لا توجد مدرسة بهذا الرقم: "+cb.SelectedID())
			return nil
		}
		if err != nil {
			return fmt.Errorf("find school: %w", err)
		}

		if _, err = b.SendChatAction(ctx.EffectiveChat.Id, "typing", nil); err != nil {
			t.log.Debug("chat action", sl.Err(err))
		}
		c, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()

		reply, err := t.core.SelectSchool(c, sessionID(userId), school.Name)
		if err != nil {
			t.log.With(
				slog.Int64("user_id", userId),
				slog.String("school", school.ID),
				sl.Err(err),
			).Warn("select school")
			return nil
		}
		t.plainResponse(ctx.EffectiveChat.Id, reply.Answer.Text)
	}

	return nil
}

func (t *TgBot) handleToggleFavorite(_ *tgbotapi.Bot, ctx *ext.Context) error {
	if t.core == nil {
		return nil
	}
	id := commandArg(ctx.EffectiveMessage.Text)
	if id == "" {
		t.plainResponse(ctx.EffectiveChat.Id, "اكتب رقم المدرسة بعد الأمر، مثال: /fav ATS-001")
		return nil
	}

	ids, err := t.core.ToggleFavorite(context.Background(), sessionID(ctx.EffectiveUser.Id), id)
	if errors.Is(err, core.ErrSchoolNotFound) {
		t.plainResponse(ctx.EffectiveChat.Id, "لا توجد مدرسة بهذا الرقم: "+id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("toggle favorite: %w", err)
	}
	t.plainResponse(ctx.EffectiveChat.Id, formatFavorites(ids))
	return nil
}

func (t *TgBot) handleFavorites(_ *tgbotapi.Bot, ctx *ext.Context) error {
	if t.core == nil {
		return nil
	}
	ids := t.core.Favorites(context.Background(), sessionID(ctx.EffectiveUser.Id))
	t.plainResponse(ctx.EffectiveChat.Id, formatFavorites(ids))
	return nil
}

func (t *TgBot) handleMessage(b *tgbotapi.Bot, ctx *ext.Context) error {
	if t.core == nil {
		return nil
	}
	chatId := ctx.EffectiveChat.Id

	if _, err := b.SendChatAction(chatId, "typing", nil); err != nil {
		t.log.Debug("chat action", sl.Err(err))
	}

	c, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()

	reply, err := t.core.SendMessage(c, sessionID(ctx.EffectiveUser.Id), ctx.EffectiveMessage.Text)
	if err != nil {
		t.log.With(
			slog.Int64("user_id", ctx.EffectiveUser.Id),
			sl.Err(err),
		).Warn("send message")
		return nil
	}
	t.plainResponse(chatId, reply.Answer.Text)
	return nil
}

// searchPage renders one page of results as a header line and a keyboard of
// school buttons. Out of range pages are clamped.
func searchPage(schools []entity.School, page int) (string, tgbotapi.InlineKeyboardMarkup) {
	totalPages := ui.CalculateTotalPages(len(schools), ui.DefaultItemsPerPage)
	page = ui.ClampPage(page, totalPages)

	items := ui.SchoolItems(ui.GetPageSlice(schools, page, ui.DefaultItemsPerPage))
	text := fmt.Sprintf("عدد النتائج: %d\nاختر مدرسة لعرض تفاصيلها.", len(schools))

	return text, ui.PaginatedList(items, page, totalPages)
}

func isSearchCallback(cq *tgbotapi.CallbackQuery) bool {
	return ui.IsCallback(cq.Data)
}

func formatFavorites(ids []string) string {
	if len(ids) == 0 {
		return "قائمة المفضلة فارغة."
	}
	return "المفضلة:\n" + strings.Join(ids, "\n")
}
