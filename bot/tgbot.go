package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"

	"AtsAssistant/entity"
	"AtsAssistant/internal/lib/sl"
)

const replyTimeout = 90 * time.Second

// Core is the part of the application the bot talks to.
type Core interface {
	Greeting(sessionID string) entity.ChatMessage
	Schools(ctx context.Context, sessionID string, criteria entity.FilterCriteria) []entity.School
	Favorites(ctx context.Context, sessionID string) []string
	ToggleFavorite(ctx context.Context, sessionID, id string) ([]string, error)
	SendMessage(ctx context.Context, sessionID, text string) (*entity.ChatReply, error)
	ResetConversation(ctx context.Context, sessionID string) entity.ChatMessage
	School(id string) (entity.School, error)
	SelectSchool(ctx context.Context, sessionID, name string) (*entity.ChatReply, error)
}

type TgBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	adminId     int64
	core        Core
	searches    *searchStore
}

func NewTgBot(botName, apiKey string, adminId int64, log *slog.Logger) (*TgBot, error) {
	tgBot := &TgBot{
		log:         log.With(sl.Module("tgbot")),
		adminId:     adminId,
		botUsername: botName,
		searches:    newSearchStore(),
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	tgBot.api = api

	return tgBot, nil
}

func (t *TgBot) SetCore(core Core) {
	t.core = core
}

// Start polls for updates until the process exits.
func (t *TgBot) Start() error {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		// If an error is returned by a handler, log it and continue going.
		Error: func(b *tgbotapi.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			t.log.Error("handling update", sl.Err(err))
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewCommand("start", t.handleStart))
	dispatcher.AddHandler(handlers.NewCommand("reset", t.handleReset))
	dispatcher.AddHandler(handlers.NewCommand("search", t.handleSearch))
	dispatcher.AddHandler(handlers.NewCommand("fav", t.handleToggleFavorite))
	dispatcher.AddHandler(handlers.NewCommand("favs", t.handleFavorites))
	dispatcher.AddHandler(handlers.NewCallback(isSearchCallback, t.handleCallback))
	dispatcher.AddHandler(handlers.NewMessage(plainText, t.handleMessage))

	err := updater.StartPolling(t.api, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &tgbotapi.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &tgbotapi.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	t.log.Info("telegram bot started", slog.String("username", t.botUsername))

	// Idle, to keep updates coming in, and avoid bot stopping.
	updater.Idle()

	return nil
}

// SendMessage delivers a message to the admin chat.
func (t *TgBot) SendMessage(msg string) {
	t.plainResponse(t.adminId, msg)
}

func (t *TgBot) plainResponse(chatId int64, text string) {
	// models use ** for bold text, MarkdownV2 wants a single *
	text = strings.ReplaceAll(text, "**", "*")
	text = strings.ReplaceAll(text, "![", "[")

	sanitized := sanitize(text, false)

	if sanitized == "" {
		t.log.With(
			slog.Int64("id", chatId),
		).Debug("empty message")
		return
	}

	_, err := t.api.SendMessage(chatId, sanitized, &tgbotapi.SendMessageOpts{
		ParseMode: "MarkdownV2",
	})
	if err != nil {
		t.log.With(
			slog.Int64("id", chatId),
		).Warn("sending message", sl.Err(err))
		_, err = t.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{})
		if err != nil {
			t.log.With(
				slog.Int64("id", chatId),
			).Error("sending safe message", sl.Err(err))
		}
	}
}

// sanitize escapes the MarkdownV2 reserved characters. With preserveLinks the
// link brackets are left untouched.
func sanitize(input string, preserveLinks bool) string {
	reservedChars := "\\`_{}#+-.!|()[]="
	if preserveLinks {
		reservedChars = "\\`_{}#+-.!|="
	}

	var sb strings.Builder
	for _, char := range input {
		if strings.ContainsRune(reservedChars, char) {
			sb.WriteRune('\\')
		}
		sb.WriteRune(char)
	}
	return sb.String()
}
