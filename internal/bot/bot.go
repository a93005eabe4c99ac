// SPDX-License-Identifier: Apache-2.0

// Package bot is the Telegram front of the print service. It long-polls the
// Bot API, walks authorized users through the print and scan dialogs, and
// drives the conversion, printing and scanning layers underneath.
package bot

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/automa-saga/logx"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joomcode/errorx"

	"github.com/printworks/printbot/internal/config"
	"github.com/printworks/printbot/internal/conversion"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/printing"
	"github.com/printworks/printbot/internal/scanning"
	"github.com/printworks/printbot/internal/sentryx"
	"github.com/printworks/printbot/internal/store"
	"github.com/printworks/printbot/pkg/fsx"
)

const (
	// pollTimeoutSeconds is the long-poll window passed to getUpdates.
	pollTimeoutSeconds = 30

	downloadTimeout = 5 * time.Minute
)

// Bot bundles the Telegram client with the device layers and the per-chat
// dialog state.
type Bot struct {
	api      *tgbotapi.BotAPI
	acl      *store.ACL
	cfg      *printing.Config
	conv     *conversion.Converter
	printer  *printing.Printer
	booklets *printing.BookletBuilder
	scanner  *scanning.Scanner
	sessions *sessionStore
	tempDir  string
	http     *http.Client
}

// Run starts the bot and blocks until ctx is cancelled or startup fails.
// This is the entrypoint behind the run command and the systemd unit.
func Run(ctx context.Context) error {
	settings, err := LoadSettings()
	if err != nil {
		return err
	}

	cfg, err := printing.Load(core.PrintingDefaultsFile)
	if err != nil {
		return err
	}

	sentrySettings := config.Get().Sentry
	dsn := ""
	if sentrySettings.Enabled {
		dsn = sentrySettings.DSN
	}
	if err := sentryx.Init(dsn, sentrySettings.Environment); err != nil {
		return err
	}
	defer sentryx.Flush()

	files, err := fsx.NewManager()
	if err != nil {
		return err
	}

	// the scratch space is typically on tmpfs and gone after a reboot
	if err := files.CreateDirectory(core.TempDir, true); err != nil {
		return errorx.Decorate(err, "cannot create scratch directory %s", core.TempDir)
	}

	acl := store.NewACL(files, core.AllowedUsersFile, settings.AdminID)
	if err := acl.Load(); err != nil {
		return err
	}

	api, err := tgbotapi.NewBotAPI(settings.Token)
	if err != nil {
		return ConnectError.Wrap(err, "cannot connect to the Telegram Bot API")
	}
	if err := tgbotapi.SetLogger(apiLogger{}); err != nil {
		logx.As().Warn().Err(err).Msg("Cannot attach the Bot API logger")
	}

	b := &Bot{
		api:      api,
		acl:      acl,
		cfg:      cfg,
		conv:     conversion.NewConverter(files),
		printer:  printing.NewPrinter(cfg),
		scanner:  scanning.NewScanner(cfg.Scanner.Device, cfg.Scanner.ResolutionDPI, cfg.Scanner.Mode),
		sessions: newSessionStore(),
		tempDir:  core.TempDir,
		http:     &http.Client{Timeout: downloadTimeout},
	}
	b.booklets = printing.NewBookletBuilder(b.conv)

	go store.RunJanitor(ctx, core.TempDir, store.DefaultJanitorInterval)

	return b.serve(ctx)
}

// serve owns the update loop. It returns once the update channel drains
// after a shutdown request and every in-flight handler has finished.
func (b *Bot) serve(ctx context.Context) error {
	logx.As().Info().
		Str("account", b.api.Self.UserName).
		Str("printer", b.cfg.Printer.Name).
		Int64("admin", b.acl.AdminID()).
		Msg("Connected to Telegram, polling for updates")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollTimeoutSeconds

	updates := b.api.GetUpdatesChan(updateConfig)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	var handlers sync.WaitGroup
	for update := range updates {
		handlers.Add(1)
		go func() {
			defer handlers.Done()
			b.dispatch(ctx, update)
		}()
	}

	handlers.Wait()
	logx.As().Info().Msg("Update polling stopped")
	return nil
}

// dispatch routes one update to its handler under the chat's session lock.
// Handlers for different chats run concurrently; within a chat they
// serialize, so a slow scan cannot interleave with a second tap.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("update handler panicked: %v", r)
			logx.As().Error().Err(err).Int("update", update.UpdateID).Msg("Recovered from a handler panic")
			sentryx.CaptureError(err, map[string]string{"update": strconv.Itoa(update.UpdateID)})
		}
	}()

	b.logUpdate(update)

	chatID := updateChatID(update)
	if chatID == 0 {
		return
	}

	sess := b.sessions.Get(chatID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery, sess)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message, sess)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message, sess *Session) {
	if msg.From == nil {
		return
	}

	switch {
	case msg.IsCommand():
		b.handleCommand(msg, sess)
	case msg.Document != nil || len(msg.Photo) > 0:
		b.handleIncomingFile(ctx, msg, sess)
	case msg.Text != "":
		b.handleTextInput(ctx, msg, sess)
	}
}

func (b *Bot) logUpdate(update tgbotapi.Update) {
	evt := logx.As().Debug().Int("update", update.UpdateID)

	switch {
	case update.CallbackQuery != nil:
		q := update.CallbackQuery
		evt = evt.Int64("user", q.From.ID).Str("username", q.From.UserName).Str("callback", q.Data)
	case update.Message != nil:
		m := update.Message
		if m.From != nil {
			evt = evt.Int64("user", m.From.ID).Str("username", m.From.UserName)
		}
		evt = evt.Str("content", describeMessage(m))
	default:
		evt = evt.Str("content", "other")
	}

	evt.Msg("Update received")
}

func describeMessage(m *tgbotapi.Message) string {
	switch {
	case m.Text != "":
		return m.Text
	case m.Caption != "":
		return m.Caption
	case m.Document != nil:
		return "document " + m.Document.FileName
	case len(m.Photo) > 0:
		return "photo"
	case m.Voice != nil:
		return "voice"
	default:
		return "other"
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	switch {
	case update.Message != nil && update.Message.Chat != nil:
		return update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil && update.CallbackQuery.Message.Chat != nil:
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

// reply sends a plain message and returns its id so the caller can edit it
// as an operation progresses. Returns 0 when sending failed.
func (b *Bot) reply(chatID int64, text string) int {
	m, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		logx.As().Warn().Err(err).Int64("chat", chatID).Msg("Cannot send message")
		return 0
	}
	return m.MessageID
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = keyboard
	if _, err := b.api.Send(m); err != nil {
		logx.As().Warn().Err(err).Int64("chat", chatID).Msg("Cannot send message")
	}
}

// edit rewrites a previously sent message. When editing is impossible the
// text goes out as a fresh message instead, so the user never loses an
// outcome to a stale message id.
func (b *Bot) edit(chatID int64, messageID int, text string) {
	if messageID == 0 {
		b.reply(chatID, text)
		return
	}

	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		b.reply(chatID, text)
	}
}

func (b *Bot) editWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	if messageID == 0 {
		b.replyWithKeyboard(chatID, text, keyboard)
		return
	}

	if _, err := b.api.Send(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		b.replyWithKeyboard(chatID, text, keyboard)
	}
}

// apiLogger routes the Bot API library's own log lines into the structured
// log at debug level.
type apiLogger struct{}

func (apiLogger) Println(v ...interface{}) {
	logx.As().Debug().Msg(strings.TrimSpace(fmt.Sprintln(v...)))
}

func (apiLogger) Printf(format string, v ...interface{}) {
	logx.As().Debug().Msgf(strings.TrimSuffix(format, "\n"), v...)
}
