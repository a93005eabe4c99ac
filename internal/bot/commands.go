// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automa-saga/logx"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joomcode/errorx"

	"github.com/printworks/printbot/internal/conversion"
	"github.com/printworks/printbot/internal/store"
)

const (
	deniedText        = "⛔ Access denied"
	deniedContactText = "⛔ Access denied. Contact the administrator to get on the list."
	adminOnlyText     = "⛔ This command is for the administrator only"
)

func (b *Bot) handleCommand(msg *tgbotapi.Message, sess *Session) {
	switch msg.Command() {
	case "start":
		b.cmdStart(msg)
	case "help_booklet":
		b.cmdHelpBooklet(msg)
	case "add_user":
		b.cmdAddUser(msg)
	case "remove_user":
		b.cmdRemoveUser(msg)
	case "list_users":
		b.cmdListUsers(msg)
	case "cancel":
		b.cmdCancel(msg, sess)
	default:
		logx.As().Debug().Str("command", msg.Command()).Msg("Ignoring unknown command")
	}
}

func (b *Bot) cmdStart(msg *tgbotapi.Message) {
	if !b.acl.IsAllowed(msg.From.ID) {
		b.reply(msg.Chat.ID, deniedContactText)
		return
	}

	text := fmt.Sprintf(
		"🤖 Print and scan bot\n\n"+
			"📎 Send a document and I will print it\n"+
			"🖼 Photos work too\n"+
			"📸 The button below runs the scanner\n\n"+
			"Formats: %s\n"+
			"Size limit: %d MB\n\n"+
			"/help_booklet explains booklet printing",
		strings.Join(conversion.SupportedExtensions(), ", "),
		b.cfg.Jobs.MaxFileSizeMB)

	if b.acl.IsAdmin(msg.From.ID) {
		text += "\n\n⚙️ Admin commands: /add_user, /remove_user, /list_users"
	}

	b.replyWithKeyboard(msg.Chat.ID, text, startScanKeyboard())
}

func (b *Bot) cmdHelpBooklet(msg *tgbotapi.Message) {
	if !b.acl.IsAllowed(msg.From.ID) {
		b.reply(msg.Chat.ID, deniedText)
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf(
		"📖 Booklet printing\n\n"+
			"Available for PDF and office documents with at least 2 pages.\n\n"+
			"The pages are reordered and printed two per sheet so that folding "+
			"the stack in half gives a ready booklet:\n"+
			"• up to 28 pages go out as one signature\n"+
			"• longer documents split into signatures of %d sheets\n\n"+
			"Print, fold each signature in half and staple along the fold.",
		b.cfg.Booklet.DefaultSheets))
}

func (b *Bot) cmdAddUser(msg *tgbotapi.Message) {
	if !b.acl.IsAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, adminOnlyText)
		return
	}

	id, ok := b.parseUserIDArg(msg, "/add_user")
	if !ok {
		return
	}

	added, err := b.acl.Add(id)
	if err != nil {
		logx.As().Error().Err(err).Int64("user", id).Msg("Cannot add user to the whitelist")
		b.reply(msg.Chat.ID, "❌ Could not save the user list")
		return
	}
	if !added {
		b.reply(msg.Chat.ID, fmt.Sprintf("⚠️ User %d is already on the list", id))
		return
	}

	logx.As().Info().Int64("admin", msg.From.ID).Int64("user", id).Msg("User added to the whitelist")
	b.reply(msg.Chat.ID, fmt.Sprintf("✅ User %d can use the bot now", id))
}

func (b *Bot) cmdRemoveUser(msg *tgbotapi.Message) {
	if !b.acl.IsAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, adminOnlyText)
		return
	}

	id, ok := b.parseUserIDArg(msg, "/remove_user")
	if !ok {
		return
	}

	removed, err := b.acl.Remove(id)
	if err != nil {
		if errorx.IsOfType(err, store.AdminRemovalError) {
			b.reply(msg.Chat.ID, "❌ The administrator cannot be removed")
			return
		}
		logx.As().Error().Err(err).Int64("user", id).Msg("Cannot remove user from the whitelist")
		b.reply(msg.Chat.ID, "❌ Could not save the user list")
		return
	}
	if !removed {
		b.reply(msg.Chat.ID, fmt.Sprintf("⚠️ User %d is not on the list", id))
		return
	}

	logx.As().Info().Int64("admin", msg.From.ID).Int64("user", id).Msg("User removed from the whitelist")
	b.reply(msg.Chat.ID, fmt.Sprintf("✅ User %d removed", id))
}

func (b *Bot) cmdListUsers(msg *tgbotapi.Message) {
	if !b.acl.IsAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, adminOnlyText)
		return
	}

	ids := b.acl.List()

	var sb strings.Builder
	sb.WriteString("📋 Allowed users:\n\n")
	for _, id := range ids {
		if id == b.acl.AdminID() {
			fmt.Fprintf(&sb, "👑 %d (admin)\n", id)
		} else {
			fmt.Fprintf(&sb, "👤 %d\n", id)
		}
	}
	fmt.Fprintf(&sb, "\nTotal: %d", len(ids))

	b.reply(msg.Chat.ID, sb.String())
}

// cmdCancel leaves the custom range prompt. Outside of that prompt it does
// nothing; the inline cancel buttons handle everything else.
func (b *Bot) cmdCancel(msg *tgbotapi.Message, sess *Session) {
	if !sess.AwaitingCustomRange {
		return
	}

	sess.AwaitingCustomRange = false
	b.replyWithKeyboard(msg.Chat.ID, "❌ Input cancelled. Choose the pages:", pageRangeKeyboard(sess.PageCount))
}

// parseUserIDArg extracts the numeric user id argument of an admin command,
// replying with usage hints when it is missing or malformed.
func (b *Bot) parseUserIDArg(msg *tgbotapi.Message, command string) (int64, bool) {
	arg := strings.TrimSpace(msg.CommandArguments())
	if arg == "" {
		b.reply(msg.Chat.ID, fmt.Sprintf("Usage: %s <user_id>", command))
		return 0, false
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		b.reply(msg.Chat.ID, fmt.Sprintf("❌ %q is not a Telegram user id", arg))
		return 0, false
	}

	return id, true
}
