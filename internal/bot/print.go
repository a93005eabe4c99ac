// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/automa-saga/logx"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/printworks/printbot/internal/printing"
	"github.com/printworks/printbot/internal/sentryx"
	"github.com/printworks/printbot/pkg/fsx"
)

// customRangePattern accepts what the range prompt advertises: numbers and
// spans separated by commas, nothing else. The printing layer validates
// again before building the lp invocation.
var customRangePattern = regexp.MustCompile(`^(\d+(-\d+)?)(,\d+(-\d+)?)*$`)

// handleCallback reacts to the inline keyboard buttons. The callback is
// acknowledged first so the client stops its spinner even when the action
// takes a while.
func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery, sess *Session) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		logx.As().Debug().Err(err).Msg("Cannot acknowledge the callback")
	}

	if query.Message == nil || query.Message.Chat == nil {
		return
	}
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	if query.Data == cbStartScan || strings.HasPrefix(query.Data, "scan_") {
		b.handleScanCallback(ctx, query, chatID, messageID)
		return
	}

	if !sess.Active() {
		b.edit(chatID, messageID, "⌛ Session expired or no file is pending. Send the file again.")
		return
	}

	switch query.Data {
	case cbCancel:
		fsx.Remove(sess.PDFPath)
		sess.Clear()
		b.edit(chatID, messageID, "❌ Cancelled")

	case cbPrintNormalOnly:
		sess.PrintMode = printing.ModeNormal
		b.executePrint(ctx, sess, "", func(text string) {
			b.edit(chatID, messageID, text)
		})

	case cbPrintNormal, cbPrintDuplex:
		sess.PrintMode = printing.ModeNormal
		if query.Data == cbPrintDuplex {
			sess.PrintMode = printing.ModeDuplex
		}

		if sess.PageCount <= 1 {
			b.executePrint(ctx, sess, "", func(text string) {
				b.edit(chatID, messageID, text)
			})
			return
		}

		b.editWithKeyboard(chatID, messageID,
			fmt.Sprintf("📄 %s printing\nFile: %s\nPages: %d\nChoose the page range:",
				modeLabel(sess.PrintMode), sess.FileName, sess.PageCount),
			pageRangeKeyboard(sess.PageCount))

	case cbPrintBooklet:
		b.handleBookletCallback(ctx, chatID, messageID, sess)

	case cbPrintAll:
		b.executePrint(ctx, sess, "", func(text string) {
			b.edit(chatID, messageID, text)
		})

	case cbPrintCustom:
		sess.AwaitingCustomRange = true
		b.edit(chatID, messageID, "📝 Send the page range, for example: 1-3,5,7-9\nOr /cancel to go back")

	case cbBackToMenu:
		sess.AwaitingCustomRange = false
		b.editWithKeyboard(chatID, messageID,
			fmt.Sprintf("✅ File: %s\nPages: %d\nChoose the print mode:", sess.FileName, sess.PageCount),
			printModeKeyboard(sess.IsPrintable))

	default:
		logx.As().Debug().Str("data", query.Data).Msg("Ignoring unknown callback")
	}
}

// handleBookletCallback builds the booklet signatures and prints them all.
// The staged file is consumed whatever the outcome.
func (b *Bot) handleBookletCallback(ctx context.Context, chatID int64, messageID int, sess *Session) {
	sess.PrintMode = printing.ModeBooklet

	if sess.PageCount < 2 {
		b.editWithKeyboard(chatID, messageID,
			fmt.Sprintf("❌ A booklet needs at least 2 pages\nFile: %s\nPages: %d\nChoose another mode:",
				sess.FileName, sess.PageCount),
			printModeKeyboard(sess.IsPrintable))
		return
	}

	layout := printing.CalculateSignatureLayout(sess.PageCount, b.cfg.Booklet.DefaultSheets)
	b.edit(chatID, messageID, fmt.Sprintf(
		"📖 Booklet printing\nFile: %s\nPages: %d\nSignatures: %d of %d sheets\nSheets to print: %d\n\n🖨 Building and printing...",
		sess.FileName, sess.PageCount, layout.Signatures, layout.SheetsPerSignature, layout.TotalSheetsWithBlanks))

	booklets, err := b.booklets.BuildBooklets(sess.PDFPath, b.cfg.Booklet.DefaultSheets)
	if err != nil {
		fsx.Remove(sess.PDFPath)
		sess.Clear()
		logx.As().Error().Err(err).Msg("Booklet build failed")
		sentryx.CaptureError(err, map[string]string{"stage": "booklet"})
		b.edit(chatID, messageID, "❌ Booklet build failed: "+clipError(err))
		return
	}

	opts := printing.Options{Mode: printing.ModeBooklet, Copies: b.cfg.Jobs.DefaultCopies}
	var printErr error
	for _, booklet := range booklets {
		if printErr = b.printer.Print(ctx, booklet, opts); printErr != nil {
			break
		}
	}

	for _, booklet := range booklets {
		fsx.Remove(booklet)
	}
	fsx.Remove(sess.PDFPath)
	sess.Clear()

	if printErr != nil {
		logx.As().Error().Err(printErr).Msg("Booklet print failed")
		sentryx.CaptureError(printErr, map[string]string{"stage": "booklet"})
		b.edit(chatID, messageID, "❌ Booklet print failed: "+clipError(printErr))
		return
	}

	b.edit(chatID, messageID, fmt.Sprintf(
		"✅ Booklet sent to the printer\nSignatures: %d\nSheets: %d\nFold each signature in half and staple.",
		layout.Signatures, layout.TotalSheetsWithBlanks))
}

// executePrint submits the staged file with the mode picked earlier and an
// optional page range, then consumes the staged file and reports through
// reply. The session is always cleared, success or not.
func (b *Bot) executePrint(ctx context.Context, sess *Session, pageRange string, reply func(string)) {
	if !sess.Active() {
		reply("⌛ Session expired or no file is pending. Send the file again.")
		return
	}

	mode := sess.PrintMode
	reply(fmt.Sprintf("🖨 Printing %s...", strings.ToLower(modeLabel(mode))))

	err := b.printer.Print(ctx, sess.PDFPath, printing.Options{
		Mode:      mode,
		PageRange: pageRange,
		Copies:    b.cfg.Jobs.DefaultCopies,
	})

	fileName := sess.FileName
	fsx.Remove(sess.PDFPath)
	sess.Clear()

	if err != nil {
		logx.As().Error().Err(err).Str("file", fileName).Msg("Print failed")
		sentryx.CaptureError(err, map[string]string{"stage": "print"})
		reply("❌ Print failed: " + clipError(err))
		return
	}

	scope := " (all pages)"
	if pageRange != "" {
		scope = fmt.Sprintf(" (pages %s)", pageRange)
	}
	reply("✅ " + fileName + " sent to the printer" + scope)
}

// handleTextInput only listens while the custom range prompt is open;
// everything else typed at the bot is ignored.
func (b *Bot) handleTextInput(ctx context.Context, msg *tgbotapi.Message, sess *Session) {
	if !sess.AwaitingCustomRange {
		return
	}

	rangeSpec := strings.TrimSpace(msg.Text)
	if !customRangePattern.MatchString(rangeSpec) {
		b.reply(msg.Chat.ID, "❌ That does not look like a page range. Example: 1-3,5,7-9\nOr /cancel to go back")
		return
	}

	sess.AwaitingCustomRange = false
	b.executePrint(ctx, sess, rangeSpec, func(text string) {
		b.reply(msg.Chat.ID, text)
	})
}

func modeLabel(mode printing.Mode) string {
	switch mode {
	case printing.ModeDuplex:
		return "Double-sided"
	case printing.ModeBooklet:
		return "Booklet"
	default:
		return "Single-sided"
	}
}
