// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/automa-saga/logx"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joomcode/errorx"

	"github.com/printworks/printbot/internal/scanning"
	"github.com/printworks/printbot/internal/sentryx"
	"github.com/printworks/printbot/pkg/fsx"
)

// handleScanCallback runs the scan dialog: pick a source, capture, merge
// into a PDF and send the result back as a document.
func (b *Bot) handleScanCallback(ctx context.Context, query *tgbotapi.CallbackQuery, chatID int64, messageID int) {
	if !b.acl.IsAllowed(query.From.ID) {
		b.edit(chatID, messageID, deniedText)
		return
	}

	switch query.Data {
	case cbStartScan:
		b.editWithKeyboard(chatID, messageID, fmt.Sprintf(
			"📸 Scanning at %d dpi\n\n"+
				"• Single page: put the sheet on the flatbed glass\n"+
				"• Multiple pages: load the stack into the feeder\n\n"+
				"High resolution scans take a while.",
			b.cfg.Scanner.ResolutionDPI),
			scanKeyboard())

	case cbScanCancel:
		b.editWithKeyboard(chatID, messageID, "❌ Scanning cancelled", startScanKeyboard())

	case cbScanSingle:
		b.edit(chatID, messageID, fmt.Sprintf("📄 Scanning one page from the flatbed (%d dpi)...", b.cfg.Scanner.ResolutionDPI))
		page, err := b.scanner.ScanFlatbed(ctx)
		if err != nil {
			b.scanFailed(chatID, messageID, err)
			return
		}
		b.deliverScan(chatID, messageID, []string{page})

	case cbScanMultiple:
		b.edit(chatID, messageID, fmt.Sprintf("📚 Scanning from the document feeder (%d dpi)...", b.cfg.Scanner.ResolutionDPI))
		pages, err := b.scanner.ScanADF(ctx)
		if err != nil {
			b.scanFailed(chatID, messageID, err)
			return
		}
		b.deliverScan(chatID, messageID, pages)

	default:
		logx.As().Debug().Str("data", query.Data).Msg("Ignoring unknown scan callback")
	}
}

// deliverScan merges the captured pages into a PDF and sends it to the
// chat. The page files and the PDF are deleted afterwards either way.
func (b *Bot) deliverScan(chatID int64, messageID int, pages []string) {
	defer func() {
		for _, page := range pages {
			fsx.Remove(page)
		}
	}()

	b.edit(chatID, messageID, fmt.Sprintf("🔄 Merging %d page(s) into a PDF...", len(pages)))

	pdfPath, err := b.conv.ImagesToPDF(pages)
	if err != nil {
		logx.As().Error().Err(err).Int("pages", len(pages)).Msg("Cannot assemble the scanned PDF")
		sentryx.CaptureError(err, map[string]string{"stage": "scan"})
		b.editWithKeyboard(chatID, messageID, "❌ Could not assemble the PDF\n\nTry again:", scanKeyboard())
		return
	}
	defer fsx.Remove(pdfPath)

	b.edit(chatID, messageID, fmt.Sprintf("📤 Done, sending the PDF (%d page(s))...", len(pages)))

	if err := b.sendScanDocument(chatID, pdfPath, len(pages)); err != nil {
		logx.As().Error().Err(err).Msg("Cannot send the scanned PDF")
		b.editWithKeyboard(chatID, messageID, "❌ Could not send the PDF\n\nTry again:", scanKeyboard())
		return
	}

	b.editWithKeyboard(chatID, messageID, "📸 Ready for the next scan", scanKeyboard())
}

func (b *Bot) sendScanDocument(chatID int64, pdfPath string, pages int) error {
	f, err := os.Open(pdfPath)
	if err != nil {
		return errorx.Decorate(err, "cannot open the scanned PDF")
	}
	defer fsx.Close(f)

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileReader{
		Name:   "scan_" + time.Now().Format("20060102_150405") + ".pdf",
		Reader: f,
	})
	doc.Caption = fmt.Sprintf("Scan: %d page(s), %d dpi %s",
		pages, b.cfg.Scanner.ResolutionDPI, b.cfg.Scanner.Mode)

	_, err = b.api.Send(doc)
	return err
}

func (b *Bot) scanFailed(chatID int64, messageID int, err error) {
	logx.As().Error().Err(err).Msg("Scan failed")
	sentryx.CaptureError(err, map[string]string{"stage": "scan"})
	b.editWithKeyboard(chatID, messageID, "❌ Scan failed: "+scanErrorText(err)+"\n\nTry again:", scanKeyboard())
}

// scanErrorText turns scanner failures into something a user at the device
// can act on.
func scanErrorText(err error) string {
	switch {
	case errorx.HasTrait(err, errorx.Timeout()):
		return "the scanner did not respond in time, check that it is on and connected"
	case errorx.IsOfType(err, scanning.NoPagesError):
		return "the document feeder is empty, load the pages first"
	case strings.Contains(strings.ToLower(err.Error()), "device busy"):
		return "the scanner is busy, wait for the current job to finish"
	default:
		return clipError(err)
	}
}
