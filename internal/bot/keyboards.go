// SPDX-License-Identifier: Apache-2.0

package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback payloads for the inline keyboards. Telegram echoes these back
// verbatim, so they double as the dispatch keys in handleCallback.
const (
	cbStartScan    = "start_scan"
	cbScanSingle   = "scan_single"
	cbScanMultiple = "scan_multiple"
	cbScanCancel   = "scan_cancel"

	cbCancel          = "cancel"
	cbPrintNormalOnly = "print_normal_only"
	cbPrintNormal     = "print_normal"
	cbPrintDuplex     = "print_duplex"
	cbPrintBooklet    = "print_booklet"
	cbPrintAll        = "print_all"
	cbPrintCustom     = "print_custom"
	cbBackToMenu      = "back_to_menu"
)

// printModeKeyboard offers the print modes available for the staged file.
// Duplex and booklet require a paged source, so photos get a reduced menu.
func printModeKeyboard(printable bool) tgbotapi.InlineKeyboardMarkup {
	if !printable {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🖨 Print", cbPrintNormalOnly),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", cbCancel),
			),
		)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 Single-sided", cbPrintNormal),
			tgbotapi.NewInlineKeyboardButtonData("📄 Double-sided", cbPrintDuplex),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 Booklet", cbPrintBooklet),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", cbCancel),
		),
	)
}

// pageRangeKeyboard follows the mode choice for multi-page documents. A
// single-page document collapses to one print button.
func pageRangeKeyboard(pageCount int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if pageCount > 1 {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🖨 All pages", cbPrintAll),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📝 Choose pages", cbPrintCustom),
			),
		)
	} else {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🖨 Print", cbPrintAll),
			),
		)
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", cbBackToMenu),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// scanKeyboard offers the two capture paths of the device.
func scanKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 Single page (flatbed)", cbScanSingle),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Multiple pages (feeder)", cbScanMultiple),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", cbScanCancel),
		),
	)
}

// startScanKeyboard is the single entry button attached to /start and shown
// again after a finished or cancelled scan.
func startScanKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📸 Scan", cbStartScan),
		),
	)
}
