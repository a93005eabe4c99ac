// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/automa-saga/logx"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joomcode/errorx"

	"github.com/printworks/printbot/internal/conversion"
	"github.com/printworks/printbot/internal/sentryx"
	"github.com/printworks/printbot/pkg/fsx"
)

// handleIncomingFile receives a document or photo, converts it to a
// grayscale PDF and either prints it right away (single page) or opens the
// print mode dialog.
func (b *Bot) handleIncomingFile(ctx context.Context, msg *tgbotapi.Message, sess *Session) {
	if !b.acl.IsAllowed(msg.From.ID) {
		b.reply(msg.Chat.ID, deniedContactText)
		return
	}

	fileID, fileName, fileSize := incomingFileRef(msg)
	if fileID == "" {
		return
	}

	ext := conversion.NormalizedExt(fileName)
	if fileSize > b.cfg.MaxFileSizeBytes() || !conversion.IsSupported(ext) {
		b.reply(msg.Chat.ID, fmt.Sprintf(
			"❌ I cannot print this file.\nAccepted formats: %s\nSize limit: %d MB",
			strings.Join(conversion.SupportedExtensions(), ", "), b.cfg.Jobs.MaxFileSizeMB))
		return
	}

	progressID := b.reply(msg.Chat.ID, "📥 Downloading and preparing the file...")

	local, err := b.downloadFile(ctx, fileID, ext)
	if err != nil {
		logx.As().Error().Err(err).Str("file", fileName).Msg("Download failed")
		sentryx.CaptureError(err, map[string]string{"stage": "download"})
		b.edit(msg.Chat.ID, progressID, "❌ Could not download the file from Telegram. Try again.")
		return
	}
	defer fsx.Remove(local)

	pdfPath, err := b.prepare(ctx, local, ext)
	if err != nil {
		logx.As().Error().Err(err).Str("file", fileName).Msg("Conversion failed")
		sentryx.CaptureError(err, map[string]string{"stage": "convert"})
		b.edit(msg.Chat.ID, progressID, "❌ Processing failed: "+clipError(err)+"\nTry another file.")
		return
	}

	pageCount, err := conversion.PageCount(pdfPath)
	if err != nil {
		fsx.Remove(pdfPath)
		logx.As().Error().Err(err).Str("file", fileName).Msg("Cannot read the converted PDF")
		b.edit(msg.Chat.ID, progressID, "❌ The converted PDF is unreadable. Try another file.")
		return
	}

	// a newly staged file replaces whatever was pending in this chat
	if sess.Active() && sess.PDFPath != pdfPath {
		fsx.Remove(sess.PDFPath)
	}
	sess.Clear()
	sess.PDFPath = pdfPath
	sess.FileName = fileName
	sess.PageCount = pageCount
	sess.IsPrintable = conversion.IsPDF(ext) || conversion.NeedsSoffice(ext)

	logx.As().Info().
		Str("file", fileName).
		Int("pages", pageCount).
		Int64("user", msg.From.ID).
		Msg("File staged for printing")

	if pageCount == 1 {
		b.edit(msg.Chat.ID, progressID, "🖨 One page, sending it to the printer...")
		b.executePrint(ctx, sess, "", func(text string) {
			b.edit(msg.Chat.ID, progressID, text)
		})
		return
	}

	b.editWithKeyboard(msg.Chat.ID, progressID,
		fmt.Sprintf("✅ File ready: %s\nPages: %d\nChoose the print mode:", fileName, pageCount),
		printModeKeyboard(sess.IsPrintable))
}

// incomingFileRef picks the payload out of a message: the attached document,
// or the largest rendition of a photo.
func incomingFileRef(msg *tgbotapi.Message) (fileID string, fileName string, fileSize int64) {
	switch {
	case msg.Document != nil:
		return msg.Document.FileID, msg.Document.FileName, int64(msg.Document.FileSize)
	case len(msg.Photo) > 0:
		photo := msg.Photo[len(msg.Photo)-1]
		return photo.FileID, "photo_" + photo.FileUniqueID + ".jpg", int64(photo.FileSize)
	}
	return "", "", 0
}

// prepare converts the downloaded file into the grayscale PDF that goes to
// the printer. Office documents and plain text pass through LibreOffice
// first, images are placed on an A4 page.
func (b *Bot) prepare(ctx context.Context, local string, ext string) (string, error) {
	switch {
	case conversion.IsPDF(ext):
		return b.conv.GrayscaleOrOriginal(ctx, local)

	case conversion.NeedsSoffice(ext):
		pdfPath, err := b.conv.OfficeToPDF(ctx, local)
		if err != nil {
			return "", err
		}
		defer fsx.Remove(pdfPath)
		return b.conv.GrayscaleOrOriginal(ctx, pdfPath)

	case conversion.IsImage(ext):
		pdfPath, err := b.conv.ImageToPDF(local)
		if err != nil {
			return "", err
		}
		defer fsx.Remove(pdfPath)
		return b.conv.GrayscaleOrOriginal(ctx, pdfPath)
	}

	return "", conversion.UnsupportedFormatError.New("no conversion route for %q files", ext)
}

// downloadFile fetches a Telegram file into the scratch directory and
// returns the local path. The caller owns the file.
func (b *Bot) downloadFile(ctx context.Context, fileID string, ext string) (string, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return "", DownloadError.Wrap(err, "cannot resolve the file on the Telegram servers")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", DownloadError.Wrap(err, "cannot build the download request")
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return "", DownloadError.Wrap(err, "download failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", DownloadError.New("download failed with status %s", resp.Status)
	}

	out, err := os.CreateTemp(b.tempDir, "temp_*"+ext)
	if err != nil {
		return "", DownloadError.Wrap(err, "cannot create the download target in %s", b.tempDir)
	}

	// the size from the message metadata is client-supplied; cap the body too
	written, err := io.Copy(out, io.LimitReader(resp.Body, b.cfg.MaxFileSizeBytes()+1))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fsx.Remove(out.Name())
		return "", DownloadError.Wrap(err, "download interrupted")
	}
	if written > b.cfg.MaxFileSizeBytes() {
		fsx.Remove(out.Name())
		return "", DownloadError.New("file exceeds the %d MB limit", b.cfg.Jobs.MaxFileSizeMB)
	}

	return out.Name(), nil
}

// clipError renders an error for a chat message: the bare message without
// the error type prefix, cut to a readable length.
func clipError(err error) string {
	msg := err.Error()
	if typed := errorx.Cast(err); typed != nil {
		msg = typed.Message()
	}
	if len(msg) > 120 {
		return msg[:120] + "..."
	}
	return msg
}
