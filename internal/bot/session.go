// SPDX-License-Identifier: Apache-2.0

package bot

import (
	"sync"

	"github.com/printworks/printbot/internal/printing"
)

// Session is the per-chat conversation state: the staged PDF a user is about
// to print and where they are in the mode/range dialog. The mutex also
// serializes update handling per chat, so a long scan in one chat never
// blocks another chat and two taps in the same chat cannot race.
type Session struct {
	mu sync.Mutex

	PDFPath   string
	FileName  string
	PageCount int

	// IsPrintable reports that the staged file came from a PDF or an office
	// document, which unlocks duplex and booklet modes. Plain photos only
	// ever print single-sided.
	IsPrintable bool

	PrintMode           printing.Mode
	AwaitingCustomRange bool
}

// Active reports whether a staged file is waiting for a print decision.
func (s *Session) Active() bool {
	return s.PDFPath != ""
}

// Clear drops the staged file reference and resets the dialog state. The
// caller is responsible for removing the file itself.
func (s *Session) Clear() {
	s.PDFPath = ""
	s.FileName = ""
	s.PageCount = 0
	s.IsPrintable = false
	s.PrintMode = printing.ModeNormal
	s.AwaitingCustomRange = false
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: map[int64]*Session{}}
}

// Get returns the session for a chat, creating it on first contact.
func (s *sessionStore) Get(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &Session{}
		s.sessions[chatID] = sess
	}
	return sess
}
