// SPDX-License-Identifier: Apache-2.0

// Package store persists the bot's small runtime state: the allowed-users
// whitelist and the temp-file housekeeping that keeps the scratch directory
// from filling up between restarts.
package store

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/automa-saga/logx"
	"github.com/printworks/printbot/pkg/fsx"
)

// aclFileMaxSize bounds the whitelist file read. The file holds numeric ids
// only, so anything near this size is corrupt.
const aclFileMaxSize = 1 << 20

type aclDocument struct {
	AllowedUsers []int64 `json:"allowed_users"`
}

// ACL is the user whitelist. The admin is always admitted, whitelist
// members are admitted, everyone else is denied. Mutations persist
// immediately so a crash never loses a grant.
//
// All methods are safe for concurrent use; the bot serves one goroutine per
// update.
type ACL struct {
	mu      sync.RWMutex
	files   fsx.Manager
	path    string
	adminID int64
	users   map[int64]struct{}
}

// NewACL creates a whitelist bound to the given file. Call Load before use.
func NewACL(files fsx.Manager, path string, adminID int64) *ACL {
	return &ACL{
		files:   files,
		path:    path,
		adminID: adminID,
		users:   map[int64]struct{}{adminID: {}},
	}
}

// Load reads the whitelist from disk. A missing or unreadable file resets the
// whitelist to just the admin; the bot must stay usable for its operator even
// when the state file is gone.
func (a *ACL) Load() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, exists, err := a.files.PathExists(a.path)
	if err != nil || !exists {
		a.users = map[int64]struct{}{a.adminID: {}}
		return err
	}

	payload, err := a.files.ReadFile(a.path, aclFileMaxSize)
	if err != nil {
		logx.As().Warn().Err(err).Str("path", a.path).Msg("Failed to read allowed users file, resetting to admin only")
		a.users = map[int64]struct{}{a.adminID: {}}
		return nil
	}

	var doc aclDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		logx.As().Warn().Err(err).Str("path", a.path).Msg("Allowed users file is corrupt, resetting to admin only")
		a.users = map[int64]struct{}{a.adminID: {}}
		return nil
	}

	users := make(map[int64]struct{}, len(doc.AllowedUsers)+1)
	for _, id := range doc.AllowedUsers {
		users[id] = struct{}{}
	}
	a.users = users
	return nil
}

// Save writes the whitelist to disk.
func (a *ACL) Save() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.saveLocked()
}

func (a *ACL) saveLocked() error {
	doc := aclDocument{AllowedUsers: a.sortedLocked()}
	payload, err := json.Marshal(doc)
	if err != nil {
		return SaveError.Wrap(err, "failed to encode allowed users")
	}

	if err := a.files.WriteFile(a.path, payload, 0o644); err != nil {
		return SaveError.Wrap(err, "failed to write allowed users file %s", a.path)
	}
	return nil
}

// IsAllowed reports whether the user may talk to the bot. The admin is
// admitted even when the state file on disk has been edited out from under us.
func (a *ACL) IsAllowed(id int64) bool {
	if id == a.adminID {
		return true
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.users[id]
	return ok
}

// IsAdmin reports whether the user is the configured administrator.
func (a *ACL) IsAdmin(id int64) bool {
	return id == a.adminID
}

// AdminID returns the configured administrator id.
func (a *ACL) AdminID() int64 {
	return a.adminID
}

// Add grants a user access and persists the whitelist. It returns false when
// the user was already present, in which case nothing is written.
func (a *ACL) Add(id int64) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.users[id]; ok {
		return false, nil
	}
	a.users[id] = struct{}{}
	if err := a.saveLocked(); err != nil {
		delete(a.users, id)
		return false, err
	}
	return true, nil
}

// Remove revokes a user's access and persists the whitelist. Removing the
// admin is refused. It returns false when the user was not present.
func (a *ACL) Remove(id int64) (bool, error) {
	if id == a.adminID {
		return false, AdminRemovalError.New("the administrator cannot be removed from the whitelist")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.users[id]; !ok {
		return false, nil
	}
	delete(a.users, id)
	if err := a.saveLocked(); err != nil {
		a.users[id] = struct{}{}
		return false, err
	}
	return true, nil
}

// List returns the whitelist in ascending order.
func (a *ACL) List() []int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sortedLocked()
}

func (a *ACL) sortedLocked() []int64 {
	ids := make([]int64, 0, len(a.users))
	for id := range a.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
