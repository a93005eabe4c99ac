// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/joomcode/errorx"
)

// unixUser is the unix implementation of the User interface. Group links are
// resolved during Manager.Refresh.
type unixUser struct {
	manager      Manager
	name         string
	displayName  string
	uid          int
	gid          int
	homeDir      string
	shell        string
	primaryGroup Group
	groups       []Group
}

func (u *unixUser) Uid() string {
	return strconv.Itoa(u.uid)
}

func (u *unixUser) Name() string {
	return u.name
}

func (u *unixUser) DisplayName() string {
	return u.displayName
}

func (u *unixUser) HomeDir() string {
	return u.homeDir
}

func (u *unixUser) Shell() string {
	return u.shell
}

func (u *unixUser) PrimaryGroup() Group {
	return u.primaryGroup
}

func (u *unixUser) Groups() []Group {
	return u.groups
}

// Validate checks the account fields and fills in platform defaults for a
// missing home directory or shell.
func (u *unixUser) Validate() error {
	if strings.TrimSpace(u.name) == "" {
		return errorx.IllegalArgument.New("user name cannot be empty")
	}

	if u.uid == 0 && strings.TrimSpace(u.name) != "root" {
		return errorx.IllegalArgument.New("uid cannot be zero for non-root user %q", u.name)
	}

	if u.gid == 0 && strings.TrimSpace(u.name) != "root" {
		return errorx.IllegalArgument.New("gid cannot be zero for non-root user %q", u.name)
	}

	if strings.TrimSpace(u.homeDir) == "" {
		u.homeDir = fmt.Sprintf("/home/%s", u.name)
	}

	if strings.TrimSpace(u.shell) == "" {
		if runtime.GOOS == "darwin" {
			u.shell = "/bin/zsh"
		} else {
			u.shell = "/bin/bash"
		}
	}

	return nil
}

// unixGroup is the unix implementation of the Group interface. The resolved
// users list is populated during Manager.Refresh from the raw member names.
type unixGroup struct {
	manager Manager
	name    string
	gid     int
	members []string
	users   []User
}

func (g *unixGroup) Gid() string {
	return strconv.Itoa(g.gid)
}

func (g *unixGroup) Name() string {
	return g.name
}

func (g *unixGroup) Users() []User {
	return g.users
}

func (g *unixGroup) Validate() error {
	if strings.TrimSpace(g.name) == "" {
		return errorx.IllegalArgument.New("group name cannot be empty")
	}

	if g.gid == 0 && strings.TrimSpace(g.name) != "root" {
		return errorx.IllegalArgument.New("gid cannot be zero for non-root group %q", g.name)
	}

	return nil
}
