//go:build !darwin && !windows

package principal

import (
	"os/exec"
	"strconv"
)

const (
	unixPasswordFile = "/etc/passwd"
	unixGroupFile    = "/etc/group"

	groupAddCmd = "groupadd"
	userAddCmd  = "useradd"
	noLoginCmd  = "/usr/sbin/nologin"
)

type unixProvider struct{}

func NewProvider() Provider {
	return &unixProvider{}
}

func (p *unixProvider) EnumerateUsers(m Manager) ([]User, error) {
	entities, err := readEntityFile(unixPasswordFile, parseUnixUser)
	if err != nil {
		return nil, err
	}

	users := make([]User, len(entities))
	for i, e := range entities {
		e.manager = m
		users[i] = e
	}

	return users, nil
}

func (p *unixProvider) EnumerateGroups(m Manager) ([]Group, error) {
	entities, err := readEntityFile(unixGroupFile, parseUnixGroup)
	if err != nil {
		return nil, err
	}

	groups := make([]Group, len(entities))
	for i, e := range entities {
		e.manager = m
		groups[i] = e
	}

	return groups, nil
}

// CreateServiceAccount shells out to groupadd and useradd. The caller is
// expected to hold root; both commands fail cleanly without it.
func (p *unixProvider) CreateServiceAccount(userName string, groupName string, uid int, gid int, homeDir string) error {
	groupArgs := []string{"--system"}
	if gid > 0 {
		groupArgs = append(groupArgs, "--gid", strconv.Itoa(gid))
	}
	groupArgs = append(groupArgs, groupName)

	if out, err := exec.Command(groupAddCmd, groupArgs...).CombinedOutput(); err != nil {
		return NewGroupCreateError(err, groupName, string(out))
	}

	userArgs := []string{
		"--system",
		"--no-create-home",
		"--home-dir", homeDir,
		"--gid", groupName,
		"--shell", noLoginCmd,
	}
	if uid > 0 {
		userArgs = append(userArgs, "--uid", strconv.Itoa(uid))
	}
	userArgs = append(userArgs, userName)

	if out, err := exec.Command(userAddCmd, userArgs...).CombinedOutput(); err != nil {
		return NewUserCreateError(err, userName, string(out))
	}

	return nil
}
