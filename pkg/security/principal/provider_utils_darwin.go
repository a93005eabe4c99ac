// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"howett.net/plist"
)

// Darwin has no flat passwd and group files worth reading; accounts live in
// Directory Services and are queried through dscl. The -plist output mode
// gives a stable format to unmarshal.
const (
	directoryServicesCmd = "/usr/bin/dscl"
	dsclEntityTypeUser   = "users"
	dsclEntityTypeGroup  = "groups"
)

type dsclUserInfo struct {
	UniqueID       []string `plist:"dsAttrTypeStandard:UniqueID"`
	PrimaryGroupID []string `plist:"dsAttrTypeStandard:PrimaryGroupID"`
	RealName       []string `plist:"dsAttrTypeStandard:RealName"`
	HomeDir        []string `plist:"dsAttrTypeStandard:NFSHomeDirectory"`
	Shell          []string `plist:"dsAttrTypeStandard:UserShell"`
}

type dsclGroupInfo struct {
	UniqueID []string `plist:"dsAttrTypeStandard:PrimaryGroupID"`
	Members  []string `plist:"dsAttrTypeStandard:GroupMembership"`
}

// first returns the first element of a dscl attribute list. Records can omit
// attributes entirely, in which case the list is empty.
func first(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

func dsclEnumerateUsers() ([]*unixUser, error) {
	userNames, err := dsclEnumerateEntities(dsclEntityTypeUser)
	if err != nil {
		return nil, err
	}

	users := make([]*unixUser, len(userNames))
	for i, userName := range userNames {
		info, err := dsclGetUserInfo(userName)
		if err != nil {
			return nil, err
		}

		uid, err := strconv.Atoi(first(info.UniqueID))
		if err != nil {
			return nil, fmt.Errorf("user %q has no usable UniqueID: %w", userName, err)
		}

		gid, err := strconv.Atoi(first(info.PrimaryGroupID))
		if err != nil {
			return nil, fmt.Errorf("user %q has no usable PrimaryGroupID: %w", userName, err)
		}

		users[i] = &unixUser{
			name:        userName,
			displayName: first(info.RealName),
			uid:         uid,
			gid:         gid,
			homeDir:     first(info.HomeDir),
			shell:       first(info.Shell),
		}
	}

	return users, nil
}

func dsclEnumerateGroups() ([]*unixGroup, error) {
	groupNames, err := dsclEnumerateEntities(dsclEntityTypeGroup)
	if err != nil {
		return nil, err
	}

	groups := make([]*unixGroup, len(groupNames))
	for i, groupName := range groupNames {
		info, err := dsclGetGroupInfo(groupName)
		if err != nil {
			return nil, err
		}

		gid, err := strconv.Atoi(first(info.UniqueID))
		if err != nil {
			return nil, fmt.Errorf("group %q has no usable PrimaryGroupID: %w", groupName, err)
		}

		members := info.Members
		if members == nil {
			members = make([]string, 0)
		}

		groups[i] = &unixGroup{
			name:    groupName,
			gid:     gid,
			members: members,
		}
	}

	return groups, nil
}

func dsclEnumerateEntities(entityType string) ([]string, error) {
	output, err := exec.Command(directoryServicesCmd, ".", "list", "/"+entityType).Output()
	if err != nil {
		return nil, err
	}

	list := make([]string, 0)
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "error: DS") {
			return nil, fmt.Errorf("dscl error: %s", line)
		}

		list = append(list, line)
	}

	return list, nil
}

func dsclGetUserInfo(name string) (*dsclUserInfo, error) {
	output, err := dsclGetEntityInfo(dsclEntityTypeUser, name)
	if err != nil {
		return nil, err
	}

	var info dsclUserInfo
	if _, err = plist.Unmarshal(output, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

func dsclGetGroupInfo(name string) (*dsclGroupInfo, error) {
	output, err := dsclGetEntityInfo(dsclEntityTypeGroup, name)
	if err != nil {
		return nil, err
	}

	var info dsclGroupInfo
	if _, err = plist.Unmarshal(output, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

func dsclGetEntityInfo(entityType string, name string) ([]byte, error) {
	return exec.Command(directoryServicesCmd, "-plist", ".", "read", fmt.Sprintf("/%s/%s", entityType, name)).Output()
}
