// SPDX-License-Identifier: Apache-2.0

//go:build !darwin && !windows

package principal

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type lineReader[E unixUser | unixGroup] func(index int, line string) (*E, error)

// readEntityFile parses a colon-delimited account database such as
// /etc/passwd or /etc/group, skipping blank lines and comments. Line numbers
// reported in errors are 1-based and count skipped lines.
func readEntityFile[E unixUser | unixGroup](file string, fn lineReader[E]) ([]*E, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = fh.Close()
	}()

	entities := make([]*E, 0)
	index := 0

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		index++

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ent, err := fn(index, line)
		if err != nil {
			return nil, err
		}

		if ent != nil {
			entities = append(entities, ent)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entities, nil
}

// parseUnixUser parses one passwd entry:
// username:password:uid:gid:gecos:home:shell
func parseUnixUser(index int, line string) (*unixUser, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 7 {
		return nil, fmt.Errorf("invalid user entry at line %d, not enough fields", index)
	}

	username := strings.TrimSpace(parts[0])
	if username == "" {
		return nil, fmt.Errorf("invalid user entry at line %d, empty username field", index)
	}

	uid, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid user entry at line %d, invalid uid field", index)
	}

	gid, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("invalid user entry at line %d, invalid gid field", index)
	}

	return &unixUser{
		name:        username,
		uid:         uid,
		gid:         gid,
		displayName: displayNameFromGecos(parts[4]),
		homeDir:     strings.TrimSpace(parts[5]),
		shell:       strings.TrimSpace(parts[6]),
	}, nil
}

// parseUnixGroup parses one group entry:
// groupname:password:gid:members
//
// The members field only lists supplementary membership; users whose primary
// group this is appear in passwd instead.
func parseUnixGroup(index int, line string) (*unixGroup, error) {
	parts := strings.Split(line, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return nil, fmt.Errorf("invalid group entry at line %d, not enough fields", index)
	}

	groupname := strings.TrimSpace(parts[0])
	if groupname == "" {
		return nil, fmt.Errorf("invalid group entry at line %d, empty groupname field", index)
	}

	gid, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid group entry at line %d, invalid gid field", index)
	}

	members := make([]string, 0)
	if len(parts) == 4 {
		members = parseMembers(parts[3])
	}

	return &unixGroup{
		name:    groupname,
		gid:     gid,
		members: members,
	}, nil
}

// displayNameFromGecos extracts the full-name field from a gecos value,
// which may carry comma separated office and phone fields after it.
func displayNameFromGecos(gecos string) string {
	name, _, _ := strings.Cut(gecos, ",")
	return strings.TrimSpace(name)
}

func parseMembers(members string) []string {
	list := make([]string, 0)
	for _, m := range strings.Split(members, ",") {
		if m = strings.TrimSpace(m); m != "" {
			list = append(list, m)
		}
	}

	return list
}
