// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"os/user"
	"strconv"
	"sync"
)

type mockUser struct {
	user *user.User
}

func (m *mockUser) Uid() string {
	return m.user.Uid
}

func (m *mockUser) Name() string {
	return m.user.Username
}

func (m *mockUser) DisplayName() string {
	return m.user.Name
}

func (m *mockUser) HomeDir() string {
	return m.user.HomeDir
}

func (m *mockUser) PrimaryGroup() Group {
	return nil
}

func (m *mockUser) Groups() []Group {
	return nil
}

func (m *mockUser) Validate() error {
	return nil
}

type mockGroup struct {
	group *user.Group
}

func (m *mockGroup) Gid() string {
	return m.group.Gid
}

func (m *mockGroup) Name() string {
	return m.group.Name
}

func (m *mockGroup) Users() []User {
	return nil
}

func (m *mockGroup) Validate() error {
	return nil
}

// mockProvider is a fixed in-memory registry seeded with a single user and group.
// Service accounts created through it show up in subsequent enumerations, which
// lets the manager level create-then-lookup flow run without touching the OS.
type mockProvider struct {
	mu            sync.Mutex
	createdUsers  []*user.User
	createdGroups []*user.Group
}

func (ms *mockProvider) EnumerateUsers(m Manager) ([]User, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	users := []User{
		&mockUser{
			user: &user.User{
				Uid:      "1000",
				Name:     "validUser",
				Username: "validUser",
			},
		},
	}

	for _, u := range ms.createdUsers {
		users = append(users, &mockUser{user: u})
	}

	return users, nil
}

func (ms *mockProvider) EnumerateGroups(m Manager) ([]Group, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	groups := []Group{
		&mockGroup{
			group: &user.Group{
				Gid:  "1000",
				Name: "validGroup",
			},
		},
	}

	for _, g := range ms.createdGroups {
		groups = append(groups, &mockGroup{group: g})
	}

	return groups, nil
}

func (ms *mockProvider) CreateServiceAccount(userName string, groupName string, uid int, gid int, homeDir string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.createdGroups = append(ms.createdGroups, &user.Group{
		Gid:  strconv.Itoa(gid),
		Name: groupName,
	})
	ms.createdUsers = append(ms.createdUsers, &user.User{
		Uid:      strconv.Itoa(uid),
		Name:     userName,
		Username: userName,
		HomeDir:  homeDir,
	})

	return nil
}
