// SPDX-License-Identifier: Apache-2.0

package principal

// processGroupMembership links the freshly loaded user and group caches:
// group member lists become resolved User references, users collect their
// supplementary groups, and each user's primary group is resolved by gid.
func (m *defaultManager) processGroupMembership() {
	userCache := m.userCache.Load()
	groupCache := m.groupCache.Load()

	groupsByGid := make(map[int]Group, len(*groupCache))
	for _, group := range *groupCache {
		ug, ok := group.(*unixGroup)
		if !ok {
			continue
		}

		groupsByGid[ug.gid] = ug
		for _, member := range ug.members {
			user, ok := (*userCache)[member]
			if !ok {
				continue
			}

			if uu, ok := user.(*unixUser); ok {
				ug.users = append(ug.users, uu)
				uu.groups = append(uu.groups, ug)
			}
		}
	}

	for _, user := range *userCache {
		uu, ok := user.(*unixUser)
		if !ok {
			continue
		}

		if primary, ok := groupsByGid[uu.gid]; ok {
			uu.primaryGroup = primary
		}
	}
}
