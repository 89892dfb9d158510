package domain

import "slices"

// UserProfiles is the fixed set of named profiles allowed to keep a viewed set.
type UserProfiles []string

func (p UserProfiles) Contains(userID string) bool {
	return userID != "" && slices.Contains(p, userID)
}
