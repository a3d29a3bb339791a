// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

/*
Package follow implements the social graph between accounts.

The graph is a set of directed edges keyed by (follower, target). Edges are
unique, self-edges are rejected, and banned accounts can neither be followed
nor appear in user discovery.
*/
package follow

import "time"

// # Domain Entities

// Edge represents one directed follow relationship.
type Edge struct {
	FollowerID string    `json:"followerId"`
	TargetID   string    `json:"targetId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ListedUser is one row of the following/followers lists.
//
// DisplayName falls back to the account email when the profile has no
// usable display name.
type ListedUser struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// DiscoveredUser is one row of the user search results.
type DiscoveredUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	IsFollowing bool   `json:"isFollowing"`
}

// # Constraints

// SearchResultCap bounds user discovery result sets.
const SearchResultCap = 100
