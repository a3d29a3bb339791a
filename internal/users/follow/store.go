// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package follow

import "context"

// # Follow Graph Data Access

// Repository defines the data access contract for follow edges and discovery.
type Repository interface {

	/*
		CreateEdge inserts a new follow edge.

		The composite primary key (followerid, targetid) is the authoritative
		duplicate guard; concurrent follows surface as a unique violation.

		Parameters:
		  - context: context.Context
		  - edge: *Edge

		Returns:
		  - error: Persistence failures (including unique violations)
	*/
	CreateEdge(context context.Context, edge *Edge) error

	/*
		DeleteEdge removes the follow edge if it exists.

		Parameters:
		  - context: context.Context
		  - followerID: string
		  - targetID: string

		Returns:
		  - bool: Whether an edge was actually deleted
		  - error: Execution failures
	*/
	DeleteEdge(context context.Context, followerID, targetID string) (bool, error)

	/*
		EdgeExists reports whether the follower already follows the target.

		Parameters:
		  - context: context.Context
		  - followerID: string
		  - targetID: string

		Returns:
		  - bool: Edge presence
		  - error: Execution failures
	*/
	EdgeExists(context context.Context, followerID, targetID string) (bool, error)

	/*
		ListFollowing returns the accounts the user follows, ordered by edge
		creation ascending.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []ListedUser: Display rows with email fallback names
		  - error: Retrieval failures
	*/
	ListFollowing(context context.Context, userID string) ([]ListedUser, error)

	/*
		ListFollowers returns the accounts following the user, ordered by edge
		creation ascending.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []ListedUser: Display rows with email fallback names
		  - error: Retrieval failures
	*/
	ListFollowers(context context.Context, userID string) ([]ListedUser, error)

	/*
		SearchUsers finds candidate accounts for the caller to follow.

		Excludes the caller and banned accounts; matches case-insensitively on
		display name or email; ordered by effective display name; capped at
		SearchResultCap rows.

		Parameters:
		  - context: context.Context
		  - callerID: string
		  - search: string (blank lists everyone)

		Returns:
		  - []DiscoveredUser: Rows with the caller's isFollowing flag resolved
		  - error: Retrieval failures
	*/
	SearchUsers(context context.Context, callerID, search string) ([]DiscoveredUser, error)
}

// TargetDirectory resolves facts about a prospective follow target.
//
// Implemented by the auth package's account repository; declared here so the
// follow domain owns its own dependency surface.
type TargetDirectory interface {

	/*
		IsBanned returns the target account's ban flag.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - bool: Ban flag
		  - error: apperr.NotFound when the account does not exist
	*/
	IsBanned(context context.Context, userID string) (bool, error)
}
