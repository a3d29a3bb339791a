// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

/*
Package admin implements the administrative user management surface.

It lists accounts and toggles the ban flag. Ban toggles invalidate the
ban-status cache so the new verdict is enforced on the account's very next
authenticated request, not at token expiry.
*/
package admin

// # Domain Entities

// UserRow is the admin view of an account.
type UserRow struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"displayName"`
	IsBanned    bool    `json:"isBanned"`
	IsAdmin     bool    `json:"isAdmin"`
}
