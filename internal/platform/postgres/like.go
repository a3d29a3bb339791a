// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package postgres

import "strings"

// likeEscaper neutralizes the LIKE pattern metacharacters. The escape
// character itself must be doubled first.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike escapes LIKE/ILIKE metacharacters in a user-supplied search
// term so it matches literally inside a '%' || term || '%' pattern.
//
// Postgres interprets backslash as the default LIKE escape character, so
// no ESCAPE clause is needed at the call sites.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
