// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package uuid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phamtuan/vitalog/pkg/uuid"
)

/*
TestNew verifies that generated IDs are valid and time-ordered.
*/
func TestNew(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = uuid.New()
		assert.True(t, uuid.IsValid(ids[i]))
	}

	// UUIDv7 sorts lexicographically in generation order
	assert.True(t, sort.StringsAreSorted(ids))

	// No duplicates across the batch
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
}

/*
TestIsValid verifies parser-based validation.
*/
func TestIsValid(t *testing.T) {
	assert.True(t, uuid.IsValid("0190a8b2-3c4d-7e5f-8a9b-0c1d2e3f4a5b"))
	assert.False(t, uuid.IsValid("not-a-uuid"))
	assert.False(t, uuid.IsValid(""))
}
