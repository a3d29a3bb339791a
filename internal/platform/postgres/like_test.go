// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phamtuan/vitalog/internal/platform/postgres"
)

/*
TestEscapeLike verifies that LIKE metacharacters in a search term are
neutralized so the term matches literally inside a '%' || term || '%'
pattern instead of widening it.
*/
func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain_term_unchanged", input: "oatmeal", expected: "oatmeal"},
		{name: "percent_escaped", input: "100% whey", expected: `100\% whey`},
		{name: "underscore_escaped", input: "push_up", expected: `push\_up`},
		{name: "backslash_doubled", input: `a\b`, expected: `a\\b`},
		{name: "backslash_before_percent", input: `\%`, expected: `\\\%`},
		{name: "empty_stays_empty", input: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, postgres.EscapeLike(test.input))
		})
	}
}
