package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhere(t *testing.T) {
	tests := []struct {
		name     string
		preds    []Predicate
		offset   int
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "empty",
			preds:   nil,
			wantSQL: "",
		},
		{
			name:     "single",
			preds:    []Predicate{{Expr: "t.rating >= ?", Args: []any{4.5}}},
			wantSQL:  "WHERE t.rating >= $1",
			wantArgs: []any{4.5},
		},
		{
			name: "conjunctive with offset",
			preds: []Predicate{
				{Expr: "user_id = ?", Args: []any{"u1"}},
				{Expr: "(due_date IS NULL OR due_date BETWEEN ? AND ?)", Args: []any{"a", "b"}},
			},
			offset:   2,
			wantSQL:  "WHERE user_id = $3 AND (due_date IS NULL OR due_date BETWEEN $4 AND $5)",
			wantArgs: []any{"u1", "a", "b"},
		},
		{
			name:     "user input stays in args",
			preds:    []Predicate{{Expr: "? = ANY(t.subjects)", Args: []any{"x'; DROP TABLE tutors; --"}}},
			wantSQL:  "WHERE $1 = ANY(t.subjects)",
			wantArgs: []any{"x'; DROP TABLE tutors; --"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := Where(tt.preds, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestWherePlaceholderMismatch(t *testing.T) {
	_, _, err := Where([]Predicate{{Expr: "a = ? AND b = ?", Args: []any{1}}}, 0)
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	sql, args, err := Set([]Assignment{
		{Column: "title", Value: "New"},
		{Column: "est_mins", Value: 45},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, "SET title = $1, est_mins = $2", sql)
	assert.Equal(t, []any{"New", 45}, args)

	_, _, err = Set(nil, 0)
	assert.Error(t, err)
}
