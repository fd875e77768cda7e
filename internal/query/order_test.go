package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderPreservesTokenOrder(t *testing.T) {
	tokens := []string{"price:desc", "name:asc", "created_at:desc"}

	order, accepted := BuildOrder(tokens, productWhitelist())

	require.Len(t, order, 3)
	assert.Equal(t, SortField{Column: "price", Direction: DirectionDesc}, order[0])
	assert.Equal(t, SortField{Column: "name", Direction: DirectionAsc}, order[1])
	assert.Equal(t, SortField{Column: "created_at", Direction: DirectionDesc}, order[2])
	assert.Equal(t, tokens, accepted)
}

func TestBuildOrderDropsInvalidTokens(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "unknown column",
			tokens: []string{"password:asc", "name:asc"},
			want:   []string{"name:asc"},
		},
		{
			name:   "bad direction",
			tokens: []string{"name:up", "price:desc"},
			want:   []string{"price:desc"},
		},
		{
			name:   "missing direction",
			tokens: []string{"name", "price:asc"},
			want:   []string{"price:asc"},
		},
		{
			name:   "all invalid",
			tokens: []string{"password:asc", "name:sideways"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, accepted := BuildOrder(tt.tokens, productWhitelist())

			assert.Equal(t, tt.want, accepted)
			assert.Len(t, order, len(tt.want))
		})
	}
}

func TestBuildOrderCaseInsensitiveDirection(t *testing.T) {
	order, accepted := BuildOrder([]string{"name:ASC", "price:Desc"}, productWhitelist())

	require.Len(t, order, 2)
	assert.Equal(t, DirectionAsc, order[0].Direction)
	assert.Equal(t, DirectionDesc, order[1].Direction)
	// Accepted tokens echo the original casing.
	assert.Equal(t, []string{"name:ASC", "price:Desc"}, accepted)
}
