package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	// 25 results, page 2 of 20: five items remain, nothing after.
	p := NewPagination(2, 20, 25)
	require.Equal(t, int64(2), p.TotalPages)
	require.False(t, p.HasMore)

	// 45 results, page 2 of 20: a third page follows.
	p = NewPagination(2, 20, 45)
	require.Equal(t, int64(3), p.TotalPages)
	require.True(t, p.HasMore)

	p = NewPagination(1, 20, 0)
	require.Equal(t, int64(0), p.TotalPages)
	require.False(t, p.HasMore)

	p = NewPagination(1, 20, 20)
	require.Equal(t, int64(1), p.TotalPages)
	require.False(t, p.HasMore)
}
