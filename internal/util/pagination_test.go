package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		page, size          int
		wantFrom, wantLimit int
	}{
		{1, 10, 0, 10},
		{2, 10, 10, 10},
		{0, 10, 0, 10},
		{-3, 5, 0, 5},
		{1, 0, 0, DefaultPageSize},
		{1, 500, 0, DefaultPageSize},
		{3, 25, 50, 25},
	}

	for _, tc := range cases {
		from, limit := Calculate(tc.page, tc.size)
		require.Equal(t, tc.wantFrom, from, "page=%d size=%d", tc.page, tc.size)
		require.Equal(t, tc.wantLimit, limit, "page=%d size=%d", tc.page, tc.size)
	}
}
