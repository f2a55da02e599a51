package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   int
		want       int
	}{
		{"empty", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"zero page size", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalItems, tt.pageSize))
		})
	}
}

func TestNewPage(t *testing.T) {
	t.Run("nil items become empty slice", func(t *testing.T) {
		p := NewPage[string](nil, 1, 10, 0)
		assert.NotNil(t, p.Items)
		assert.Empty(t, p.Items)
		assert.Equal(t, 0, p.TotalPages)
	})

	t.Run("carries totals", func(t *testing.T) {
		p := NewPage([]int{1, 2, 3}, 2, 3, 7)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 3, p.PageSize)
		assert.Equal(t, int64(7), p.TotalItems)
		assert.Equal(t, 3, p.TotalPages)
	})
}

func TestNormalizePaging(t *testing.T) {
	page, size := NormalizePaging(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = NormalizePaging(-3, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = NormalizePaging(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, size)
}
