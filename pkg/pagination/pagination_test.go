package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name           string
		items          int
		total          int64
		page           int
		pageSize       int
		wantTotalPages int64
	}{
		{name: "middle page", items: 10, total: 25, page: 2, pageSize: 10, wantTotalPages: 3},
		{name: "last short page", items: 5, total: 25, page: 3, pageSize: 10, wantTotalPages: 3},
		{name: "exact division", items: 10, total: 20, page: 1, pageSize: 10, wantTotalPages: 2},
		{name: "empty result", items: 0, total: 0, page: 1, pageSize: 10, wantTotalPages: 0},
		{name: "single item", items: 1, total: 1, page: 1, pageSize: 100, wantTotalPages: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.items)
			p := NewPage(items, tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.wantTotalPages, p.TotalPages)
			assert.Len(t, p.Items, tt.items)
		})
	}
}

func TestNewPageNilItemsBecomesEmptySlice(t *testing.T) {
	p := NewPage[int](nil, 0, 1, 10)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "in range", page: 2, pageSize: 50, wantPage: 2, wantPageSize: 50},
		{name: "zero page", page: 0, pageSize: 10, wantPage: 1, wantPageSize: 10},
		{name: "negative page", page: -5, pageSize: 10, wantPage: 1, wantPageSize: 10},
		{name: "zero page size", page: 1, pageSize: 0, wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "oversized page size", page: 1, pageSize: 500, wantPage: 1, wantPageSize: MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := Clamp(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 40, Offset(3, 20))
}

func TestMapKeepsMetadata(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, 25, 2, 3)
	mapped := Map(p, func(i int) string {
		return string(rune('a' + i))
	})
	assert.Equal(t, []string{"b", "c", "d"}, mapped.Items)
	assert.Equal(t, p.Total, mapped.Total)
	assert.Equal(t, p.Page, mapped.Page)
	assert.Equal(t, p.PageSize, mapped.PageSize)
	assert.Equal(t, p.TotalPages, mapped.TotalPages)
}
