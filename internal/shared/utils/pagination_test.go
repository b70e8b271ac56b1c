package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusdesk/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults applied", page: 0, pageSize: 0, wantPage: constants.DefaultPage, wantPageSize: constants.DefaultPageSize},
		{name: "negative values", page: -1, pageSize: -10, wantPage: constants.DefaultPage, wantPageSize: constants.DefaultPageSize},
		{name: "valid values kept", page: 3, pageSize: 50, wantPage: 3, wantPageSize: 50},
		{name: "page size capped", page: 1, pageSize: 10000, wantPage: 1, wantPageSize: constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{name: "zero total", total: 0, pageSize: 20, want: 1},
		{name: "exact division", total: 40, pageSize: 20, want: 2},
		{name: "partial last page", total: 41, pageSize: 20, want: 3},
		{name: "zero page size", total: 100, pageSize: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}
