package shared_test

import (
	"reflect"
	"testing"

	"oberoy/shared"
	"oberoy/shared/dto"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "booking:get",
			parts:    nil,
			expected: "booking:get",
		},
		{
			name:     "prefix with one part",
			prefix:   "booking:get",
			parts:    []string{"ABC123"},
			expected: "booking:get:ABC123",
		},
		{
			name:     "prefix with multiple parts",
			prefix:   "room_type:get",
			parts:    []string{"1", "images"},
			expected: "room_type:get:1:images",
		},
		{
			name:     "empty parts slice",
			prefix:   "addon:gets",
			parts:    []string{},
			expected: "addon:gets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	paramsA := dto.QueryParams{Offset: 0, Limit: 10, SortBy: "id", SortDir: dto.SortDirAsc}
	paramsB := dto.QueryParams{Offset: 10, Limit: 10, SortBy: "id", SortDir: dto.SortDirAsc}

	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
		},
	}

	keyA := shared.BuildCacheKeyWithQuery("addon:gets", paramsA, filter)
	keyB := shared.BuildCacheKeyWithQuery("addon:gets", paramsB, filter)

	if keyA == keyB {
		t.Error("expected distinct keys for distinct offsets")
	}

	// The same params and filter must always derive the same key.
	if keyA != shared.BuildCacheKeyWithQuery("addon:gets", paramsA, filter) {
		t.Error("expected deterministic cache key")
	}

	keyNoFilter := shared.BuildCacheKeyWithQuery("addon:gets", paramsA, dto.FilterGroup{})
	if keyA == keyNoFilter {
		t.Error("expected filtered and unfiltered keys to differ")
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       any
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "filter by numeric id",
			id:      int64(123),
			fieldID: "room_type_id",
			table:   "room_type_images",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "room_type_id",
						Value:    int64(123),
						Operator: dto.FilterOperatorEq,
						Table:    "room_type_images",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      "ABC123",
			fieldID: "pnr",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "pnr",
						Value:    "ABC123",
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}
