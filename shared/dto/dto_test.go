package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"oberoy/shared/constant"
	"oberoy/shared/dto"
	"oberoy/shared/model"
	"oberoy/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.TimestampFormat)
	expectedUpdatedAt := timezone.Format(updatedAt, constant.TimestampFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.UpdatedAt != expectedUpdatedAt {
		t.Errorf("expected UpdatedAt to be %s, got %s", expectedUpdatedAt, metadata.UpdatedAt)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		expected    dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"offset":   "20",
				"limit":    "25",
				"sort_dir": "ASC",
			},
			expected: dto.QueryParams{
				Offset:  20,
				Limit:   25,
				SortDir: "ASC",
			},
		},
		{
			name:        "with no parameters uses defaults",
			queryParams: map[string]string{},
			expected: dto.QueryParams{
				Offset: constant.DefaultValueOffset,
				Limit:  constant.DefaultValueLimit,
			},
		},
		{
			name: "with invalid offset parameter",
			queryParams: map[string]string{
				"offset": "invalid",
			},
			expected: dto.QueryParams{
				Offset: constant.DefaultValueOffset,
				Limit:  constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative offset parameter",
			queryParams: map[string]string{
				"offset": "-5",
			},
			expected: dto.QueryParams{
				Offset: constant.DefaultValueOffset,
				Limit:  constant.DefaultValueLimit,
			},
		},
		{
			name: "with limit above the maximum",
			queryParams: map[string]string{
				"limit": "500",
			},
			expected: dto.QueryParams{
				Offset: constant.DefaultValueOffset,
				Limit:  constant.MaxValueLimit,
			},
		},
		{
			name: "with limit below the minimum",
			queryParams: map[string]string{
				"limit": "0",
			},
			expected: dto.QueryParams{
				Offset: constant.DefaultValueOffset,
				Limit:  1,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			expected: dto.QueryParams{
				Offset:  constant.DefaultValueOffset,
				Limit:   constant.DefaultValueLimit,
				SortDir: "DESC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			expected: dto.QueryParams{
				Offset: constant.DefaultValueOffset,
				Limit:  constant.DefaultValueLimit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(request)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}
