package dto

import (
	"net/http"
	"strconv"
	"strings"

	"oberoy/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Offset  int    `json:"offset"   validate:"omitempty,gte=0"`
	Limit   int    `json:"limit"    validate:"omitempty,gte=1,lte=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// Offset is floored at 0 (default 0); limit is clamped to [1, 100] (default 10).
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req)
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	q.Offset = constant.DefaultValueOffset
	q.Limit = constant.DefaultValueLimit

	if offset := queryParams.Get(constant.RequestParamOffset); offset != "" {
		if offsetInt, err := strconv.Atoi(offset); err == nil && offsetInt > 0 {
			q.Offset = offsetInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil {
			q.Limit = min(max(limitInt, 1), constant.MaxValueLimit)
		}
	}

	if sortDir := queryParams.Get("sort_dir"); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}
}
