package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"oberoy/shared/cache"
	"oberoy/shared/constant"
	"oberoy/shared/dto"
)

// BuildCacheKey joins a prefix and its parts into a colon-separated cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from the query params and filter
// so that distinct pages and filters cache separately.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	encodedArgs, err := json.Marshal(args)
	if err != nil {
		encodedArgs = []byte(constant.Empty)
	}

	return BuildCacheKey(
		prefix,
		fmt.Sprintf("%d", params.Offset),
		fmt.Sprintf("%d", params.Limit),
		params.SortBy,
		params.SortDir,
		where,
		string(encodedArgs),
	)
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, store cache.RedisCache, prefix string) {
	if err := store.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
