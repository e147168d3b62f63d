package resolver

import (
	"reflect"
	"strconv"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/query"
)

type PaginationResolver struct{}

func (r *PaginationResolver) Supports(parameterMeta ParameterMeta) bool {
	return parameterMeta.Type == reflect.TypeOf((*query.Pagination)(nil)).Elem()
}

func (r *PaginationResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	page := parseInt(firstQuery(ctx, "page"), 1)
	size := parseInt(firstQuery(ctx, "size"), 20)

	return query.Pagination{
		Page: page,
		Size: size,
	}, nil
}

func firstQuery(ctx core.ExecutionContext, name string) string {
	if vs, ok := ctx.Queries()[name]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func parseInt(value string, defaultValue int) int {
	result, err := strconv.Atoi(value)
	if err != nil || value == "" {
		return defaultValue
	}
	return result
}
