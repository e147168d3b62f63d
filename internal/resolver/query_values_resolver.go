package resolver

import (
	"reflect"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/query"
)

type QueryValuesResolver struct{}

func (r *QueryValuesResolver) Supports(pm ParameterMeta) bool {
	return pm.Type == reflect.TypeOf((*query.Values)(nil)).Elem()
}

func (r *QueryValuesResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	return query.NewValues(ctx.Queries()), nil
}
