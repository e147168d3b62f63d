package resolver

import (
	"context"
	"reflect"

	"github.com/sehyn/tendon/core"
)

type StdContextResolver struct{}

func (r *StdContextResolver) Supports(parameterMeta ParameterMeta) bool {
	return parameterMeta.Type == reflect.TypeOf((*context.Context)(nil)).Elem()
}

func (r *StdContextResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	return ctx.Context(), nil
}
