package resolver

import (
	"fmt"
	"reflect"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/path"
)

type PathStringResolver struct{}

func (r *PathStringResolver) Supports(parameterMeta ParameterMeta) bool {
	return parameterMeta.Type == reflect.TypeOf((*path.String)(nil)).Elem()
}

func (r *PathStringResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	raw, ok := ctx.Params()[parameterMeta.PathKey]
	if !ok {
		return nil, fmt.Errorf("Path param을 찾을 수 없습니다. %s", parameterMeta.PathKey)
	}
	return path.String{Value: raw}, nil
}
