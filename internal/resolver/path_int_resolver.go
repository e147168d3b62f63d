package resolver

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/path"
)

type PathIntResolver struct{}

func (r *PathIntResolver) Supports(parameterMeta ParameterMeta) bool {
	return parameterMeta.Type == reflect.TypeOf((*path.Int)(nil)).Elem()
}

func (r *PathIntResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	raw, ok := ctx.Params()[parameterMeta.PathKey]
	if !ok {
		return nil, fmt.Errorf("path param을 찾을 수 없습니다. %s", parameterMeta.PathKey)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf(
			"유효하지 않은 Path param %s: %v",
			parameterMeta.PathKey,
			err,
		)
	}

	return path.Int{Value: value}, nil
}
