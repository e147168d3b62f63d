package resolver

import (
	"fmt"
	"reflect"

	"github.com/sehyn/tendon/core"
)

type DTOResolver struct{}

func (r *DTOResolver) Supports(parameterMeta ParameterMeta) bool {
	elem := parameterMeta.Type
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return false
	}

	// query/form 태그가 하나라도 있으면 전용 Resolver가 담당
	for i := 0; i < elem.NumField(); i++ {
		tag := elem.Field(i).Tag
		if tag.Get("query") != "" || tag.Get("form") != "" {
			return false
		}
	}

	return true
}

func (r *DTOResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	reqCtx, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	elem := parameterMeta.Type
	isPointer := elem.Kind() == reflect.Pointer
	if isPointer {
		elem = elem.Elem()
	}

	// 빈 DTO 생성
	valuePtr := reflect.New(elem)

	if err := reqCtx.Bind(valuePtr.Interface()); err != nil {
		return nil, fmt.Errorf(
			"DTO 바인딩 실패 (%s): %w",
			elem.Name(),
			err,
		)
	}

	if isPointer {
		return valuePtr.Interface(), nil
	}
	return valuePtr.Elem().Interface(), nil
}
