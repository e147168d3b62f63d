package resolver

import (
	"net/http"
	"reflect"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/header"
)

type HeaderResolver struct{}

func (hr *HeaderResolver) Supports(pm ParameterMeta) bool {
	return pm.Type == reflect.TypeOf((*header.Values)(nil)).Elem()
}

func (hr *HeaderResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	reqCtx, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}
	return header.NewValues(http.Header(reqCtx.Headers())), nil
}
