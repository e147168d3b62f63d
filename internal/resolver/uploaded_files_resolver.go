package resolver

import (
	"reflect"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/form"
)

type UploadedFilesResolver struct{}

func (r *UploadedFilesResolver) Supports(parameterMeta ParameterMeta) bool {
	return parameterMeta.Type == reflect.TypeOf((*form.UploadedFiles)(nil)).Elem()
}

func (r *UploadedFilesResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	reqCtx, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	stack, err := reqCtx.FormStack()
	if err != nil {
		return nil, err
	}

	return form.UploadedFiles{Files: stack.AllFiles()}, nil
}
