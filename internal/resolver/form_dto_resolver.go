package resolver

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/form"
)

/*
FormDTOResolver는 form 태그가 달린 struct 포인터 파라미터를 ParameterStack으로
채웁니다. 필드 타입별 매핑:

	string              필드 값
	int / int64         필드 값의 10진 변환
	[]string            배열형 필드의 값 목록
	form.UploadedFile   같은 이름의 파일 항목
	[]form.UploadedFile 배열형 파일 항목의 목록
*/
type FormDTOResolver struct{}

func (r *FormDTOResolver) Supports(pm ParameterMeta) bool {
	if pm.Type.Kind() != reflect.Pointer {
		return false
	}

	elem := pm.Type.Elem()
	if elem.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < elem.NumField(); i++ {
		if elem.Field(i).Tag.Get("form") != "" {
			return true
		}
	}

	return false
}

func (r *FormDTOResolver) Resolve(ctx core.ExecutionContext, parameterMeta ParameterMeta) (any, error) {
	reqCtx, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	stack, err := reqCtx.FormStack()
	if err != nil {
		return nil, err
	}

	elem := parameterMeta.Type.Elem()
	dtoPtr := reflect.New(elem)
	dto := dtoPtr.Elem()

	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		tag := field.Tag.Get("form")
		if tag == "" {
			continue
		}

		if err := setFormField(dto.Field(i), field, tag, stack); err != nil {
			return nil, fmt.Errorf(
				"FormDTO 바인딩 실패 (%s.%s): %w",
				elem.Name(),
				field.Name,
				err,
			)
		}
	}

	return dtoPtr.Interface(), nil
}

func setFormField(target reflect.Value, field reflect.StructField, tag string, stack *form.ParameterStack) error {
	switch field.Type {
	case reflect.TypeOf((*form.UploadedFile)(nil)).Elem():
		if f, ok := stack.File(tag); ok {
			target.Set(reflect.ValueOf(f))
		}
		return nil
	case reflect.TypeOf((*[]form.UploadedFile)(nil)).Elem():
		if files := stack.FileSlice(tag); files != nil {
			target.Set(reflect.ValueOf(files))
		}
		return nil
	case reflect.TypeOf((*[]string)(nil)).Elem():
		if values := stack.ParamSlice(tag); values != nil {
			target.Set(reflect.ValueOf(values))
		}
		return nil
	}

	raw := stack.Param(tag)
	if raw == "" {
		return nil
	}

	switch field.Type.Kind() {
	case reflect.String:
		target.SetString(raw)
		return nil
	case reflect.Int, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		target.SetInt(v)
		return nil
	default:
		return fmt.Errorf("지원하지 않는 form 필드 타입: %v", field.Type)
	}
}
