package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/httpx"
)

type ReturnValueHandler interface {
	Supports(returnType reflect.Type) bool
	Handle(value any, ctx core.ExecutionContext) error
}

func responseWriter(ctx core.ExecutionContext) (core.ResponseWriter, error) {
	rwAny, ok := ctx.Get("tendon.response_writer")
	if !ok {
		return nil, fmt.Errorf("ExecutionContext 안에서 ResponseWriter를 찾을 수 없습니다.")
	}

	rw, ok := rwAny.(core.ResponseWriter)
	if !ok {
		return nil, fmt.Errorf("ResponseWriter 타입이 올바르지 않습니다.")
	}
	return rw, nil
}

var httpxPkgPath = reflect.TypeOf((*httpx.ResponseOptions)(nil)).Elem().PkgPath()

// isResponseType은 httpx.Response[T]의 모든 인스턴스화를 판별합니다.
func isResponseType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == httpxPkgPath &&
		strings.HasPrefix(t.Name(), "Response[")
}

func responseBodyType(t reflect.Type) reflect.Type {
	field, _ := t.FieldByName("Body")
	return field.Type
}

// unwrapResponse는 Response[T] 값에서 본문과 옵션을 꺼냅니다.
func unwrapResponse(value any) (any, httpx.ResponseOptions, bool) {
	v := reflect.ValueOf(value)
	if !isResponseType(v.Type()) {
		return value, httpx.ResponseOptions{}, false
	}

	body := v.FieldByName("Body").Interface()
	opts := v.FieldByName("Options").Interface().(httpx.ResponseOptions)
	return body, opts, true
}

// applyOptions는 응답 메타(헤더, 쿠키)를 기록하고 최종 상태 코드를 돌려줍니다.
func applyOptions(rw core.ResponseWriter, opts httpx.ResponseOptions, defaultStatus int) int {
	for k, v := range opts.Headers {
		rw.SetHeader(k, v)
	}
	for _, c := range opts.Cookies {
		rw.AddHeader("Set-Cookie", serializeCookie(c))
	}

	if opts.Status != 0 {
		return opts.Status
	}
	return defaultStatus
}
