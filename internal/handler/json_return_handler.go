package handler

import (
	"net/http"
	"reflect"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/httpx"
)

type JSONReturnHandler struct{}

func (h *JSONReturnHandler) Supports(returnType reflect.Type) bool {
	// string 본문의 Response는 StringReturnHandler가 담당
	if isResponseType(returnType) {
		return responseBodyType(returnType).Kind() != reflect.String
	}
	if returnType == reflect.TypeOf((*httpx.Binary)(nil)).Elem() {
		return false
	}

	switch returnType.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

func (h *JSONReturnHandler) Handle(value any, ctx core.ExecutionContext) error {
	rw, err := responseWriter(ctx)
	if err != nil {
		return err
	}

	body, opts, _ := unwrapResponse(value)
	status := applyOptions(rw, opts, http.StatusOK)
	return rw.WriteJSON(status, body)
}
