package handler

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/sehyn/tendon/core"
)

type StringReturnHandler struct{}

func (h *StringReturnHandler) Supports(returnType reflect.Type) bool {
	if isResponseType(returnType) {
		return responseBodyType(returnType).Kind() == reflect.String
	}
	return returnType.Kind() == reflect.String
}

func (h *StringReturnHandler) Handle(value any, ctx core.ExecutionContext) error {
	rw, err := responseWriter(ctx)
	if err != nil {
		return err
	}

	body, opts, _ := unwrapResponse(value)

	str, ok := body.(string)
	if !ok {
		return fmt.Errorf("StringReturnHandler는 string 타입만 처리할 수 있습니다: %T", body)
	}

	status := applyOptions(rw, opts, http.StatusOK)
	return rw.WriteString(status, str)
}
