package handler

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/httpx"
)

type BinaryReturnHandler struct{}

func (h *BinaryReturnHandler) Supports(returnType reflect.Type) bool {
	if returnType.Kind() == reflect.Pointer {
		returnType = returnType.Elem()
	}

	return returnType == reflect.TypeOf((*httpx.Binary)(nil)).Elem()
}

func (h *BinaryReturnHandler) Handle(value any, ctx core.ExecutionContext) error {
	if ptr, ok := value.(*httpx.Binary); ok {
		value = *ptr
	}

	binary, ok := value.(httpx.Binary)
	if !ok {
		return fmt.Errorf("BinaryReturnHandler: 전달된 값이 httpx.Binary 타입이 아닙니다")
	}

	rw, err := responseWriter(ctx)
	if err != nil {
		return err
	}

	status := applyOptions(rw, binary.Options, http.StatusOK)

	if binary.ContentType != "" {
		rw.SetHeader("Content-Type", binary.ContentType)
	}

	return rw.WriteBytes(status, binary.Data)
}
