package router

import (
	"errors"
	"reflect"

	"github.com/sehyn/tendon/core"
)

// NewHandlerMeta는 (*Controller).Method 형태의 메서드 표현식을 실행 메타로 바꿉니다.
// 첫 번째 파라미터가 수신자이므로 그 타입이 컨트롤러 타입이 됩니다.
func NewHandlerMeta(handler any, interceptors ...core.Interceptor) (core.HandlerMeta, error) {
	if handler == nil {
		return core.HandlerMeta{}, errors.New("handler가 nil입니다")
	}

	val := reflect.ValueOf(handler)
	typ := val.Type()

	if typ.Kind() != reflect.Func {
		return core.HandlerMeta{}, errors.New("handler는 메서드 표현식이어야 합니다")
	}
	if typ.NumIn() < 1 {
		return core.HandlerMeta{}, errors.New("handler는 수신자 파라미터를 가져야 합니다")
	}

	receiver := typ.In(0)
	if receiver.Kind() != reflect.Pointer || receiver.Elem().Kind() != reflect.Struct {
		return core.HandlerMeta{}, errors.New("수신자는 struct 포인터여야 합니다")
	}

	return core.HandlerMeta{
		ControllerType: receiver,
		Method: reflect.Method{
			Type: typ,
			Func: val,
		},
		Interceptors: interceptors,
	}, nil
}
