package core

import "reflect"

// HandlerMeta는 라우팅이 결정한 실행 대상입니다.
type HandlerMeta struct {
	ControllerType reflect.Type
	Method         reflect.Method
	Interceptors   []Interceptor
}
