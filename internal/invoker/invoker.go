package invoker

import (
	"reflect"

	"github.com/sehyn/tendon/internal/container"
)

type Invoker struct {
	container *container.Container
}

func NewInvoker(container *container.Container) *Invoker {
	return &Invoker{
		container: container,
	}
}

// Invoke는 컨트롤러 인스턴스를 Resolve한 뒤 메서드를 호출합니다.
func (i *Invoker) Invoke(controllerType reflect.Type, method reflect.Method, args []any) ([]any, error) {
	controller, err := i.container.Resolve(controllerType)
	if err != nil {
		return nil, err
	}

	values := make([]reflect.Value, len(args)+1)
	values[0] = reflect.ValueOf(controller)
	for idx, arg := range args {
		values[idx+1] = reflect.ValueOf(arg)
	}

	results := method.Func.Call(values)

	out := make([]any, len(results))
	for i, result := range results {
		out[i] = result.Interface()
	}

	return out, nil
}
