package tendon

import (
	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/internal/bootstrap"
	"github.com/sehyn/tendon/internal/event/consumer"
	"github.com/sehyn/tendon/internal/router"
	"github.com/sehyn/tendon/internal/ws"
	"github.com/sehyn/tendon/pkg/boot"
)

type App interface {
	// 생성자 선언
	Constructor(constructors ...any)
	// 라우트 선언. 인터셉터는 해당 라우트에만 적용됩니다.
	Route(method string, path string, handler any, interceptors ...core.Interceptor)
	// WebSocket 핸들러 등록용 레지스트리
	WebSocket() *ws.Registry
	// 이벤트 토픽 구독 선언
	Consume(topic string, handler any) error
	// Transport는 리슨 직전에 전송 핸들러를 넘겨받는 탭을 등록합니다.
	Transport(tap func(any))
	// 실행
	Run(opts boot.Options) error
}

type app struct {
	constructors []any
	routes       []router.RouteSpec
	wsRegistry   *ws.Registry
	consumers    *consumer.Registry
	transportTap func(any)
}

func New() App {
	return &app{
		wsRegistry: ws.NewRegistry(),
		consumers:  consumer.NewRegistry(),
	}
}

func (a *app) Constructor(constructors ...any) {
	a.constructors = append(a.constructors, constructors...)
}

func (a *app) Route(method string, path string, handler any, interceptors ...core.Interceptor) {
	a.routes = append(a.routes, router.RouteSpec{
		Method:       method,
		Path:         path,
		Handler:      handler,
		Interceptors: interceptors,
	})
}

func (a *app) WebSocket() *ws.Registry {
	return a.wsRegistry
}

func (a *app) Consume(topic string, handler any) error {
	meta, err := router.NewHandlerMeta(handler)
	if err != nil {
		return err
	}
	a.consumers.Register(topic, meta)
	return nil
}

func (a *app) Transport(tap func(any)) {
	a.transportTap = tap
}

func (a *app) Run(opts boot.Options) error {
	internalConfig := bootstrap.Config{
		Constructors: a.constructors,
		Routes:       a.routes,
		WebSocket:    a.wsRegistry,
		Consumers:    a.consumers,
		Transport:    a.transportTap,
		Options:      opts,
	}

	return bootstrap.Run(internalConfig)
}
