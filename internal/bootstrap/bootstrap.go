package bootstrap

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	httpEngine "github.com/sehyn/tendon/internal/adapter/echo"
	"github.com/sehyn/tendon/internal/container"
	"github.com/sehyn/tendon/internal/event/consumer"
	"github.com/sehyn/tendon/internal/event/hook"
	kafkaInfra "github.com/sehyn/tendon/internal/event/infra/kafka"
	rabbitInfra "github.com/sehyn/tendon/internal/event/infra/rabbitmq"
	"github.com/sehyn/tendon/internal/handler"
	"github.com/sehyn/tendon/internal/invoker"
	"github.com/sehyn/tendon/internal/multipart"
	"github.com/sehyn/tendon/internal/pipeline"
	"github.com/sehyn/tendon/internal/resolver"
	tendonRouter "github.com/sehyn/tendon/internal/router"
	sessionInterceptor "github.com/sehyn/tendon/internal/session"
	"github.com/sehyn/tendon/internal/ws"
	wsResolver "github.com/sehyn/tendon/internal/ws/resolver"
	"github.com/sehyn/tendon/pkg/boot"
)

const defaultShutdownTimeout = 10 * time.Second

type Config struct {
	Constructors []any
	Routes       []tendonRouter.RouteSpec
	WebSocket    *ws.Registry
	Consumers    *consumer.Registry

	// Transport는 리슨 직전에 http.Handler를 넘겨받는 탭입니다.
	// 통합 테스트가 실제 포트 없이 핸들러를 구동할 때 사용합니다.
	Transport func(any)

	Options boot.Options
}

// eventWriter는 브로커 발행기가 공통으로 충족하는 계약입니다.
type eventWriter interface {
	hook.EventWriter
	Close() error
}

func Run(config Config) error {
	// 컨테이너 생성
	container := container.New()

	// 생성자 등록
	for _, constructor := range config.Constructors {
		if err := container.RegisterConstructor(constructor); err != nil {
			return err
		}
	}

	formOpts := formOptions(config.Options.Form)
	inv := invoker.NewInvoker(container)

	// HTTP Router 생성 및 라우트 등록
	httpRouter := tendonRouter.NewRouter()
	for _, route := range config.Routes {
		meta, err := tendonRouter.NewHandlerMeta(route.Handler, route.Interceptors...)
		if err != nil {
			return err
		}
		httpRouter.Register(route.Method, route.Path, meta)
	}

	httpPipeline := pipeline.NewPipeline(httpRouter, inv)

	httpPipeline.AddArgumentResolver(
		&resolver.ContextResolver{},
		&resolver.StdContextResolver{},
		&resolver.SessionResolver{},
		&resolver.FormStackResolver{},
		&resolver.UploadedFilesResolver{},
		&resolver.FormDTOResolver{},
		&resolver.QueryDTOResolver{},
		&resolver.QueryValuesResolver{},
		&resolver.HeaderResolver{},
		&resolver.PaginationResolver{},
		&resolver.PathIntResolver{},
		&resolver.PathStringResolver{},
		&resolver.PathBooleanResolver{},
		&resolver.DTOResolver{},
	)

	httpPipeline.AddReturnValueHandler(
		&handler.StringReturnHandler{},
		&handler.BinaryReturnHandler{},
		&handler.JSONReturnHandler{},
		&handler.ErrorReturnHandler{},
	)

	if config.Options.Session != nil {
		httpPipeline.AddInterceptor(sessionInterceptor.NewInterceptor(*config.Options.Session))
	}

	// 이벤트 발행기. Kafka가 설정되어 있으면 Kafka, 아니면 RabbitMQ.
	writer := buildEventWriter(config.Options)
	publishHook := hook.NewEventPublishHook(writer)
	httpPipeline.AddPostExecutionHook(publishHook)

	// Echo Adapter
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if config.Options.HTTP != nil && config.Options.HTTP.ShowBanner {
		e.HideBanner = false
		e.HidePort = false
	}

	adapter := httpEngine.NewAdapter(httpPipeline, formOpts)
	adapter.Mount(e)

	// WebSocket Runtime
	var wsRuntime *ws.Runtime
	if config.WebSocket != nil && len(config.WebSocket.Registrations()) > 0 {
		wsRouter := tendonRouter.NewRouter()
		for _, reg := range config.WebSocket.Registrations() {
			wsRouter.Register("WS", reg.Path, reg.Meta)
		}

		wsPipeline := pipeline.NewPipeline(wsRouter, inv)
		wsPipeline.AddArgumentResolver(
			&resolver.ContextResolver{},
			&resolver.StdContextResolver{},
			&wsResolver.ConnectionIDResolver{},
			&wsResolver.PayloadResolver{},
			&wsResolver.DTOResolver{},
		)
		wsPipeline.AddPostExecutionHook(publishHook)

		wsRuntime = ws.NewRuntime(config.WebSocket, wsPipeline)
		for _, reg := range config.WebSocket.Registrations() {
			reg := reg
			e.Any(reg.Path, func(c echo.Context) error {
				wsRuntime.HandleConn(c.Response(), c.Request(), reg)
				return nil
			})
		}
	}

	// Consumer Runtime
	consumerRuntime, err := buildConsumerRuntime(config, inv, publishHook)
	if err != nil {
		return err
	}
	if consumerRuntime != nil {
		consumerRuntime.Start(context.Background())
	}

	// 통합 테스트용 핸들러 탭
	if config.Transport != nil {
		config.Transport(http.Handler(e))
	}

	shutdown := func() {
		if consumerRuntime != nil {
			consumerRuntime.Stop()
		}
		if wsRuntime != nil {
			wsRuntime.Stop()
		}
		if writer != nil {
			_ = writer.Close()
		}
	}

	if !config.Options.EnableGracefulShutdown {
		defer shutdown()
		return e.Start(config.Options.Address)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- e.Start(config.Options.Address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		shutdown()
		return err
	case sig := <-quit:
		log.Printf("[Bootstrap] 종료 신호 수신: %v", sig)
	}

	timeout := config.Options.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdown()
	return e.Shutdown(ctx)
}

func formOptions(opts *boot.FormOptions) multipart.Options {
	if opts == nil {
		return multipart.Options{}
	}
	return multipart.Options{
		MaxInputLength:      opts.MaxInputLength,
		UploadDirectory:     opts.TemporaryUploadedFileDirectory,
		MaxUploadedFileSize: opts.MaxUploadedFileSize,
		MaxFileCount:        opts.MaxAllowedFileNumber,
		DeniedExtensions:    multipart.DeniedExtensionSet(opts.DeniedFileExtensions),
	}
}

func buildEventWriter(opts boot.Options) eventWriter {
	if opts.Kafka != nil && opts.Kafka.Write != nil {
		if w := kafkaInfra.NewKafkaWriter(*opts.Kafka); w != nil {
			return w
		}
	}
	if opts.RabbitMq != nil && opts.RabbitMq.Write != nil {
		if w := rabbitInfra.NewRabbitMqWriter(*opts.RabbitMq); w != nil {
			return w
		}
	}
	return nil
}

func buildConsumerRuntime(config Config, inv *invoker.Invoker, publishHook *hook.EventPublishHook) (*consumer.Runtime, error) {
	if config.Consumers == nil || len(config.Consumers.Registrations()) == 0 {
		return nil, nil
	}

	var factory interface {
		Build(reg consumer.Registration) (consumer.Reader, error)
	}

	switch {
	case config.Options.Kafka != nil && config.Options.Kafka.Read != nil:
		factory = kafkaInfra.NewRunnerFactory(*config.Options.Kafka)
	case config.Options.RabbitMq != nil && config.Options.RabbitMq.Read != nil:
		factory = rabbitInfra.NewRunnerFactory(*config.Options.RabbitMq)
	default:
		log.Printf("[Bootstrap] Consumer가 등록되었지만 브로커 Read 옵션이 없어 비활성화합니다.")
		return nil, nil
	}

	consumerRouter := tendonRouter.NewRouter()
	for _, reg := range config.Consumers.Registrations() {
		consumerRouter.Register(consumer.RouteMethod, "/"+reg.Topic, reg.Meta)
	}

	consumerPipeline := pipeline.NewPipeline(consumerRouter, inv)
	consumerPipeline.AddArgumentResolver(
		&resolver.ContextResolver{},
		&resolver.StdContextResolver{},
		&resolver.DTOResolver{},
	)
	consumerPipeline.AddPostExecutionHook(publishHook)

	return consumer.NewRuntime(config.Consumers, factory, consumerPipeline), nil
}
