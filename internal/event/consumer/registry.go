package consumer

import (
	"context"

	"github.com/sehyn/tendon/core"
)

// Reader는 브로커 구현이 충족해야 하는 소비 계약입니다.
type Reader interface {
	Read(ctx context.Context) (Message, error)
	Close() error
}

// Registration은 토픽 하나와 그 메시지를 처리할 핸들러의 묶음입니다.
type Registration struct {
	Topic string
	Meta  core.HandlerMeta
}

type Registry struct {
	registrations []Registration
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(topic string, meta core.HandlerMeta) {
	r.registrations = append(r.registrations, Registration{
		Topic: topic,
		Meta:  meta,
	})
}

func (r *Registry) Registrations() []Registration {
	return r.registrations
}
