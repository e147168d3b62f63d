package session

import (
	"log"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/boot"
	"github.com/sehyn/tendon/pkg/session"
)

const defaultCookieName = "tendon_session"

/*
Interceptor는 쿠키 기반 세션을 요청 컨텍스트에 싣고, 값이 변경된 경우에만
응답 커밋 직전에 저장소로 되돌립니다.

저장은 Set-Cookie 헤더로 이루어지므로 본문이 기록되기 전에 끝나야 합니다.
전송 어댑터가 커밋 직전 콜백("tendon.response_before")을 제공하면 그 시점에,
제공하지 않으면 PostHandle에서 저장합니다.
*/
type Interceptor struct {
	store *sessions.CookieStore
	name  string
}

func NewInterceptor(opts boot.SessionOptions) *Interceptor {
	store := sessions.NewCookieStore(opts.Keys...)
	if opts.MaxAge != 0 {
		store.MaxAge(opts.MaxAge)
	}

	name := opts.CookieName
	if name == "" {
		name = defaultCookieName
	}

	return &Interceptor{
		store: store,
		name:  name,
	}
}

func (i *Interceptor) PreHandle(ctx core.ExecutionContext, meta core.HandlerMeta) error {
	req, ok := httpRequest(ctx)
	if !ok {
		// HTTP 요청이 아니면 세션은 없다.
		return nil
	}

	// 복호화 실패 시에도 빈 세션으로 계속 진행한다.
	gs, err := i.store.Get(req, i.name)
	if err != nil {
		log.Printf("[Session] 세션 복원 실패, 새 세션으로 진행합니다: %v", err)
	}

	values := make(map[string]any, len(gs.Values))
	for k, v := range gs.Values {
		if key, ok := k.(string); ok {
			values[key] = v
		}
	}

	s := session.New(values)
	ctx.Set("tendon.session", s)

	if before, ok := responseBefore(ctx); ok {
		saved := false
		before(func() {
			if saved {
				return
			}
			saved = true
			ctx.Set("tendon.session_saved", true)
			i.save(ctx, req, gs, s)
		})
	}

	return nil
}

func (i *Interceptor) PostHandle(ctx core.ExecutionContext, meta core.HandlerMeta) {
	if _, ok := ctx.Get("tendon.session_saved"); ok {
		return
	}

	req, ok := httpRequest(ctx)
	if !ok {
		return
	}

	raw, ok := ctx.Get("tendon.session")
	if !ok {
		return
	}
	s := raw.(*session.Session)

	gs, _ := i.store.Get(req, i.name)
	i.save(ctx, req, gs, s)
}

func (i *Interceptor) AfterCompletion(ctx core.ExecutionContext, meta core.HandlerMeta, err error) {}

func (i *Interceptor) save(ctx core.ExecutionContext, req *http.Request, gs *sessions.Session, s *session.Session) {
	if !s.Dirty() {
		return
	}

	w, ok := httpResponse(ctx)
	if !ok {
		return
	}

	gs.Values = make(map[any]any, len(s.Values()))
	for k, v := range s.Values() {
		gs.Values[k] = v
	}

	if err := i.store.Save(req, w, gs); err != nil {
		log.Printf("[Session] 세션 저장 실패: %v", err)
	}
}

func httpRequest(ctx core.ExecutionContext) (*http.Request, bool) {
	raw, ok := ctx.Get("tendon.http_request")
	if !ok {
		return nil, false
	}
	req, ok := raw.(*http.Request)
	return req, ok
}

func httpResponse(ctx core.ExecutionContext) (http.ResponseWriter, bool) {
	raw, ok := ctx.Get("tendon.http_response")
	if !ok {
		return nil, false
	}
	w, ok := raw.(http.ResponseWriter)
	return w, ok
}

func responseBefore(ctx core.ExecutionContext) (func(func()), bool) {
	raw, ok := ctx.Get("tendon.response_before")
	if !ok {
		return nil, false
	}
	before, ok := raw.(func(func()))
	return before, ok
}
