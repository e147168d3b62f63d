package session

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/boot"
	"github.com/sehyn/tendon/pkg/session"
)

type fakeCtx struct {
	store map[string]any
}

func newFakeCtx() *fakeCtx {
	return &fakeCtx{store: map[string]any{}}
}

func (c *fakeCtx) Context() context.Context     { return context.Background() }
func (c *fakeCtx) EventBus() core.EventBus      { return nil }
func (c *fakeCtx) Method() string               { return "GET" }
func (c *fakeCtx) Path() string                 { return "/" }
func (c *fakeCtx) Params() map[string]string    { return nil }
func (c *fakeCtx) Header(name string) string    { return "" }
func (c *fakeCtx) PathKeys() []string           { return nil }
func (c *fakeCtx) Queries() map[string][]string { return nil }
func (c *fakeCtx) Set(key string, value any)    { c.store[key] = value }
func (c *fakeCtx) Get(key string) (any, bool)   { v, ok := c.store[key]; return v, ok }

func testOptions() boot.SessionOptions {
	return boot.SessionOptions{
		CookieName: "test_session",
		Keys:       [][]byte{[]byte("0123456789abcdef0123456789abcdef")},
	}
}

func TestInterceptor_InjectsSession(t *testing.T) {
	i := NewInterceptor(testOptions())
	ctx := newFakeCtx()
	ctx.Set("tendon.http_request", httptest.NewRequest("GET", "/", nil))
	ctx.Set("tendon.http_response", httptest.NewRecorder())

	if err := i.PreHandle(ctx, core.HandlerMeta{}); err != nil {
		t.Fatalf("PreHandle 실패: %v", err)
	}

	raw, ok := ctx.Get("tendon.session")
	if !ok {
		t.Fatal("세션이 컨텍스트에 실리지 않았습니다")
	}
	if _, ok := raw.(*session.Session); !ok {
		t.Fatalf("세션 타입이 잘못되었습니다: %T", raw)
	}
}

func TestInterceptor_SavesDirtySession(t *testing.T) {
	i := NewInterceptor(testOptions())
	ctx := newFakeCtx()
	recorder := httptest.NewRecorder()
	ctx.Set("tendon.http_request", httptest.NewRequest("GET", "/", nil))
	ctx.Set("tendon.http_response", recorder)

	if err := i.PreHandle(ctx, core.HandlerMeta{}); err != nil {
		t.Fatalf("PreHandle 실패: %v", err)
	}

	raw, _ := ctx.Get("tendon.session")
	raw.(*session.Session).Set("user", "kim")

	i.PostHandle(ctx, core.HandlerMeta{})

	setCookie := recorder.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "test_session=") {
		t.Fatalf("세션 쿠키가 기록되지 않았습니다: %q", setCookie)
	}
}

func TestInterceptor_SkipsCleanSession(t *testing.T) {
	i := NewInterceptor(testOptions())
	ctx := newFakeCtx()
	recorder := httptest.NewRecorder()
	ctx.Set("tendon.http_request", httptest.NewRequest("GET", "/", nil))
	ctx.Set("tendon.http_response", recorder)

	if err := i.PreHandle(ctx, core.HandlerMeta{}); err != nil {
		t.Fatalf("PreHandle 실패: %v", err)
	}
	i.PostHandle(ctx, core.HandlerMeta{})

	if got := recorder.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("변경 없는 세션은 저장되면 안 됩니다: %q", got)
	}
}

func TestInterceptor_RoundTrip(t *testing.T) {
	i := NewInterceptor(testOptions())

	// 1차 요청: 세션에 값을 기록
	first := newFakeCtx()
	recorder := httptest.NewRecorder()
	first.Set("tendon.http_request", httptest.NewRequest("GET", "/", nil))
	first.Set("tendon.http_response", recorder)

	if err := i.PreHandle(first, core.HandlerMeta{}); err != nil {
		t.Fatalf("PreHandle 실패: %v", err)
	}
	raw, _ := first.Get("tendon.session")
	raw.(*session.Session).Set("user", "kim")
	i.PostHandle(first, core.HandlerMeta{})

	cookie := recorder.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("세션 쿠키가 기록되지 않았습니다")
	}

	// 2차 요청: 쿠키를 실어 보내면 값이 복원되어야 한다
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", strings.Split(cookie, ";")[0])

	second := newFakeCtx()
	second.Set("tendon.http_request", req)
	second.Set("tendon.http_response", httptest.NewRecorder())

	if err := i.PreHandle(second, core.HandlerMeta{}); err != nil {
		t.Fatalf("2차 PreHandle 실패: %v", err)
	}
	raw, _ = second.Get("tendon.session")
	if got := raw.(*session.Session).GetString("user"); got != "kim" {
		t.Fatalf("세션 값이 복원되지 않았습니다: %q", got)
	}
}

func TestInterceptor_NonHTTPContext(t *testing.T) {
	i := NewInterceptor(testOptions())
	ctx := newFakeCtx()

	if err := i.PreHandle(ctx, core.HandlerMeta{}); err != nil {
		t.Fatalf("HTTP가 아닌 컨텍스트에서 에러가 나면 안 됩니다: %v", err)
	}
	if _, ok := ctx.Get("tendon.session"); ok {
		t.Fatal("HTTP가 아닌 컨텍스트에는 세션이 실리면 안 됩니다")
	}
}
