package router

import (
	"strings"

	"github.com/sehyn/tendon/core"
	"github.com/sehyn/tendon/pkg/httperr"
)

// RouteSpec은 애플리케이션이 선언하는 라우트 한 건입니다.
type RouteSpec struct {
	Method       string
	Path         string
	Handler      any
	Interceptors []core.Interceptor
}

type Router interface {
	// Route는 실행 대상을 결정하고, 매칭된 path 파라미터를 컨텍스트에 싣습니다.
	Route(ctx core.ExecutionContext) (core.HandlerMeta, error)
}

type route struct {
	method   string
	segments []string
	meta     core.HandlerMeta
}

type router struct {
	routes []route
}

func NewRouter() *router {
	return &router{}
}

func (r *router) Register(method string, path string, meta core.HandlerMeta) {
	r.routes = append(r.routes, route{
		method:   strings.ToUpper(method),
		segments: splitPath(path),
		meta:     meta,
	})
}

func (r *router) Route(ctx core.ExecutionContext) (core.HandlerMeta, error) {
	segments := splitPath(ctx.Path())

	for _, candidate := range r.routes {
		if candidate.method != ctx.Method() {
			continue
		}

		params, pathKeys, ok := match(candidate.segments, segments)
		if !ok {
			continue
		}

		// Resolver가 읽을 path 파라미터를 컨텍스트에 싣는다.
		ctx.Set("tendon.params", params)
		ctx.Set("tendon.pathKeys", pathKeys)
		return candidate.meta, nil
	}

	return core.HandlerMeta{}, httperr.NotFound("요청한 경로를 찾을 수 없습니다: " + ctx.Method() + " " + ctx.Path())
}

// match는 ":name" 세그먼트를 와일드카드로 취급해 경로를 대조합니다.
// pathKeys는 패턴에 선언된 순서를 보존합니다.
func match(pattern []string, actual []string) (map[string]string, []string, bool) {
	if len(pattern) != len(actual) {
		return nil, nil, false
	}

	params := make(map[string]string)
	var pathKeys []string

	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			key := seg[1:]
			params[key] = actual[i]
			pathKeys = append(pathKeys, key)
			continue
		}
		if seg != actual[i] {
			return nil, nil, false
		}
	}
	return params, pathKeys, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
