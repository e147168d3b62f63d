package session

// Session은 요청 사이에 유지되는 세션 값 묶음입니다.
// 핸들러 파라미터로 *Session을 선언하면 주입됩니다.
// 값이 변경된 세션만 응답 시점에 저장소로 되돌아갑니다.
type Session struct {
	values map[string]any
	dirty  bool
}

func New(values map[string]any) *Session {
	if values == nil {
		values = make(map[string]any)
	}
	return &Session{values: values}
}

func (s *Session) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Session) GetString(key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return ""
}

func (s *Session) Set(key string, value any) {
	s.values[key] = value
	s.dirty = true
}

func (s *Session) Delete(key string) {
	if _, ok := s.values[key]; ok {
		delete(s.values, key)
		s.dirty = true
	}
}

// Values는 저장 시점에 내부 맵을 그대로 노출합니다.
func (s *Session) Values() map[string]any {
	return s.values
}

func (s *Session) Dirty() bool {
	return s.dirty
}
