package multipart

import (
	"strings"

	"github.com/sehyn/tendon/pkg/form"
)

/*
StackBuilder는 완결된 파트를 최종 ParameterStack으로 쌓아 올립니다.

"name[]" 형태의 배열형 이름은 "[]"를 제거한 키 아래 슬라이스로 모이며,
같은 키의 이전 스칼라 값은 길이 1의 슬라이스로 승격된 뒤 새 값이 덧붙습니다.
슬라이스 안의 순서는 파트가 완결된 순서, 곧 바디에 선언된 순서입니다.
배열형이 아닌 이름이 중복되면 마지막 값이 이깁니다. 이전 값은 버려집니다.

빌더는 요청 하나가 소유하는 값이며 Finish 호출로 스택을 넘긴 뒤에는
더 쓰지 않습니다.
*/
type StackBuilder struct {
	params map[string]any
	files  map[string]any
}

func NewStackBuilder() *StackBuilder {
	return &StackBuilder{
		params: make(map[string]any),
		files:  make(map[string]any),
	}
}

// AddField는 필드 버퍼를 적재합니다. boundary 앞에 붙는 인코딩 관례에 따라
// 꼬리의 CRLF 하나를 있으면 제거합니다.
func (b *StackBuilder) AddField(name string, buf []byte) {
	if tail := len(buf) - 2; tail >= 0 && buf[tail] == '\r' && buf[tail+1] == '\n' {
		buf = buf[:tail]
	}
	b.AddFieldValue(name, string(buf))
}

// AddFieldValue는 이미 디코드된 필드 값을 그대로 적재합니다.
func (b *StackBuilder) AddFieldValue(name string, value string) {
	if key, isArray := arrayKey(name); isArray {
		b.params[key] = appendValue[string](b.params[key], value)
		return
	}
	b.params[name] = value
}

// AddFile은 완결된 업로드 파일을 적재합니다. 임시 파일의 소유권은 이 시점에
// 스택으로 넘어갑니다.
func (b *StackBuilder) AddFile(name string, file form.UploadedFile) {
	if key, isArray := arrayKey(name); isArray {
		b.files[key] = appendValue[form.UploadedFile](b.files[key], file)
		return
	}
	b.files[name] = file
}

// Finish는 완성된 스택을 반환합니다. 이후 스택은 변경되지 않습니다.
func (b *StackBuilder) Finish() *form.ParameterStack {
	return &form.ParameterStack{
		Params: b.params,
		Files:  b.files,
	}
}

func arrayKey(name string) (string, bool) {
	if strings.HasSuffix(name, "[]") {
		return strings.TrimSuffix(name, "[]"), true
	}
	return name, false
}

// appendValue는 기존 항목을 순서 보존 슬라이스로 강제한 뒤 새 값을 덧붙입니다.
func appendValue[T any](existing any, value T) []T {
	switch prev := existing.(type) {
	case nil:
		return []T{value}
	case T:
		return []T{prev, value}
	case []T:
		return append(prev, value)
	default:
		return []T{value}
	}
}
