package form

import "os"

// UploadedFile은 파싱 중 임시 저장소에 기록된 파일 하나의 레코드입니다.
// 파싱이 끝난 뒤 임시 파일의 삭제 책임은 스택을 소유한 쪽에 있습니다.
type UploadedFile struct {
	FieldName   string
	Filename    string
	Extension   string
	ContentType string
	Path        string
	Size        int64
}

// Remove는 임시 파일을 삭제합니다.
func (f UploadedFile) Remove() error {
	return os.Remove(f.Path)
}

// UploadedFiles는 핸들러 파라미터로 주입되는 업로드 파일 전체 목록입니다.
type UploadedFiles struct {
	Files []UploadedFile
}

/*
ParameterStack은 요청 바디에서 추출된 최종 필드/파일 테이블입니다.

Params의 값은 string 또는 []string, Files의 값은 UploadedFile 또는
[]UploadedFile입니다. "name[]" 형태의 배열형 이름은 "[]"를 제거한 키 아래
슬라이스로 적재되며, 슬라이스 안의 순서는 바디에 나타난 순서와 항상 같습니다.
배열형이 아닌 이름이 중복되면 마지막 값이 이전 값을 덮어씁니다.

스트림이 끝난 뒤에는 변경되지 않으며 요청이 소유합니다.
*/
type ParameterStack struct {
	Params map[string]any
	Files  map[string]any
}

// Param은 스칼라 필드 값을 반환합니다. 배열형 필드라면 첫 값을 반환합니다.
func (s *ParameterStack) Param(name string) string {
	switch v := s.Params[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// ParamSlice는 배열형 필드의 값 목록을 도착 순서대로 반환합니다.
// 스칼라 필드라면 길이 1의 슬라이스로 감싸 반환합니다.
func (s *ParameterStack) ParamSlice(name string) []string {
	switch v := s.Params[name].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	}
	return nil
}

// File은 스칼라 파일 항목을 반환합니다.
func (s *ParameterStack) File(name string) (UploadedFile, bool) {
	switch v := s.Files[name].(type) {
	case UploadedFile:
		return v, true
	case []UploadedFile:
		if len(v) > 0 {
			return v[0], true
		}
	}
	return UploadedFile{}, false
}

// FileSlice는 배열형 파일 항목의 목록을 도착 순서대로 반환합니다.
func (s *ParameterStack) FileSlice(name string) []UploadedFile {
	switch v := s.Files[name].(type) {
	case UploadedFile:
		return []UploadedFile{v}
	case []UploadedFile:
		return v
	}
	return nil
}

// AllFiles는 스택에 담긴 모든 파일을 평탄화하여 반환합니다.
func (s *ParameterStack) AllFiles() []UploadedFile {
	var all []UploadedFile
	for _, v := range s.Files {
		switch f := v.(type) {
		case UploadedFile:
			all = append(all, f)
		case []UploadedFile:
			all = append(all, f...)
		}
	}
	return all
}

// RemoveFiles는 스택이 가리키는 모든 임시 파일을 삭제합니다.
// 첫 번째 실패를 반환하되 나머지 파일 삭제는 계속 시도합니다.
func (s *ParameterStack) RemoveFiles() error {
	var firstErr error
	for _, f := range s.AllFiles() {
		if err := f.Remove(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
