package multipart

import (
	"os"
	"strings"
)

const (
	// 필드 하나가 누적할 수 있는 기본 최대 바이트 수
	defaultMaxInputLength = 2 << 20

	// 파트 헤더 블록이 종결되어야 하는 바이트 예산
	partHeaderBudget = 16 << 10
)

// Options는 바디 수신 정책입니다. 영 값은 항목별 기본값을 의미합니다.
type Options struct {
	MaxInputLength      int64
	UploadDirectory     string
	MaxUploadedFileSize int64
	MaxFileCount        int
	DeniedExtensions    map[string]struct{}
}

// DeniedExtensionSet은 확장자 목록을 소문자 집합으로 정규화합니다.
func DeniedExtensionSet(extensions []string) map[string]struct{} {
	if len(extensions) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return set
}

func (o Options) withDefaults() Options {
	if o.MaxInputLength <= 0 {
		o.MaxInputLength = defaultMaxInputLength
	}
	if o.UploadDirectory == "" {
		o.UploadDirectory = os.TempDir()
	}
	return o
}
