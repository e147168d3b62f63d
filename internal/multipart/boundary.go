package multipart

import (
	"fmt"
	"mime"
)

// Boundary는 요청 하나에 대해 한 번 파생되어 변경되지 않는 구분자 바이트열입니다.
type Boundary struct {
	Raw     []byte // boundary 토큰 그 자체
	Opening []byte // "--" + boundary, 새 파트의 시작 표식
	Closing []byte // boundary + "--", 바디 끝 표식
}

// LocateBoundary는 Content-Type 헤더 값에서 boundary 토큰을 찾아 구분자를 만듭니다.
// 고정 오프셋이 아니라 media type 파라미터 토큰화를 거치므로 따옴표, 공백,
// 파라미터 순서에 관계없이 동작합니다.
func LocateBoundary(contentType string) (Boundary, error) {
	if contentType == "" {
		return Boundary{}, fmt.Errorf("%w: Content-Type 헤더가 없습니다", ErrMalformedContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return Boundary{}, fmt.Errorf("%w: %v", ErrMalformedContentType, err)
	}
	if mediaType != "multipart/form-data" {
		return Boundary{}, fmt.Errorf("%w: multipart/form-data가 아닙니다 (%s)", ErrMalformedContentType, mediaType)
	}

	token, ok := params["boundary"]
	if !ok || token == "" {
		return Boundary{}, fmt.Errorf("%w: boundary 파라미터가 없습니다", ErrMalformedContentType)
	}

	return Boundary{
		Raw:     []byte(token),
		Opening: []byte("--" + token),
		Closing: []byte(token + "--"),
	}, nil
}
