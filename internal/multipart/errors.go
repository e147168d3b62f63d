package multipart

import "errors"

// 파싱 실패 분류. 모두 진행 중인 파싱 전체를 실패시키며 내부에서 재시도하지 않습니다.
// 실패 시점까지 이 요청이 만든 임시 파일은 에러가 전파되기 전에 모두 삭제됩니다.
var (
	// Content-Type에 boundary 선언이 없거나 헤더 자체를 해석할 수 없는 경우
	ErrMalformedContentType = errors.New("multipart: Content-Type에서 boundary를 찾을 수 없습니다")

	// 파트 헤더 블록이 잘렸거나 닫는 boundary 없이 스트림이 끝난 경우
	ErrMalformedBody = errors.New("multipart: 바디가 잘렸거나 파트 헤더가 올바르지 않습니다")

	// 거부 목록에 있는 확장자의 파일이 선언된 경우
	ErrFileTypeRejected = errors.New("multipart: 허용되지 않는 파일 확장자입니다")

	// 파일 하나가 크기 제한을 초과한 경우
	ErrFileTooLarge = errors.New("multipart: 업로드 파일이 크기 제한을 초과했습니다")

	// 요청의 파일 개수가 제한을 초과한 경우
	ErrTooManyFiles = errors.New("multipart: 업로드 파일 개수가 제한을 초과했습니다")

	// 필드 하나의 누적 크기가 제한을 초과한 경우
	ErrPayloadTooLarge = errors.New("multipart: 필드 값이 크기 제한을 초과했습니다")

	// 닫는 boundary를 보기 전에 전송 계층이 실패한 경우
	ErrTransport = errors.New("multipart: 전송 스트림이 중단되었습니다")
)
