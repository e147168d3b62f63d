package path

// 경로 파라미터를 타입과 함께 받기 위한 래퍼 타입들입니다.
// 핸들러 시그니처에 선언된 순서대로 라우트 패턴의 파라미터와 짝지어집니다.

type Int struct {
	Value int64
}

type String struct {
	Value string
}

type Boolean struct {
	Value bool
}
