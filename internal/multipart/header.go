package multipart

import (
	"net/url"
	"strings"
)

// partHeader는 파트 헤더 블록에서 추출한 메타 정보입니다.
type partHeader struct {
	name           string
	hasDisposition bool
	filename       string // filename* 변형이 있으면 그쪽이 우선
	hasFilename    bool
	extension      string
	contentType    string
}

// isFile은 filename 파라미터가 선언된 파트인지 알려줍니다.
func (h partHeader) isFile() bool {
	return h.hasFilename
}

/*
parsePartHeader는 파트 선두의 헤더 블록을 해석합니다.

블록은 CRLF로 줄을 나누고, 각 줄은 첫 ": "에서 한 번만 이름/값으로 나눕니다.
같은 이름이 여러 번 나오면 마지막 값이 남습니다.
*/
func parsePartHeader(block []byte) partHeader {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(block), "\r\n") {
		name, value, ok := strings.Cut(line, ": ")
		if !ok || name == "" {
			continue
		}
		fields[strings.ToLower(name)] = value
	}

	var h partHeader
	h.contentType = fields["content-type"]

	disposition, ok := fields["content-disposition"]
	if !ok {
		return h
	}
	h.hasDisposition = true

	var plain, extended string
	var hasExtended bool
	for _, token := range strings.Split(disposition, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(token), "=")
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "name":
			h.name = unquote(value)
		case "filename":
			h.hasFilename = true
			plain = unquote(value)
		case "filename*":
			h.hasFilename = true
			hasExtended = true
			extended = decodeExtendedValue(value)
		}
	}

	// RFC 5987 확장 변형이 있으면 그쪽이 선호됩니다.
	if hasExtended {
		h.filename = extended
	} else {
		h.filename = plain
	}
	h.extension = extensionOf(h.filename)

	return h
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}

// decodeExtendedValue는 RFC 5987 형식(charset'lang'percent-encoded)을 해석합니다.
func decodeExtendedValue(value string) string {
	value = unquote(value)
	if i := strings.Index(value, "''"); i >= 0 {
		value = value[i+2:]
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}

// extensionOf는 파일 이름의 마지막 '.' 뒤 문자열을 소문자로 반환합니다. 없으면 빈 문자열.
func extensionOf(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 && i+1 < len(filename) {
		return strings.ToLower(filename[i+1:])
	}
	return ""
}
