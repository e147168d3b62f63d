package multipart

import "testing"

func TestParsePartHeader_Field(t *testing.T) {
	h := parsePartHeader([]byte(`Content-Disposition: form-data; name="title"`))
	if !h.hasDisposition {
		t.Fatal("Content-Disposition을 인식하지 못했습니다")
	}
	if h.name != "title" {
		t.Fatalf("이름이 잘못되었습니다: %q", h.name)
	}
	if h.isFile() {
		t.Fatal("filename 없는 파트가 파일로 분류되었습니다")
	}
}

func TestParsePartHeader_File(t *testing.T) {
	block := "Content-Disposition: form-data; name=\"doc\"; filename=\"Report.PDF\"\r\nContent-Type: application/pdf"
	h := parsePartHeader([]byte(block))
	if !h.isFile() {
		t.Fatal("파일 파트로 분류되지 않았습니다")
	}
	if h.filename != "Report.PDF" {
		t.Fatalf("파일 이름이 잘못되었습니다: %q", h.filename)
	}
	if h.extension != "pdf" {
		t.Fatalf("확장자는 소문자여야 합니다: %q", h.extension)
	}
	if h.contentType != "application/pdf" {
		t.Fatalf("Content-Type이 잘못되었습니다: %q", h.contentType)
	}
}

func TestParsePartHeader_ExtendedFilenamePreferred(t *testing.T) {
	block := `Content-Disposition: form-data; name="doc"; filename="fallback.txt"; filename*=UTF-8''%ec%9e%90%eb%a3%8c.txt`
	h := parsePartHeader([]byte(block))
	if h.filename != "자료.txt" {
		t.Fatalf("filename* 변형이 우선되어야 합니다: %q", h.filename)
	}
	if h.extension != "txt" {
		t.Fatalf("확장자가 잘못되었습니다: %q", h.extension)
	}
}

func TestParsePartHeader_DuplicateHeaderLastWins(t *testing.T) {
	block := "Content-Type: text/plain\r\nContent-Type: application/json\r\nContent-Disposition: form-data; name=\"x\""
	h := parsePartHeader([]byte(block))
	if h.contentType != "application/json" {
		t.Fatalf("중복 헤더는 마지막 값이어야 합니다: %q", h.contentType)
	}
}

func TestParsePartHeader_MissingDisposition(t *testing.T) {
	h := parsePartHeader([]byte("Content-Type: text/plain"))
	if h.hasDisposition {
		t.Fatal("없는 Content-Disposition이 인식되었습니다")
	}
}

func TestExtensionOf(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"a.txt", "txt"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{"trailingdot.", ""},
		{"UPPER.JPG", "jpg"},
	}
	for _, c := range cases {
		if got := extensionOf(c.filename); got != c.want {
			t.Errorf("extensionOf(%q) = %q, want %q", c.filename, got, c.want)
		}
	}
}
