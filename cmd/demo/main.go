package main

import (
	"log"

	"github.com/sehyn/tendon"
	"github.com/sehyn/tendon/pkg/boot"
)

func main() {
	app := tendon.New()

	// 생성자 등록
	app.Constructor(
		NewUploadController,
		NewUploadConsumer,
		NewProgressController,
	)

	// 라우트 등록
	app.Route("POST", "/uploads", (*UploadController).Upload)
	app.Route("POST", "/uploads/inspect", (*UploadController).Inspect)
	app.Route("GET", "/visits", (*UploadController).Visits)

	// WebSocket
	app.WebSocket().Register("/ws/progress", (*ProgressController).Progress)

	// 이벤트 구독
	if err := app.Consume("upload.received", (*UploadConsumer).OnUploadReceived); err != nil {
		log.Fatal(err)
	}

	err := app.Run(boot.Options{
		Address:                ":8080",
		EnableGracefulShutdown: true,
		Form: &boot.FormOptions{
			MaxUploadedFileSize:  32 << 20,
			MaxAllowedFileNumber: 8,
			DeniedFileExtensions: []string{"exe", "sh"},
		},
		Session: &boot.SessionOptions{
			CookieName: "demo_session",
			Keys:       [][]byte{[]byte("change-me-32-bytes-change-me-32b")},
			MaxAge:     3600,
		},
		Kafka: &boot.KafkaOptions{
			Brokers: []string{"localhost:9092"},
			Read:    &boot.KafkaReadOptions{GroupID: "demo"},
			Write:   &boot.KafkaWriteOptions{},
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}
