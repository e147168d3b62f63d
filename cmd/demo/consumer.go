package main

import (
	"context"
	"log"
)

type UploadConsumer struct{}

func NewUploadConsumer() *UploadConsumer {
	return &UploadConsumer{}
}

func (c *UploadConsumer) OnUploadReceived(ctx context.Context, event UploadReceived) error {
	log.Println("이벤트 수신:", event.Name())
	log.Println("업로드 ID:", event.UploadID)

	return nil
}
