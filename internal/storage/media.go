package storage

import (
	"context"

	"github.com/pribylovaa/agro-community/internal/models"
)

// MediaStorage — хостинг загружаемых изображений (объектное хранилище).
type MediaStorage interface {
	// PutImage сохраняет изображение и возвращает ключ объекта и его публичный URL.
	// Тип и размер данных уже проверены вызывающей стороной.
	PutImage(ctx context.Context, contentType string, data []byte) (*models.Media, error)
}
