package minio

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/agro-community/internal/models"
)

// PutImage загружает изображение под ключом "media/<yyyy>/<mm>/<uuid>.<ext>".
func (s *MediaStorage) PutImage(ctx context.Context, contentType string, data []byte) (*models.Media, error) {
	const op = "storage/minio/media/PutImage"

	key := objectKey(time.Now(), uuid.NewString(), contentType)

	_, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key, bytes.NewReader(data), int64(len(data)), mclient.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		return nil, fmt.Errorf("%s: put %q (code=%s): %w", op, key, errResp.Code, err)
	}

	return &models.Media{
		URL: s.publicBase + "/" + key,
		Key: key,
	}, nil
}

func objectKey(now time.Time, id, contentType string) string {
	now = now.UTC()

	return path.Join("media", now.Format("2006"), now.Format("01"), id+extFor(contentType))
}

func extFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
