package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pribylovaa/agro-community/internal/metrics"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/pkg/log"
)

var errBadDataURL = errors.New("malformed data url")

// UploadImage размещает изображение из data URL в хранилище и возвращает публичный URL.
//
// Тип содержимого должен входить в разрешённый список, размер не больше лимита.
// Хранилище не подключено или загрузка не удалась -> возвращается исходный
// data URL с Fallback=true.
func (s *Service) UploadImage(ctx context.Context, dataURL string) (*models.Media, error) {
	const op = "service/media/UploadImage"

	lg := log.From(ctx).With("op", op)

	dataURL = strings.TrimSpace(dataURL)

	contentType, data, err := parseDataURL(dataURL)
	if err != nil {
		lg.Warn("invalid argument: " + err.Error())
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg = lg.With("content_type", contentType, "bytes", len(data))

	if !slices.Contains(s.cfg.Media.AllowedContentTypes, contentType) {
		lg.Warn("invalid argument: content type not allowed")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if int64(len(data)) > s.cfg.Media.MaxSizeBytes {
		lg.Warn("invalid argument: image too large", "max", s.cfg.Media.MaxSizeBytes)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if s.media == nil {
		metrics.Fallbacks.WithLabelValues("media", "disabled").Inc()
		return &models.Media{URL: dataURL, Fallback: true}, nil
	}

	m, err := s.media.PutImage(ctx, contentType, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			lg.Warn("request aborted", "err", ctxErr)
			return nil, fmt.Errorf("%s: %w", op, ctxErr)
		}

		metrics.Fallbacks.WithLabelValues("media", "error").Inc()
		lg.Error("media upload failed, returning data url", "err", err)
		return &models.Media{URL: dataURL, Fallback: true}, nil
	}

	lg.Info("image uploaded", "key", m.Key)

	return m, nil
}

// parseDataURL разбирает data:<type>;base64,<payload>.
func parseDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, errBadDataURL
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errBadDataURL
	}

	contentType, enc, ok := strings.Cut(meta, ";")
	if !ok || enc != "base64" || contentType == "" {
		return "", nil, fmt.Errorf("%w: base64 media type expected", errBadDataURL)
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", errBadDataURL, err)
	}

	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: empty payload", errBadDataURL)
	}

	return strings.ToLower(contentType), data, nil
}

// decodeBase64 принимает стандартный алфавит с паддингом и без.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)

	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}

	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
