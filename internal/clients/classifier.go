package clients

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"

	"github.com/pribylovaa/agro-community/internal/config"
	"github.com/pribylovaa/agro-community/internal/models"
)

// Classifier — клиент hosted-inference API классификации изображений.
type Classifier struct {
	client *resty.Client
	token  string
	model  string
}

// NewClassifier создаёт клиент классификатора.
func NewClassifier(cfg config.ClassifierConfig, cc *ClientConfig) *Classifier {
	return &Classifier{
		client: newResty(strings.TrimRight(cfg.URL, "/"), cfg.Timeout, cc),
		token:  cfg.Token,
		model:  strings.Trim(cfg.Model, "/"),
	}
}

func (c *Classifier) Close() error {
	return c.client.Close()
}

type label struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify отправляет байты изображения модели и возвращает гипотезы в порядке ответа.
// Не-2xx ответ — ErrUpstream.
func (c *Classifier) Classify(ctx context.Context, image []byte) ([]models.Detection, error) {
	const op = "clients/classifier/Classify"

	res, err := r(ctx, c.client).
		SetHeader("Authorization", "Bearer "+c.token).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(image).
		SetResult(&[]label{}).
		Post("/" + c.model)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if res.IsError() {
		return nil, upstreamError(op, res)
	}

	labels, ok := res.Result().(*[]label)
	if !ok || labels == nil {
		return nil, fmt.Errorf("%s: unexpected body: %w", op, ErrUpstream)
	}

	out := make([]models.Detection, 0, len(*labels))
	for _, l := range *labels {
		out = append(out, models.Detection{Label: l.Label, Score: l.Score})
	}

	return out, nil
}
