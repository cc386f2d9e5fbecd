package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/agro-community/internal/metrics"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/pkg/log"
)

// adviceByLabel — рекомендации по метке классификатора.
var adviceByLabel = map[string]string{
	"Early Blight":   "Remove infected leaves; spray Mancozeb or Chlorothalonil per label; improve airflow and avoid overhead watering.",
	"Late Blight":    "Apply Copper-based fungicide quickly; avoid water on foliage; destroy severely infected plants and rotate crops.",
	"Leaf Spot":      "Use Copper or Neem-based sprays; keep leaves dry; sanitize tools; remove debris.",
	"Rust":           "Remove infected leaves; apply Sulfur or Copper sprays; increase spacing.",
	"Powdery Mildew": "Use Potassium bicarbonate or Sulfur sprays; increase ventilation; avoid shade and high humidity.",
	"Healthy":        "No disease detected; continue normal care and monitoring.",
}

// Запасные ответы классификатора.
func offlineDetections() []models.Detection {
	return []models.Detection{
		{Label: "Leaf Spot", Score: 0.78, Advice: adviceByLabel["Leaf Spot"]},
		{Label: "Healthy", Score: 0.12, Advice: adviceByLabel["Healthy"]},
	}
}

func failedDetections() []models.Detection {
	return []models.Detection{
		{Label: "Leaf Blight", Score: 0.72, Advice: adviceByLabel["Early Blight"]},
	}
}

func emptyDetections() []models.Detection {
	return []models.Detection{
		{Label: "Healthy", Score: 0.85, Advice: adviceByLabel["Healthy"]},
	}
}

// Detect диагностирует болезнь растения по изображению в виде data URL
// (допускается и «голый» base64).
//
// Классификатор не настроен -> детерминированный ответ без сети;
// ошибка классификатора -> запасной ответ; пустой ответ -> Healthy.
// Ошибки: ErrInvalidArgument (пустое или не base64 изображение).
func (s *Service) Detect(ctx context.Context, image string) (*models.DetectReport, error) {
	const op = "service/ai/Detect"

	lg := log.From(ctx).With("op", op)

	image = strings.TrimSpace(image)
	if image == "" {
		lg.Warn("invalid argument: empty image")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	payload := image
	if _, after, ok := strings.Cut(image, ","); ok {
		payload = after
	}

	data, err := decodeBase64(payload)
	if err != nil || len(data) == 0 {
		lg.Warn("invalid argument: image is not base64", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg = lg.With("bytes", len(data))

	var results []models.Detection
	switch {
	case s.classifier == nil || s.cfg.Classifier.Token == "":
		metrics.Fallbacks.WithLabelValues("classifier", "disabled").Inc()
		results = offlineDetections()
	default:
		results, err = s.classifier.Classify(ctx, data)
		switch {
		case err != nil:
			metrics.Fallbacks.WithLabelValues("classifier", "error").Inc()
			lg.Warn("classifier failed, using fallback", "err", err)
			results = failedDetections()
		case len(results) == 0:
			metrics.Fallbacks.WithLabelValues("classifier", "empty").Inc()
			results = emptyDetections()
		default:
			for i := range results {
				results[i].Advice = adviceByLabel[results[i].Label]
			}
		}
	}

	top := results[0]
	lg.Debug("detection done", "top_label", top.Label, "score", top.Score)

	return &models.DetectReport{
		Results:    results,
		TopLabel:   top.Label,
		Confidence: fmt.Sprintf("%.2f", top.Score),
		Advice:     top.Advice,
	}, nil
}
