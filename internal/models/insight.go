package models

import "time"

// Detection — одна гипотеза классификатора.
type Detection struct {
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Advice string  `json:"advice,omitempty"`
}

// DetectReport — ответ на запрос диагностики.
// Confidence — вероятность первой гипотезы с двумя знаками после запятой.
type DetectReport struct {
	Results    []Detection `json:"results"`
	TopLabel   string      `json:"topLabel"`
	Confidence string      `json:"confidence"`
	Advice     string      `json:"advice"`
}

// WeatherSource — происхождение сводки.
type WeatherSource string

const (
	WeatherLive WeatherSource = "live"
	WeatherMock WeatherSource = "mock"
)

// WeatherReading — текущая погода для точки.
type WeatherReading struct {
	Location    string        `json:"location"`
	Temperature float64       `json:"temperature"`
	Condition   string        `json:"condition"`
	Humidity    float64       `json:"humidity"`
	Source      WeatherSource `json:"source"`
	FetchedAt   time.Time     `json:"fetchedAt"`
}

// Media — результат загрузки изображения.
// Fallback=true означает, что хостинг недоступен и URL — исходный data URL.
type Media struct {
	URL      string `json:"url"`
	Key      string `json:"key,omitempty"`
	Fallback bool   `json:"fallback"`
}
