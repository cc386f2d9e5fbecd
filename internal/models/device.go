package models

import "time"

// Device — демонстрационный контроллер насоса.
type Device struct {
	DeviceID      string    `json:"deviceId"`
	WaterLevel    float64   `json:"waterLevel"`
	IsPumpRunning bool      `json:"isPumpRunning"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// DevicePatch — телеметрия от устройства; nil-поля не меняются.
type DevicePatch struct {
	WaterLevel    *float64
	IsPumpRunning *bool
}
