package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/pkg/log"
)

// defaultWaterLevel — уровень воды нового устройства.
const defaultWaterLevel = 72

// DeviceStatus возвращает состояние устройства, создавая его при первом обращении.
func (s *Service) DeviceStatus(ctx context.Context, requester string) (*models.Device, error) {
	const op = "service/iot/DeviceStatus"

	lg := log.From(ctx).With("op", op, "device_id", s.cfg.IoT.DeviceID)

	if err := s.checkIoTOwner(lg, op, requester); err != nil {
		return nil, err
	}

	dev, err := s.ensureDevice(ctx)
	if err != nil {
		return nil, storageErr(lg, op, "EnsureDevice", err)
	}

	return dev, nil
}

// TogglePump инвертирует состояние насоса.
func (s *Service) TogglePump(ctx context.Context, requester string) (*models.Device, error) {
	const op = "service/iot/TogglePump"

	lg := log.From(ctx).With("op", op, "device_id", s.cfg.IoT.DeviceID)

	if err := s.checkIoTOwner(lg, op, requester); err != nil {
		return nil, err
	}

	if _, err := s.ensureDevice(ctx); err != nil {
		return nil, storageErr(lg, op, "EnsureDevice", err)
	}

	dev, err := s.storage.TogglePump(ctx, s.cfg.IoT.DeviceID)
	if err != nil {
		return nil, storageErr(lg, op, "TogglePump", err)
	}

	lg.Info("pump toggled", "running", dev.IsPumpRunning)

	return dev, nil
}

// UpdateDevice принимает телеметрию устройства.
// Уровень воды — процент заполнения, вне [0, 100] — ErrInvalidArgument.
func (s *Service) UpdateDevice(ctx context.Context, requester string, patch models.DevicePatch) (*models.Device, error) {
	const op = "service/iot/UpdateDevice"

	lg := log.From(ctx).With("op", op, "device_id", s.cfg.IoT.DeviceID)

	if err := s.checkIoTOwner(lg, op, requester); err != nil {
		return nil, err
	}

	if patch.WaterLevel != nil && (*patch.WaterLevel < 0 || *patch.WaterLevel > 100) {
		lg.Warn("invalid argument: water level out of range", "water_level", *patch.WaterLevel)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.ensureDevice(ctx); err != nil {
		return nil, storageErr(lg, op, "EnsureDevice", err)
	}

	dev, err := s.storage.UpdateDevice(ctx, s.cfg.IoT.DeviceID, patch)
	if err != nil {
		return nil, storageErr(lg, op, "UpdateDevice", err)
	}

	return dev, nil
}

func (s *Service) ensureDevice(ctx context.Context) (*models.Device, error) {
	return s.storage.EnsureDevice(ctx, models.Device{
		DeviceID:   s.cfg.IoT.DeviceID,
		WaterLevel: defaultWaterLevel,
	})
}

// checkIoTOwner — пустой owner в конфиге отключает проверку.
func (s *Service) checkIoTOwner(lg *slog.Logger, op, requester string) error {
	owner := s.cfg.IoT.Owner
	if owner == "" {
		return nil
	}

	requester = strings.TrimSpace(requester)
	if requester == "" {
		lg.Warn("invalid argument: empty requester")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if requester != owner {
		lg.Warn("forbidden: not the device owner", "requester", requester)
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return nil
}
