package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/storage"
)

type deviceDoc struct {
	DeviceID      string    `bson:"device_id"`
	WaterLevel    float64   `bson:"water_level"`
	IsPumpRunning bool      `bson:"is_pump_running"`
	LastUpdated   time.Time `bson:"last_updated"`
}

func (d *deviceDoc) toModel() *models.Device {
	return &models.Device{
		DeviceID:      d.DeviceID,
		WaterLevel:    d.WaterLevel,
		IsPumpRunning: d.IsPumpRunning,
		LastUpdated:   d.LastUpdated.UTC(),
	}
}

var returnAfter = options.FindOneAndUpdate().SetReturnDocument(options.After)

// EnsureDevice возвращает устройство, создавая его из def при первом обращении (upsert).
func (m *Mongo) EnsureDevice(ctx context.Context, def models.Device) (*models.Device, error) {
	const op = "storage/mongo/EnsureDevice"

	filter := bson.D{{Key: "device_id", Value: def.DeviceID}}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "water_level", Value: def.WaterLevel},
		{Key: "is_pump_running", Value: def.IsPumpRunning},
		{Key: "last_updated", Value: toMS(time.Now())},
	}}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc deviceDoc
	err := m.devices.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil && mongodriver.IsDuplicateKeyError(err) {
		// Параллельный upsert успел вставить документ — просто читаем его.
		err = m.devices.FindOne(ctx, filter).Decode(&doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.toModel(), nil
}

// UpdateDevice применяет телеметрию.
func (m *Mongo) UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (*models.Device, error) {
	const op = "storage/mongo/UpdateDevice"

	set := bson.D{{Key: "last_updated", Value: toMS(time.Now())}}
	if patch.WaterLevel != nil {
		set = append(set, bson.E{Key: "water_level", Value: *patch.WaterLevel})
	}
	if patch.IsPumpRunning != nil {
		set = append(set, bson.E{Key: "is_pump_running", Value: *patch.IsPumpRunning})
	}

	return m.modifyDevice(ctx, op, id, bson.D{{Key: "$set", Value: set}})
}

// TogglePump инвертирует состояние насоса одним pipeline-обновлением.
func (m *Mongo) TogglePump(ctx context.Context, id string) (*models.Device, error) {
	const op = "storage/mongo/TogglePump"

	update := mongodriver.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "is_pump_running", Value: bson.D{{Key: "$not", Value: bson.A{"$is_pump_running"}}}},
			{Key: "last_updated", Value: toMS(time.Now())},
		}}},
	}

	return m.modifyDevice(ctx, op, id, update)
}

func (m *Mongo) modifyDevice(ctx context.Context, op, id string, update any) (*models.Device, error) {
	var doc deviceDoc
	err := m.devices.FindOneAndUpdate(ctx, bson.D{{Key: "device_id", Value: id}}, update, returnAfter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.toModel(), nil
}
