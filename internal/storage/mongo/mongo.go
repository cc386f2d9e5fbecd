// Package mongo реализует storage.Storage поверх MongoDB.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pribylovaa/agro-community/internal/config"
	"github.com/pribylovaa/agro-community/internal/storage"
)

const (
	usersCollection    = "users"
	postsCollection    = "posts"
	listingsCollection = "listings"
	devicesCollection  = "devices"
	defaultDBName      = "agro"
)

// Mongo - тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg      *config.Config
	client   *mongodriver.Client
	db       *mongodriver.Database
	users    *mongodriver.Collection
	posts    *mongodriver.Collection
	listings *mongodriver.Collection
	devices  *mongodriver.Collection
}

// New подключается к MongoDB, проверяет его, подготавливает коллекции и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DB.URL))

	m := &Mongo{
		cfg:      cfg,
		client:   cli,
		db:       db,
		users:    db.Collection(usersCollection),
		posts:    db.Collection(postsCollection),
		listings: db.Collection(listingsCollection),
		devices:  db.Collection(devicesCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping проверяет доступность primary (для readiness).
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ensureIndexes создает индексы:
//   - users: уникальный телефон;
//   - posts: лента (created_at desc, _id desc), автор, участники обсуждения;
//   - listings: created_at desc;
//   - devices: уникальный device_id.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	indexes := map[*mongodriver.Collection][]mongodriver.IndexModel{
		m.users: {
			{
				Keys:    bson.D{{Key: "phone", Value: 1}},
				Options: options.Index().SetName("phone_unique").SetUnique(true),
			},
		},
		m.posts: {
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("feed_created_desc"),
			},
			{
				Keys:    bson.D{{Key: "user", Value: 1}},
				Options: options.Index().SetName("author"),
			},
			{
				Keys:    bson.D{{Key: "participants", Value: 1}},
				Options: options.Index().SetName("participants"),
			},
		},
		m.listings: {
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}},
				Options: options.Index().SetName("created_desc"),
			},
		},
		m.devices: {
			{
				Keys:    bson.D{{Key: "device_id", Value: 1}},
				Options: options.Index().SetName("device_id_unique").SetUnique(true),
			},
		},
	}

	for coll, models := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo ensure indexes (%s): %w", coll.Name(), err)
		}
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддается расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}

// toMS приводит время к точности MongoDB DateTime (миллисекунды, UTC).
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Mongo)(nil)
