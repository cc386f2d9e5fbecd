package mongo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pribylovaa/agro-community/internal/config"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/storage"
	"github.com/pribylovaa/agro-community/internal/thread"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Без GO_TEST_INTEGRATION выполняются только чистые тесты (курсор, лимиты).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	_ = os.Setenv("DATABASE_URL", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

func skipUnlessIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("set GO_TEST_INTEGRATION=1 to run mongo integration tests")
	}
}

// newTestConfig создаёт конфиг с отдельной тестовой БД.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	baseURL := os.Getenv("DATABASE_URL")
	if baseURL == "" {
		baseURL = "mongodb://localhost:27017"
	}

	dbName := "agro_test_" + uuid.NewString()
	if baseURL[len(baseURL)-1] == '/' {
		baseURL += dbName
	} else {
		baseURL += "/" + dbName
	}

	return &config.Config{
		DB:     config.DBConfig{URL: baseURL},
		Limits: config.LimitsConfig{Default: 2, Max: 100},
	}
}

// mustNewMongo подключается к тестовой БД и регистрирует очистку.
func mustNewMongo(t *testing.T) *Mongo {
	t.Helper()
	skipUnlessIntegration(t)

	cfg := newTestConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("cannot connect to MongoDB in container: %v (DATABASE_URL=%s)", err, cfg.DB.URL)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

func TestEncodeDecodeCursor(t *testing.T) {
	now := time.Now().UTC()
	oid := primitive.NewObjectID()

	gotT, gotID, err := decodeCursor(encodeCursor(now, oid))
	require.NoError(t, err)
	require.True(t, gotT.Equal(now))
	require.Equal(t, oid, gotID)

	for _, bad := range []string{"!!!", "", "bm8tc2VwYXJhdG9y", "MTIzfHp6eg"} {
		_, _, err := decodeCursor(bad)
		require.Error(t, err, bad)
	}
}

func TestLimitOrDefault(t *testing.T) {
	m := &Mongo{cfg: &config.Config{Limits: config.LimitsConfig{Default: 10, Max: 50}}}

	tests := []struct {
		name string
		in   int32
		want int64
	}{
		{"zero->default", 0, 10},
		{"negative->default", -5, 10},
		{"less-than-max", 25, 25},
		{"more-than-max->cap", 200, 50},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, m.limitOrDefault(tt.in), tt.name)
	}
}

func TestDatabaseFromURI(t *testing.T) {
	require.Equal(t, "farm", databaseFromURI("mongodb://localhost:27017/farm"))
	require.Equal(t, defaultDBName, databaseFromURI("mongodb://localhost:27017"))
	require.Equal(t, defaultDBName, databaseFromURI("mongodb://localhost:27017/"))
}

func TestUsers_SaveDuplicatePhoneAndUpdate(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	u := &models.User{Name: "Rahim", Phone: "01700000000", PasswordHash: "h", Role: models.RoleFarmer}
	require.NoError(t, m.SaveUser(ctx, u))
	require.NotEmpty(t, u.ID)

	err := m.SaveUser(ctx, &models.User{Name: "Other", Phone: "01700000000", PasswordHash: "h", Role: models.RoleBuyer})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	got, err := m.UserByPhone(ctx, "01700000000")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "h", got.PasswordHash)

	loc := "Bogura"
	upd, err := m.UpdateUser(ctx, u.ID, models.UserPatch{Location: &loc})
	require.NoError(t, err)
	require.Equal(t, "Bogura", upd.Location)
	require.Equal(t, "Rahim", upd.Name)

	_, err = m.UserByID(ctx, "deadbeef")
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = m.UpdateUser(ctx, primitive.NewObjectID().Hex(), models.UserPatch{Location: &loc})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPosts_ListPaginationAndOrder(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.SavePost(ctx, &models.Post{User: "u", Text: fmt.Sprintf("post %d", i)}))
		time.Sleep(10 * time.Millisecond)
	}

	p1, err := m.ListPosts(ctx, models.ListParams{PageSize: 2})
	require.NoError(t, err)
	require.Len(t, p1.Items, 2)
	require.NotEmpty(t, p1.NextPageToken)
	require.Equal(t, "post 2", p1.Items[0].Text)
	require.False(t, p1.Items[0].CreatedAt.Before(p1.Items[1].CreatedAt))

	p2, err := m.ListPosts(ctx, models.ListParams{PageSize: 2, PageToken: p1.NextPageToken})
	require.NoError(t, err)
	require.Len(t, p2.Items, 1)
	require.Empty(t, p2.NextPageToken)

	_, err = m.ListPosts(ctx, models.ListParams{PageToken: "!!!"})
	require.ErrorIs(t, err, storage.ErrInvalidCursor)
}

func TestPosts_SaveThreadDetectsConcurrentWrite(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	p := &models.Post{User: "Alice", Text: "hello"}
	require.NoError(t, m.SavePost(ctx, p))

	a, err := m.PostByID(ctx, p.ID)
	require.NoError(t, err)
	b, err := m.PostByID(ctx, p.ID)
	require.NoError(t, err)

	a.Reactions = thread.Toggle(a.Reactions, "Bob", "like")
	require.NoError(t, m.SaveThread(ctx, a))
	require.EqualValues(t, 1, a.Version)
	require.Equal(t, 1, a.Likes)

	// b прочитан до записи a — его версия устарела.
	b.Reactions = thread.Toggle(b.Reactions, "Carol", "like")
	require.ErrorIs(t, m.SaveThread(ctx, b), storage.ErrConflict)

	got, err := m.PostByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, []models.Reaction{{User: "Bob", Type: "like"}}, got.Reactions)

	ghost := &models.Post{ID: primitive.NewObjectID().Hex()}
	require.ErrorIs(t, m.SaveThread(ctx, ghost), storage.ErrNotFound)
}

func TestPosts_AddCommentBumpsVersion(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	p := &models.Post{User: "Alice", Text: "hello"}
	require.NoError(t, m.SavePost(ctx, p))

	stale, err := m.PostByID(ctx, p.ID)
	require.NoError(t, err)

	out, err := m.AddComment(ctx, p.ID, thread.NewNode(uuid.NewString(), "Bob", "", "hi", time.Now()))
	require.NoError(t, err)
	require.Len(t, out.Comments, 1)
	require.Equal(t, []string{"Bob"}, out.Participants)
	require.EqualValues(t, 1, out.Version)

	// Комментарий не должен потеряться при записи устаревшей копии.
	require.ErrorIs(t, m.SaveThread(ctx, stale), storage.ErrConflict)

	_, err = m.AddComment(ctx, primitive.NewObjectID().Hex(), thread.NewNode("x", "Bob", "", "hi", time.Now()))
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPosts_AvatarIndexesAndMirror(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	own := &models.Post{User: "Alice", Text: "mine"}
	other := &models.Post{User: "Bob", Text: "theirs", Participants: []string{"Alice"}}
	require.NoError(t, m.SavePost(ctx, own))
	require.NoError(t, m.SavePost(ctx, other))

	n, err := m.SetAuthorAvatar(ctx, "Alice", "https://cdn/a.png")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := m.PostsByParticipant(ctx, "Alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, other.ID, got[0].ID)

	require.NoError(t, m.UpdateMirror(ctx, own.ID, models.MirrorPatch{Text: "new", MarketStatus: models.MarketSoldOut}))
	require.NoError(t, m.IncShares(ctx, own.ID))

	after, err := m.PostByID(ctx, own.ID)
	require.NoError(t, err)
	require.Equal(t, "new", after.Text)
	require.Equal(t, models.MarketSoldOut, after.MarketStatus)
	require.Equal(t, 1, after.Shares)
	require.Equal(t, "https://cdn/a.png", after.UserAvatar)

	byIDs, err := m.PostsByIDs(ctx, []string{own.ID, "bad", own.ID, primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	require.Len(t, byIDs, 1)

	require.NoError(t, m.DeletePost(ctx, own.ID))
	require.ErrorIs(t, m.DeletePost(ctx, own.ID), storage.ErrNotFound)
	require.ErrorIs(t, m.IncShares(ctx, own.ID), storage.ErrNotFound)
}

func TestListings_CRUD(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	first := &models.Listing{User: "Alice", Name: "Rice", Qty: 100, Price: 40}
	require.NoError(t, m.SaveListing(ctx, first))
	time.Sleep(10 * time.Millisecond)
	second := &models.Listing{User: "Bob", Name: "Potato", Qty: 50, Price: 25}
	require.NoError(t, m.SaveListing(ctx, second))

	all, err := m.ListListings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)

	first.Price = 45
	first.SoldOut = true
	require.NoError(t, m.UpdateListing(ctx, first))

	require.NoError(t, m.SetListingPost(ctx, first.ID, "p1"))
	got, err := m.ListingByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, 45.0, got.Price)
	require.True(t, got.SoldOut)
	require.Equal(t, "p1", got.CommunityPostID)
	require.Equal(t, "Alice", got.User)

	require.NoError(t, m.SetListingPost(ctx, first.ID, ""))
	got, err = m.ListingByID(ctx, first.ID)
	require.NoError(t, err)
	require.Empty(t, got.CommunityPostID)

	require.NoError(t, m.DeleteListing(ctx, first.ID))
	_, err = m.ListingByID(ctx, first.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, m.UpdateListing(ctx, first), storage.ErrNotFound)
	require.ErrorIs(t, m.DeleteListing(ctx, "nope"), storage.ErrNotFound)
}

func TestDevices_EnsureToggleUpdate(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	def := models.Device{DeviceID: "pump-001", WaterLevel: 72}

	d, err := m.EnsureDevice(ctx, def)
	require.NoError(t, err)
	require.Equal(t, 72.0, d.WaterLevel)
	require.False(t, d.IsPumpRunning)

	d, err = m.TogglePump(ctx, "pump-001")
	require.NoError(t, err)
	require.True(t, d.IsPumpRunning)

	level := 40.5
	d, err = m.UpdateDevice(ctx, "pump-001", models.DevicePatch{WaterLevel: &level})
	require.NoError(t, err)
	require.Equal(t, 40.5, d.WaterLevel)
	require.True(t, d.IsPumpRunning)

	// Повторный EnsureDevice не сбрасывает состояние.
	d, err = m.EnsureDevice(ctx, def)
	require.NoError(t, err)
	require.Equal(t, 40.5, d.WaterLevel)

	_, err = m.TogglePump(ctx, "ghost")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}
