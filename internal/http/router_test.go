package http

// Тесты HTTP-слоя: роутер + хендлеры поверх настоящего service.Service
// и мока хранилища.
//
//  Проверяем:
//  - коды ответов (201 на создание, 200 на остальное) и формат ошибок;
//  - строгий разбор тел и валидацию DTO до обращения к хранилищу;
//  - курсор ленты в заголовке X-Next-Page-Token;
//  - имя запрашивающего из тела или query-параметра user;
//  - передачу replyToId до дерева обсуждения;
//  - отказ 401 на невалидный Bearer и запасные ответы погоды и медиа.

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/agro-community/internal/config"
	apierrors "github.com/pribylovaa/agro-community/internal/errors"
	"github.com/pribylovaa/agro-community/internal/http/handlers"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/service"
	"github.com/pribylovaa/agro-community/internal/storage"
	"github.com/pribylovaa/agro-community/internal/thread"
	"github.com/pribylovaa/agro-community/mocks"
)

var at = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   time.Hour,
			Issuer:     "agro-community",
			BcryptCost: 4,
		},
		Limits: config.LimitsConfig{Default: 50, Max: 300},
		Media: config.MediaConfig{
			MaxSizeBytes:        1024,
			AllowedContentTypes: []string{"image/png"},
		},
		Weather: config.WeatherConfig{
			DefaultLat:   24.8481,
			DefaultLon:   89.3730,
			LocationName: "Bogura, BD",
		},
		IoT: config.IoTConfig{DeviceID: "pump-001"},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ms := mocks.NewMockStorage(ctrl)
	svc := service.New(ms, testConfig())

	h := NewRouter(svc, Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Timeout:  5 * time.Second,
		BasePath: "/api",
	})

	return h, ms
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp.Error.Code
}

func TestRegister_Created(t *testing.T) {
	h, ms := newTestRouter(t)

	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = "u1"
			return nil
		})

	rec := do(t, h, http.MethodPost, "/api/auth/register",
		`{"name":"Rahim","phone":"+8801700000000","password":"secret","role":"Farmer","location":"Bogura"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var session models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	require.Equal(t, "u1", session.User.ID)
	require.NotContains(t, rec.Body.String(), "secret")
}

func TestRegister_RejectedBeforeStorage(t *testing.T) {
	h, _ := newTestRouter(t)

	cases := map[string]string{
		"unknown_role":  `{"name":"R","phone":"1","password":"p","role":"Wizard"}`,
		"missing_name":  `{"phone":"1","password":"p"}`,
		"unknown_field": `{"name":"R","phone":"1","password":"p","admin":true}`,
		"broken_json":   `{"name":`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/auth/register", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "invalid_argument", errorCode(t, rec))
		})
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/auth/login", `{"phone":"","password":""}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "unauthenticated", errorCode(t, rec))
}

func TestListPosts_ArrayAndCursorHeader(t *testing.T) {
	h, ms := newTestRouter(t)

	ms.EXPECT().ListPosts(gomock.Any(), models.ListParams{PageSize: 2, PageToken: "tok"}).
		Return(&models.PostPage{
			Items:         []models.Post{{ID: "p2", User: "B"}, {ID: "p1", User: "A"}},
			NextPageToken: "next",
		}, nil)

	rec := do(t, h, http.MethodGet, "/api/posts?page_size=2&page_token=tok", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "next", rec.Header().Get(handlers.HeaderNextPageToken))

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	require.Equal(t, "p2", posts[0].ID)
}

func TestListPosts_EmptyIsArray(t *testing.T) {
	h, ms := newTestRouter(t)

	ms.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(&models.PostPage{}, nil)

	rec := do(t, h, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get(handlers.HeaderNextPageToken))
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPosts_BadParams(t *testing.T) {
	h, ms := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/posts?page_size=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	ms.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidCursor)

	rec = do(t, h, http.MethodGet, "/api/posts?page_token=garbage", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPost_NotFound(t *testing.T) {
	h, ms := newTestRouter(t)

	ms.EXPECT().PostByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	rec := do(t, h, http.MethodGet, "/api/posts/ghost", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not_found", errorCode(t, rec))
}

func TestCreatePost_Created(t *testing.T) {
	h, ms := newTestRouter(t)

	ms.EXPECT().SavePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Post) error {
			p.ID = "p1"
			return nil
		})

	rec := do(t, h, http.MethodPost, "/api/posts",
		`{"user":"Rahim","role":"Farmer","initial":"R","color":"green","text":"Rice is ready"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	require.Equal(t, "p1", post.ID)
	require.Equal(t, "Rice is ready", post.Text)
}

func TestCreatePost_BadMediaType(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/posts", `{"user":"R","text":"t","mediaType":"gif"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddReply_UsesReplyToID(t *testing.T) {
	h, ms := newTestRouter(t)

	root := thread.NewNode("c1", "Alice", "", "root", at)
	root.Replies = []models.Comment{thread.NewNode("r1", "Bob", "", "reply", at)}
	post := &models.Post{ID: "p1", User: "Alice", Comments: []models.Comment{root}, Version: 3}

	ms.EXPECT().PostByID(gomock.Any(), "p1").Return(post, nil)
	ms.EXPECT().SaveThread(gomock.Any(), gomock.Any()).Return(nil)

	rec := do(t, h, http.MethodPost, "/api/posts/p1/comments/c1/reply",
		`{"user":"Carol","text":"agree","replyToId":"r1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Comments[0].Replies, 1)
	require.Len(t, got.Comments[0].Replies[0].Replies, 1)
	require.Equal(t, "Carol", got.Comments[0].Replies[0].Replies[0].User)
}

func TestAddReply_UnknownTarget(t *testing.T) {
	h, ms := newTestRouter(t)

	post := &models.Post{ID: "p1", Comments: []models.Comment{thread.NewNode("c1", "Alice", "", "root", at)}}
	ms.EXPECT().PostByID(gomock.Any(), "p1").Return(post, nil)

	rec := do(t, h, http.MethodPost, "/api/posts/p1/comments/c1/reply",
		`{"user":"Carol","text":"agree","replyToId":"ghost"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePost_RequesterFromQuery(t *testing.T) {
	h, ms := newTestRouter(t)

	ms.EXPECT().PostByID(gomock.Any(), "p1").Return(&models.Post{ID: "p1", User: "Alice"}, nil)
	ms.EXPECT().DeletePost(gomock.Any(), "p1").Return(nil)

	rec := do(t, h, http.MethodDelete, "/api/posts/p1?user=Alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Post deleted successfully"}`, rec.Body.String())
}

func TestDeletePost_NotOwner(t *testing.T) {
	h, ms := newTestRouter(t)

	ms.EXPECT().PostByID(gomock.Any(), "p1").Return(&models.Post{ID: "p1", User: "Alice"}, nil)

	rec := do(t, h, http.MethodDelete, "/api/posts/p1", `{"user":"Mallory"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "permission_denied", errorCode(t, rec))
}

func TestDeletePost_NoRequester(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodDelete, "/api/posts/p1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateListing_SoldOutOnly(t *testing.T) {
	h, ms := newTestRouter(t)

	listing := &models.Listing{ID: "l1", User: "Rahim", Name: "Rice", Qty: 50, Price: 40, Contact: "017"}
	ms.EXPECT().ListingByID(gomock.Any(), "l1").Return(listing, nil)
	ms.EXPECT().UpdateListing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.Listing) error {
			require.True(t, l.SoldOut)
			return nil
		})

	rec := do(t, h, http.MethodPut, "/api/marketplace/l1?user=Rahim", `{"soldOut":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.SoldOut)
}

func TestUpdateListing_NoRequester(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPut, "/api/marketplace/l1", `{"soldOut":true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateListing_NegativePrice(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/marketplace",
		`{"user":"Rahim","name":"Rice","qty":1,"price":-5,"contact":"017"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteListing_Message(t *testing.T) {
	h, ms := newTestRouter(t)

	ms.EXPECT().ListingByID(gomock.Any(), "l1").Return(&models.Listing{ID: "l1", User: "Rahim"}, nil)
	ms.EXPECT().DeleteListing(gomock.Any(), "l1").Return(nil)

	rec := do(t, h, http.MethodDelete, "/api/marketplace/l1", `{"user":"Rahim"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Crop deleted successfully"}`, rec.Body.String())
}

func TestDeviceData_WaterLevelRange(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/iot/data", `{"waterLevel":140}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeather_MockAndBadCoords(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/weather", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var reading models.WeatherReading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reading))
	require.Equal(t, models.WeatherMock, reading.Source)
	require.Equal(t, "Bogura, BD", reading.Location)

	for _, q := range []string{"lat=north", "lat=NaN&lon=NaN", "lon=Inf", "lat=91"} {
		rec = do(t, h, http.MethodGet, "/api/weather?"+q, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestUploadMedia_FallbackWithoutStorage(t *testing.T) {
	h, _ := newTestRouter(t)

	// 1x1 PNG-подобная полезная нагрузка; содержимое не декодируется как изображение.
	dataURL := "data:image/png;base64,iVBORw0KGgo="

	rec := do(t, h, http.MethodPost, "/api/media", `{"image":"`+dataURL+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var media models.Media
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &media))
	require.True(t, media.Fallback)
	require.Equal(t, dataURL, media.URL)

	rec = do(t, h, http.MethodPost, "/api/media", `{"image":"data:text/plain;base64,aGk="}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthBearer_InvalidTokenRejected(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
