package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/agro-community/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (телефон пользователя).
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict — документ изменён конкурентно (не совпала версия).
	ErrConflict = errors.New("conflict")
	// ErrInvalidCursor — битый/чужой page_token.
	ErrInvalidCursor = errors.New("invalid cursor")
)

// UserStorage — хранилище учётных записей.
type UserStorage interface {
	// SaveUser вставляет пользователя и проставляет ему ID.
	// Занятый телефон — ErrAlreadyExists.
	SaveUser(ctx context.Context, user *models.User) error

	// UserByPhone ищет пользователя по телефону. Нет записи — ErrNotFound.
	UserByPhone(ctx context.Context, phone string) (*models.User, error)

	// UserByID ищет пользователя по ID. Нет записи — ErrNotFound.
	UserByID(ctx context.Context, id string) (*models.User, error)

	// UpdateUser применяет частичное обновление и возвращает новое состояние.
	// Нет записи — ErrNotFound.
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}

// PostStorage — хранилище ленты.
//
// Каждая запись в документ поста увеличивает его version, поэтому SaveThread
// обнаруживает любое конкурентное изменение, произошедшее после чтения.
type PostStorage interface {
	// SavePost вставляет пост и проставляет ему ID.
	SavePost(ctx context.Context, post *models.Post) error

	// PostByID возвращает пост. Нет записи — ErrNotFound.
	PostByID(ctx context.Context, id string) (*models.Post, error)

	// PostsByIDs возвращает найденные посты из набора; отсутствующие пропускаются.
	PostsByIDs(ctx context.Context, ids []string) ([]models.Post, error)

	// ListPosts возвращает страницу ленты, сначала новые (created_at DESC, _id DESC).
	// Некорректный page_token — ErrInvalidCursor.
	ListPosts(ctx context.Context, params models.ListParams) (*models.PostPage, error)

	// PostsByParticipant возвращает посты, в дереве обсуждения которых есть узел автора name.
	PostsByParticipant(ctx context.Context, name string) ([]models.Post, error)

	// SaveThread записывает реакции поста, дерево обсуждения и список участников,
	// если версия в хранилище равна post.Version. Likes пересчитывается из реакций.
	// Иная версия — ErrConflict, нет записи — ErrNotFound.
	SaveThread(ctx context.Context, post *models.Post) error

	// AddComment атомарно добавляет корневой комментарий и возвращает пост.
	// Нет записи — ErrNotFound.
	AddComment(ctx context.Context, postID string, comment models.Comment) (*models.Post, error)

	// IncShares атомарно увеличивает счётчик репостов. Нет записи — ErrNotFound.
	IncShares(ctx context.Context, id string) error

	// UpdateMirror перезаписывает текст, медиа и статус поста-зеркала.
	// Автор, реакции и комментарии не меняются. Нет записи — ErrNotFound.
	UpdateMirror(ctx context.Context, id string, patch models.MirrorPatch) error

	// SetAuthorAvatar проставляет аватар всем постам автора name.
	// Возвращает число изменённых документов.
	SetAuthorAvatar(ctx context.Context, name, avatar string) (int64, error)

	// DeletePost удаляет пост. Нет записи — ErrNotFound.
	DeletePost(ctx context.Context, id string) error
}

// ListingStorage — хранилище объявлений маркетплейса.
type ListingStorage interface {
	// SaveListing вставляет объявление и проставляет ему ID.
	SaveListing(ctx context.Context, listing *models.Listing) error

	// ListingByID возвращает объявление. Нет записи — ErrNotFound.
	ListingByID(ctx context.Context, id string) (*models.Listing, error)

	// ListListings возвращает все объявления, сначала новые.
	ListListings(ctx context.Context) ([]models.Listing, error)

	// UpdateListing перезаписывает изменяемые поля объявления. Нет записи — ErrNotFound.
	UpdateListing(ctx context.Context, listing *models.Listing) error

	// SetListingPost проставляет (или очищает пустой строкой) ссылку на пост-зеркало.
	SetListingPost(ctx context.Context, id, postID string) error

	// DeleteListing удаляет объявление. Нет записи — ErrNotFound.
	DeleteListing(ctx context.Context, id string) error
}

// DeviceStorage — хранилище состояния демонстрационного устройства.
type DeviceStorage interface {
	// EnsureDevice возвращает устройство, создавая его из def при отсутствии.
	EnsureDevice(ctx context.Context, def models.Device) (*models.Device, error)

	// UpdateDevice применяет телеметрию и обновляет last_updated. Нет записи — ErrNotFound.
	UpdateDevice(ctx context.Context, id string, patch models.DevicePatch) (*models.Device, error)

	// TogglePump атомарно инвертирует состояние насоса. Нет записи — ErrNotFound.
	TogglePump(ctx context.Context, id string) (*models.Device, error)
}

// Storage объединяет все документные хранилища сервиса.
type Storage interface {
	UserStorage
	PostStorage
	ListingStorage
	DeviceStorage

	// Close закрывает соединения/ресурсы хранилища.
	Close(ctx context.Context) error
}
