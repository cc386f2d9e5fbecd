package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/pribylovaa/agro-community/internal/metrics"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/pkg/log"
	"github.com/pribylovaa/agro-community/internal/storage"
	"github.com/pribylovaa/agro-community/internal/thread"
)

const (
	defaultPostColor = "green"

	// maxThreadAttempts — число попыток read-modify-write дерева обсуждения.
	maxThreadAttempts = 3
)

// errNoChange — мутация не изменила пост, запись не нужна.
var errNoChange = errors.New("no change")

// CreatePostInput — создание поста.
// Обязательны User и хотя бы одно из: Text, MediaSrc, SharedPostID.
type CreatePostInput struct {
	User         string
	Role         models.Role
	Initial      string
	Color        string
	UserAvatar   string
	Text         string
	MediaType    models.MediaType
	MediaSrc     string
	MarketStatus models.MarketStatus
	SharedPostID string
}

// NodeInput — новый комментарий или ответ.
type NodeInput struct {
	User       string
	UserAvatar string
	Text       string
}

// ShareInput — репост.
type ShareInput struct {
	User       string
	Initial    string
	Color      string
	UserAvatar string
	Text       string
}

// CreatePost создаёт пост.
//
// Умолчания: Role -> Farmer, Color -> green, Initial -> первая буква имени.
// Ошибки: ErrInvalidArgument, ErrInternal.
func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const op = "service/posts/CreatePost"

	in.User = strings.TrimSpace(in.User)
	lg := log.From(ctx).With("op", op, "user", in.User)

	if in.User == "" {
		lg.Warn("invalid argument: empty user")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Text = strings.TrimSpace(in.Text)
	in.MediaSrc = strings.TrimSpace(in.MediaSrc)
	in.SharedPostID = strings.TrimSpace(in.SharedPostID)

	if in.Text == "" && in.MediaSrc == "" && in.SharedPostID == "" {
		lg.Warn("invalid argument: empty post body")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := validatePostEnums(in.Role, in.MediaType, in.MarketStatus); err != nil {
		lg.Warn("invalid argument: " + err.Error())
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.MediaSrc != "" && in.MediaType == "" {
		in.MediaType = models.MediaImage
	}

	post := &models.Post{
		User:         in.User,
		UserID:       callerID(ctx),
		Role:         lo.Ternary(in.Role == "", models.RoleFarmer, in.Role),
		Initial:      lo.Ternary(strings.TrimSpace(in.Initial) == "", initialOf(in.User), strings.TrimSpace(in.Initial)),
		Color:        lo.Ternary(strings.TrimSpace(in.Color) == "", defaultPostColor, strings.TrimSpace(in.Color)),
		UserAvatar:   strings.TrimSpace(in.UserAvatar),
		Text:         in.Text,
		MediaType:    in.MediaType,
		MediaSrc:     in.MediaSrc,
		MarketStatus: in.MarketStatus,
		SharedPostID: in.SharedPostID,
	}

	if err := s.storage.SavePost(ctx, post); err != nil {
		return nil, storageErr(lg, op, "SavePost", err)
	}

	return post, nil
}

// ListPosts возвращает страницу ленты (сначала новые) с развёрнутыми репостами.
// Если исходный пост репоста удалён, SharedPost остаётся nil, ссылка сохраняется.
func (s *Service) ListPosts(ctx context.Context, params models.ListParams) (*models.PostPage, error) {
	const op = "service/posts/ListPosts"

	lg := log.From(ctx).With("op", op, "page_size", params.PageSize)

	if params.PageSize < 0 {
		lg.Warn("invalid argument: negative page_size")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.storage.ListPosts(ctx, params)
	if err != nil {
		return nil, storageErr(lg, op, "ListPosts", err)
	}

	if err := s.resolveShared(ctx, page.Items); err != nil {
		return nil, storageErr(lg, op, "PostsByIDs", err)
	}

	return page, nil
}

// GetPost возвращает пост по ID.
func (s *Service) GetPost(ctx context.Context, id string) (*models.Post, error) {
	const op = "service/posts/GetPost"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "post_id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.PostByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, "PostByID", err)
	}

	items := []models.Post{*post}
	if err := s.resolveShared(ctx, items); err != nil {
		return nil, storageErr(lg, op, "PostsByIDs", err)
	}

	return &items[0], nil
}

// ReactPost переключает реакцию пользователя на сам пост; likes = len(reactions).
func (s *Service) ReactPost(ctx context.Context, id, user, kind string) (*models.Post, error) {
	const op = "service/posts/ReactPost"

	id, user = strings.TrimSpace(id), strings.TrimSpace(user)
	lg := log.From(ctx).With("op", op, "post_id", id, "user", user)

	if id == "" || user == "" {
		lg.Warn("invalid argument: empty id or user")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.mutateThread(ctx, id, func(p *models.Post) error {
		p.Reactions = thread.Toggle(p.Reactions, user, kind)
		return nil
	})
	if err != nil {
		return nil, threadErr(lg, op, err)
	}

	return post, nil
}

// AddComment добавляет корневой комментарий атомарной операцией хранилища.
func (s *Service) AddComment(ctx context.Context, id string, in NodeInput) (*models.Post, error) {
	const op = "service/posts/AddComment"

	id = strings.TrimSpace(id)
	node, err := s.newNode(in)
	lg := log.From(ctx).With("op", op, "post_id", id, "user", node.User)

	if id == "" || err != nil {
		lg.Warn("invalid argument: empty id, user or text")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.AddComment(ctx, id, node)
	if err != nil {
		return nil, storageErr(lg, op, "AddComment", err)
	}

	return post, nil
}

// AddReply добавляет ответ в ветку корневого комментария rootID.
// Пустой targetID или targetID == rootID — ответ самому корню; иначе цель ищется
// только внутри ветки rootID. Ненайденный пост, корень или цель — ErrNotFound.
func (s *Service) AddReply(ctx context.Context, id, rootID, targetID string, in NodeInput) (*models.Post, error) {
	const op = "service/posts/AddReply"

	id, rootID, targetID = strings.TrimSpace(id), strings.TrimSpace(rootID), strings.TrimSpace(targetID)
	node, err := s.newNode(in)
	lg := log.From(ctx).With("op", op, "post_id", id, "root_id", rootID, "target_id", targetID)

	if id == "" || rootID == "" || err != nil {
		lg.Warn("invalid argument: empty id, root id, user or text")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.mutateThread(ctx, id, func(p *models.Post) error {
		return thread.AddReply(p.Comments, rootID, targetID, node)
	})
	if err != nil {
		return nil, threadErr(lg, op, err)
	}

	return post, nil
}

// ReactComment переключает реакцию на узле обсуждения любой глубины.
func (s *Service) ReactComment(ctx context.Context, id, nodeID, user, kind string) (*models.Post, error) {
	const op = "service/posts/ReactComment"

	id, nodeID, user = strings.TrimSpace(id), strings.TrimSpace(nodeID), strings.TrimSpace(user)
	lg := log.From(ctx).With("op", op, "post_id", id, "node_id", nodeID, "user", user)

	if id == "" || nodeID == "" || user == "" {
		lg.Warn("invalid argument: empty id, node id or user")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.mutateThread(ctx, id, func(p *models.Post) error {
		return thread.React(p.Comments, nodeID, user, kind)
	})
	if err != nil {
		return nil, threadErr(lg, op, err)
	}

	return post, nil
}

// SharePost создаёт репост с нулевыми счётчиками и увеличивает shares оригинала.
func (s *Service) SharePost(ctx context.Context, id string, in ShareInput) (*models.Post, error) {
	const op = "service/posts/SharePost"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "post_id", id, "user", in.User)

	if id == "" || strings.TrimSpace(in.User) == "" {
		lg.Warn("invalid argument: empty id or user")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	original, err := s.storage.PostByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, "PostByID", err)
	}

	post, err := s.CreatePost(ctx, CreatePostInput{
		User:         in.User,
		Role:         models.RoleFarmer,
		Initial:      in.Initial,
		Color:        in.Color,
		UserAvatar:   in.UserAvatar,
		Text:         in.Text,
		SharedPostID: original.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.IncShares(ctx, original.ID); err != nil {
		return nil, storageErr(lg, op, "IncShares", err)
	}

	original.Shares++
	post.SharedPost = original

	return post, nil
}

// DeletePost удаляет пост. Запрашивающий обязателен и должен быть автором.
func (s *Service) DeletePost(ctx context.Context, id, requester string) error {
	const op = "service/posts/DeletePost"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "post_id", id, "requester", requester)

	if id == "" || !hasRequester(ctx, requester) {
		lg.Warn("invalid argument: empty id or requester")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.PostByID(ctx, id)
	if err != nil {
		return storageErr(lg, op, "PostByID", err)
	}

	if !owns(ctx, post.User, post.UserID, requester) {
		lg.Warn("forbidden: not the author", "author", post.User)
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if err := s.storage.DeletePost(ctx, id); err != nil {
		return storageErr(lg, op, "DeletePost", err)
	}

	return nil
}

// mutateThread — оптимистичный read-modify-write поста.
// Читает пост, применяет fn и пишет результат при неизменной версии; при
// конкурентной записи повторяет до maxThreadAttempts раз, затем storage.ErrConflict.
// Ошибки fn и хранилища возвращаются как есть.
func (s *Service) mutateThread(ctx context.Context, id string, fn func(*models.Post) error) (*models.Post, error) {
	for attempt := 0; attempt < maxThreadAttempts; attempt++ {
		post, err := s.storage.PostByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := fn(post); err != nil {
			return nil, err
		}

		post.Participants = lo.Uniq(append(post.Participants, thread.Authors(post.Comments)...))

		err = s.storage.SaveThread(ctx, post)
		if err == nil {
			return post, nil
		}

		if !errors.Is(err, storage.ErrConflict) {
			return nil, err
		}

		metrics.ThreadConflicts.Inc()
		log.From(ctx).Debug("thread write conflict, retrying", "post_id", id, "attempt", attempt+1)
	}

	return nil, fmt.Errorf("thread %s: %d attempts: %w", id, maxThreadAttempts, storage.ErrConflict)
}

// threadErr транслирует ошибки mutateThread.
func threadErr(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, thread.ErrRootNotFound), errors.Is(err, thread.ErrNodeNotFound):
		lg.Warn("thread node not found", "err", err)
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		return storageErr(lg, op, "SaveThread", err)
	}
}

// resolveShared разворачивает ссылки на исходные посты одним запросом.
func (s *Service) resolveShared(ctx context.Context, items []models.Post) error {
	ids := lo.FilterMap(items, func(p models.Post, _ int) (string, bool) {
		return p.SharedPostID, p.SharedPostID != ""
	})
	if len(ids) == 0 {
		return nil
	}

	originals, err := s.storage.PostsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := lo.KeyBy(originals, func(p models.Post) string { return p.ID })
	for i := range items {
		if orig, ok := byID[items[i].SharedPostID]; ok {
			items[i].SharedPost = &orig
		}
	}

	return nil
}

func (s *Service) newNode(in NodeInput) (models.Comment, error) {
	user, text := strings.TrimSpace(in.User), strings.TrimSpace(in.Text)
	if user == "" || text == "" {
		return models.Comment{User: user}, ErrInvalidArgument
	}

	return thread.NewNode(uuid.NewString(), user, strings.TrimSpace(in.UserAvatar), text, s.now().UTC()), nil
}

func validatePostEnums(role models.Role, mt models.MediaType, ms models.MarketStatus) error {
	if role != "" && !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}

	switch mt {
	case "", models.MediaImage, models.MediaVideo:
	default:
		return fmt.Errorf("unknown media type %q", mt)
	}

	switch ms {
	case "", models.MarketAvailable, models.MarketSoldOut:
	default:
		return fmt.Errorf("unknown market status %q", ms)
	}

	return nil
}

// initialOf — заглавная первая буква имени.
func initialOf(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}

	return ""
}
