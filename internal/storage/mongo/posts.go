package mongo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/storage"
)

type postDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	User         string             `bson:"user"`
	UserID       string             `bson:"user_id,omitempty"`
	Role         string             `bson:"role"`
	Initial      string             `bson:"initial"`
	Color        string             `bson:"color"`
	UserAvatar   string             `bson:"user_avatar,omitempty"`
	Text         string             `bson:"text"`
	MediaType    string             `bson:"media_type,omitempty"`
	MediaSrc     string             `bson:"media_src,omitempty"`
	MarketStatus string             `bson:"market_status,omitempty"`
	Reactions    []models.Reaction  `bson:"reactions"`
	Likes        int                `bson:"likes"`
	Comments     []models.Comment   `bson:"comments"`
	Participants []string           `bson:"participants"`
	Shares       int                `bson:"shares"`
	SharedPostID string             `bson:"shared_post_id,omitempty"`
	Version      int64              `bson:"version"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d *postDoc) toModel() models.Post {
	return models.Post{
		ID:           d.ID.Hex(),
		User:         d.User,
		UserID:       d.UserID,
		Role:         models.Role(d.Role),
		Initial:      d.Initial,
		Color:        d.Color,
		UserAvatar:   d.UserAvatar,
		Text:         d.Text,
		MediaType:    models.MediaType(d.MediaType),
		MediaSrc:     d.MediaSrc,
		MarketStatus: models.MarketStatus(d.MarketStatus),
		Reactions:    orEmpty(d.Reactions),
		Likes:        d.Likes,
		Comments:     orEmpty(d.Comments),
		Participants: orEmpty(d.Participants),
		Shares:       d.Shares,
		SharedPostID: d.SharedPostID,
		Version:      d.Version,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

// orEmpty заменяет nil на пустой срез: $push/$addToSet не работают с null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// encodeCursor кодирует пару (created_at, _id) в непрозрачный токен для клиента.
func encodeCursor(t time.Time, id primitive.ObjectID) string {
	raw := strconv.FormatInt(t.UTC().UnixNano(), 10) + "|" + id.Hex()

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor декодирует токен обратно в пару ключей.
func decodeCursor(token string) (time.Time, primitive.ObjectID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, primitive.NilObjectID, err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, primitive.NilObjectID, fmt.Errorf("bad parts")
	}

	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, primitive.NilObjectID, err
	}

	oid, err := primitive.ObjectIDFromHex(parts[1])
	if err != nil {
		return time.Time{}, primitive.NilObjectID, err
	}

	return time.Unix(0, nanos).UTC(), oid, nil
}

// limitOrDefault приводит запрошенный размер страницы к [Default, Max].
func (m *Mongo) limitOrDefault(pageSize int32) int64 {
	lim := pageSize
	if lim <= 0 {
		lim = m.cfg.Limits.Default
	}

	if lim > m.cfg.Limits.Max {
		lim = m.cfg.Limits.Max
	}

	return int64(lim)
}

// SavePost вставляет пост с нулевой версией и пустыми коллекциями.
func (m *Mongo) SavePost(ctx context.Context, post *models.Post) error {
	const op = "storage/mongo/SavePost"

	now := toMS(time.Now())
	doc := postDoc{
		User:         post.User,
		UserID:       post.UserID,
		Role:         string(post.Role),
		Initial:      post.Initial,
		Color:        post.Color,
		UserAvatar:   post.UserAvatar,
		Text:         post.Text,
		MediaType:    string(post.MediaType),
		MediaSrc:     post.MediaSrc,
		MarketStatus: string(post.MarketStatus),
		Reactions:    orEmpty(post.Reactions),
		Likes:        len(post.Reactions),
		Comments:     orEmpty(post.Comments),
		Participants: orEmpty(post.Participants),
		Shares:       post.Shares,
		SharedPostID: post.SharedPostID,
		CreatedAt:    now,
	}

	res, err := m.posts.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("%s: inserted id type", op)
	}

	post.ID = oid.Hex()
	post.Reactions = doc.Reactions
	post.Likes = doc.Likes
	post.Comments = doc.Comments
	post.Participants = doc.Participants
	post.Version = 0
	post.CreatedAt = now

	return nil
}

// PostByID возвращает пост; некорректный id трактуется как «нет такой записи».
func (m *Mongo) PostByID(ctx context.Context, id string) (*models.Post, error) {
	const op = "storage/mongo/PostByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc postDoc
	if err := m.posts.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// PostsByIDs возвращает найденные посты; битые и отсутствующие id пропускаются.
func (m *Mongo) PostsByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	const op = "storage/mongo/PostsByIDs"

	oids := lo.FilterMap(lo.Uniq(ids), func(id string, _ int) (primitive.ObjectID, bool) {
		oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
		return oid, err == nil
	})
	if len(oids) == 0 {
		return []models.Post{}, nil
	}

	items, err := m.findPosts(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// ListPosts возвращает страницу ленты.
// Сортировка: created_at DESC, _id DESC.
// При некорректном page_token — storage.ErrInvalidCursor.
func (m *Mongo) ListPosts(ctx context.Context, params models.ListParams) (*models.PostPage, error) {
	const op = "storage/mongo/ListPosts"

	limit := m.limitOrDefault(params.PageSize)

	filter := bson.D{}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	// Курсор "меньше" для DESC сортировки.
	if strings.TrimSpace(params.PageToken) != "" {
		t, oid, decErr := decodeCursor(params.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$lt", Value: t}}}},
			bson.D{
				{Key: "created_at", Value: t},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: oid}}},
			},
		}})
	}

	items, err := m.findPosts(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Полная страница — возможно, есть продолжение.
	var next string
	if n := len(items); n > 0 && int64(n) == limit {
		last := items[n-1]
		oid, _ := primitive.ObjectIDFromHex(last.ID)
		next = encodeCursor(last.CreatedAt, oid)
	}

	return &models.PostPage{
		Items:         items,
		NextPageToken: next,
	}, nil
}

// PostsByParticipant возвращает посты, в обсуждении которых участвовал name.
func (m *Mongo) PostsByParticipant(ctx context.Context, name string) ([]models.Post, error) {
	const op = "storage/mongo/PostsByParticipant"

	items, err := m.findPosts(ctx, bson.D{{Key: "participants", Value: name}}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (m *Mongo) findPosts(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]models.Post, error) {
	cur, err := m.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cur.Close(ctx)

	items := []models.Post{}
	for cur.Next(ctx) {
		var doc postDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}

		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return items, nil
}

// SaveThread — условная запись дерева обсуждения по версии документа.
func (m *Mongo) SaveThread(ctx context.Context, post *models.Post) error {
	const op = "storage/mongo/SaveThread"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(post.ID))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	reactions := orEmpty(post.Reactions)
	comments := orEmpty(post.Comments)
	participants := orEmpty(post.Participants)

	res, err := m.posts.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "version", Value: post.Version}},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "reactions", Value: reactions},
				{Key: "likes", Value: len(reactions)},
				{Key: "comments", Value: comments},
				{Key: "participants", Value: participants},
			}},
			{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		n, err := m.posts.CountDocuments(ctx, bson.D{{Key: "_id", Value: oid}})
		if err != nil {
			return fmt.Errorf("%s: count: %w", op, err)
		}

		if n == 0 {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}

	post.Likes = len(reactions)
	post.Version++

	return nil
}

// AddComment атомарно добавляет корневой комментарий ($push) и автора в участники.
func (m *Mongo) AddComment(ctx context.Context, postID string, comment models.Comment) (*models.Post, error) {
	const op = "storage/mongo/AddComment"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(postID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	comment.Reactions = orEmpty(comment.Reactions)
	comment.Replies = orEmpty(comment.Replies)
	comment.CreatedAt = toMS(comment.CreatedAt)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDoc
	err = m.posts.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "comments", Value: comment}}},
			{Key: "$addToSet", Value: bson.D{{Key: "participants", Value: comment.User}}},
			{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
		},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// IncShares атомарно увеличивает счётчик репостов.
func (m *Mongo) IncShares(ctx context.Context, id string) error {
	const op = "storage/mongo/IncShares"

	return m.updatePost(ctx, op, id, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "shares", Value: 1}, {Key: "version", Value: 1}}},
	})
}

// UpdateMirror перезаписывает синхронизируемые поля поста-зеркала.
func (m *Mongo) UpdateMirror(ctx context.Context, id string, patch models.MirrorPatch) error {
	const op = "storage/mongo/UpdateMirror"

	return m.updatePost(ctx, op, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "text", Value: patch.Text},
			{Key: "media_type", Value: string(patch.MediaType)},
			{Key: "media_src", Value: patch.MediaSrc},
			{Key: "market_status", Value: string(patch.MarketStatus)},
		}},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
	})
}

func (m *Mongo) updatePost(ctx context.Context, op, id string, update bson.D) error {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.posts.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetAuthorAvatar проставляет аватар всем постам автора.
func (m *Mongo) SetAuthorAvatar(ctx context.Context, name, avatar string) (int64, error) {
	const op = "storage/mongo/SetAuthorAvatar"

	res, err := m.posts.UpdateMany(ctx,
		bson.D{{Key: "user", Value: name}},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "user_avatar", Value: avatar}}},
			{Key: "$inc", Value: bson.D{{Key: "version", Value: 1}}},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.ModifiedCount, nil
}

// DeletePost удаляет пост.
func (m *Mongo) DeletePost(ctx context.Context, id string) error {
	const op = "storage/mongo/DeletePost"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.posts.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
