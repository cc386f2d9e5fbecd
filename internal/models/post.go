package models

import "time"

// DefaultReaction — вид реакции, если клиент его не передал.
const DefaultReaction = "like"

// MediaType — тип вложения поста.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MarketStatus — пометка поста-зеркала объявления.
type MarketStatus string

const (
	MarketAvailable MarketStatus = "available"
	MarketSoldOut   MarketStatus = "sold-out"
)

// Reaction — пара (автор, вид). На одну сущность у автора не более одной реакции.
type Reaction struct {
	User string `json:"user" bson:"user"`
	Type string `json:"type" bson:"type"`
}

// Comment — узел дерева обсуждения поста.
// Корневой комментарий и ответ любой глубины имеют одну и ту же форму:
// у каждого узла свой набор реакций и упорядоченный список ответов.
type Comment struct {
	ID         string     `json:"id" bson:"id"`
	User       string     `json:"user" bson:"user"`
	UserAvatar string     `json:"userAvatar,omitempty" bson:"user_avatar,omitempty"`
	Text       string     `json:"text" bson:"text"`
	Reactions  []Reaction `json:"reactions" bson:"reactions"`
	Replies    []Comment  `json:"replies" bson:"replies"`
	CreatedAt  time.Time  `json:"createdAt" bson:"created_at"`
}

// Post — запись ленты.
// Важно:
//   - Likes всегда равен len(Reactions);
//   - Participants — имена авторов всех узлов дерева (для каскада аватара);
//   - Version растёт на каждой записи и защищает read-modify-write дерева;
//   - SharedPost заполняется только при чтении ленты.
type Post struct {
	ID           string       `json:"id"`
	User         string       `json:"user"`
	UserID       string       `json:"userId,omitempty"`
	Role         Role         `json:"role"`
	Initial      string       `json:"initial"`
	Color        string       `json:"color"`
	UserAvatar   string       `json:"userAvatar,omitempty"`
	Text         string       `json:"text"`
	MediaType    MediaType    `json:"mediaType,omitempty"`
	MediaSrc     string       `json:"mediaSrc,omitempty"`
	MarketStatus MarketStatus `json:"marketStatus,omitempty"`
	Reactions    []Reaction   `json:"reactions"`
	Likes        int          `json:"likes"`
	Comments     []Comment    `json:"commentsList"`
	Participants []string     `json:"-"`
	Shares       int          `json:"shares"`
	SharedPostID string       `json:"sharedPostId,omitempty"`
	SharedPost   *Post        `json:"sharedPost,omitempty"`
	Version      int64        `json:"-"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// MirrorPatch — поля поста-зеркала, синхронизируемые с объявлением.
type MirrorPatch struct {
	Text         string
	MediaType    MediaType
	MediaSrc     string
	MarketStatus MarketStatus
}

// ListParams — базовые параметры постраничной выдачи.
type ListParams struct {
	PageSize  int32
	PageToken string
}

// PostPage — результат постраничной выдачи ленты.
type PostPage struct {
	Items         []Post
	NextPageToken string
}
