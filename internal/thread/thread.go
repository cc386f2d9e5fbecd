// Package thread реализует операции над деревом обсуждения поста.
//
// Лес обсуждения — упорядоченный список корневых комментариев, каждый из
// которых возглавляет дерево ответов произвольной глубины. Все функции
// работают в памяти над уже прочитанным документом: поиск закрыт на отказ
// (ErrRootNotFound/ErrNodeNotFound), ответы никогда не вставляются «куда-нибудь».
//
// Порядок обхода — в глубину, дети в порядке вставки.
package thread

import (
	"errors"
	"time"

	"github.com/samber/lo"

	"github.com/pribylovaa/agro-community/internal/models"
)

var (
	// ErrRootNotFound — корневой комментарий с указанным id отсутствует.
	ErrRootNotFound = errors.New("root comment not found")
	// ErrNodeNotFound — узел с указанным id отсутствует в области поиска.
	ErrNodeNotFound = errors.New("comment node not found")
)

// NewNode создаёт лист дерева с пустыми реакциями и ответами.
func NewNode(id, user, avatar, text string, at time.Time) models.Comment {
	return models.Comment{
		ID:         id,
		User:       user,
		UserAvatar: avatar,
		Text:       text,
		Reactions:  []models.Reaction{},
		Replies:    []models.Comment{},
		CreatedAt:  at,
	}
}

// Find ищет узел во всём лесе: сначала среди корней, затем в поддереве каждого корня.
func Find(forest []models.Comment, id string) *models.Comment {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
	}

	for i := range forest {
		if n := findIn(forest[i].Replies, id); n != nil {
			return n
		}
	}

	return nil
}

// FindIn ищет узел в поддереве root, включая сам root.
func FindIn(root *models.Comment, id string) *models.Comment {
	if root == nil {
		return nil
	}

	if root.ID == id {
		return root
	}

	return findIn(root.Replies, id)
}

func findIn(nodes []models.Comment, id string) *models.Comment {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}

		if n := findIn(nodes[i].Replies, id); n != nil {
			return n
		}
	}

	return nil
}

// root возвращает корневой комментарий по id (только верхний уровень).
func root(forest []models.Comment, id string) *models.Comment {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
	}

	return nil
}

// AddReply добавляет reply в поддерево корня rootID.
//   - targetID пуст или равен rootID — ответ добавляется прямо в корень;
//   - иначе цель ищется только внутри поддерева корня;
//   - ненайденная цель — ErrNodeNotFound, лес не меняется.
func AddReply(forest []models.Comment, rootID, targetID string, reply models.Comment) error {
	r := root(forest, rootID)
	if r == nil {
		return ErrRootNotFound
	}

	target := r
	if targetID != "" && targetID != rootID {
		target = findIn(r.Replies, targetID)
		if target == nil {
			return ErrNodeNotFound
		}
	}

	target.Replies = append(target.Replies, reply)
	return nil
}

// React переключает реакцию user на узле nodeID в любом месте леса.
func React(forest []models.Comment, nodeID, user, kind string) error {
	n := Find(forest, nodeID)
	if n == nil {
		return ErrNodeNotFound
	}

	n.Reactions = Toggle(n.Reactions, user, kind)
	return nil
}

// Toggle применяет реакцию к набору и возвращает новый набор:
//   - реакции нет — добавляется;
//   - реакция того же вида — снимается;
//   - реакция другого вида — заменяется на месте, порядок набора сохраняется.
//
// Дубли одного автора из старых данных схлопываются в первую запись. Входной срез не меняется.
func Toggle(reactions []models.Reaction, user, kind string) []models.Reaction {
	if kind == "" {
		kind = models.DefaultReaction
	}

	out := make([]models.Reaction, 0, len(reactions)+1)
	seen := false

	for _, r := range reactions {
		if r.User != user {
			out = append(out, r)
			continue
		}

		if seen {
			continue
		}
		seen = true

		if r.Type != kind {
			out = append(out, models.Reaction{User: user, Type: kind})
		}
	}

	if !seen {
		out = append(out, models.Reaction{User: user, Type: kind})
	}

	return out
}

// SetAvatar проставляет avatar всем узлам автора name на любой глубине.
// Возвращает количество изменённых узлов.
func SetAvatar(forest []models.Comment, name, avatar string) int {
	touched := 0
	for i := range forest {
		if forest[i].User == name && forest[i].UserAvatar != avatar {
			forest[i].UserAvatar = avatar
			touched++
		}
		touched += SetAvatar(forest[i].Replies, name, avatar)
	}

	return touched
}

// Authors возвращает уникальные имена авторов леса в порядке обхода.
func Authors(forest []models.Comment) []string {
	var names []string
	walk(forest, func(c *models.Comment) { names = append(names, c.User) })

	return lo.Uniq(names)
}

// Count возвращает число узлов леса.
func Count(forest []models.Comment) int {
	n := 0
	walk(forest, func(*models.Comment) { n++ })

	return n
}

func walk(nodes []models.Comment, fn func(*models.Comment)) {
	for i := range nodes {
		fn(&nodes[i])
		walk(nodes[i].Replies, fn)
	}
}
