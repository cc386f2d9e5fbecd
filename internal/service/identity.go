package service

import (
	"context"
	"strings"

	"github.com/pribylovaa/agro-community/internal/models"
)

// Identity — пользователь, подтверждённый bearer-токеном.
type Identity struct {
	UserID string
	Role   models.Role
}

type identityKey struct{}

// WithIdentity кладёт подтверждённую личность в контекст запроса.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom достаёт подтверждённую личность из контекста.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}

// owns решает, может ли запрашивающий менять сущность владельца.
// Если у запроса есть токен, а у сущности сохранён ID владельца, сравниваются ID;
// иначе владелец определяется по имени.
func owns(ctx context.Context, ownerName, ownerID, requester string) bool {
	if id, ok := IdentityFrom(ctx); ok && ownerID != "" {
		return id.UserID == ownerID
	}

	requester = strings.TrimSpace(requester)

	return requester != "" && requester == ownerName
}

// hasRequester сообщает, представился ли запрашивающий (именем или токеном).
func hasRequester(ctx context.Context, requester string) bool {
	if _, ok := IdentityFrom(ctx); ok {
		return true
	}

	return strings.TrimSpace(requester) != ""
}

// callerID возвращает ID подтверждённого пользователя или пустую строку.
func callerID(ctx context.Context) string {
	id, _ := IdentityFrom(ctx)
	return id.UserID
}
