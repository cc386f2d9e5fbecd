package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/agro-community/internal/metrics"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/pkg/log"
	"github.com/pribylovaa/agro-community/internal/pkg/redact"
	"github.com/pribylovaa/agro-community/internal/storage"
	"github.com/pribylovaa/agro-community/internal/thread"
)

// RegisterInput — данные регистрации.
type RegisterInput struct {
	Name     string
	Phone    string
	Password string
	Role     models.Role
	Location string
	Avatar   string
}

// Register регистрирует пользователя и сразу выпускает сессионный токен.
//
// Валидация: name, phone, password обязательны; role из закрытого набора (пусто -> Farmer).
// Ошибки: ErrInvalidArgument, ErrAlreadyExists (телефон занят), ErrInternal.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Session, error) {
	const op = "service/auth/Register"

	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)

	lg := log.From(ctx).With("op", op, "phone", redact.Phone(in.Phone))

	if in.Name == "" || in.Phone == "" || in.Password == "" {
		lg.Warn("invalid argument: name, phone and password are required")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Role == "" {
		in.Role = models.RoleFarmer
	}

	if !in.Role.Valid() {
		lg.Warn("invalid argument: unknown role", "role", in.Role)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.Auth.BcryptCost)
	if err != nil {
		lg.Error("password hash failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	user := &models.User{
		Name:         in.Name,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         in.Role,
		Location:     strings.TrimSpace(in.Location),
		Avatar:       strings.TrimSpace(in.Avatar),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("phone already registered")
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		lg.Error("storage error on SaveUser", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return s.issueSession(ctx, user)
}

// Login выполняет вход по телефону и паролю.
// Отсутствие пользователя и неверный пароль неразличимы: ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, phone, password string) (*models.Session, error) {
	const op = "service/auth/Login"

	phone = strings.TrimSpace(phone)
	lg := log.From(ctx).With("op", op, "phone", redact.Phone(phone))

	if phone == "" || password == "" {
		lg.Warn("invalid credentials: empty phone or password")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("invalid credentials")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		lg.Error("storage error on UserByPhone", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		lg.Warn("invalid credentials")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return s.issueSession(ctx, user)
}

// UpdateProfile применяет частичное обновление профиля.
//
// Если запрос подтверждён токеном другого пользователя — ErrForbidden.
// Если изменился аватар, он каскадно проставляется постам пользователя и всем
// его узлам в обсуждениях на любой глубине. Каскад best-effort: его ошибки
// логируются, обновлённый профиль возвращается.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	const op = "service/auth/UpdateProfile"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "user_id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if caller, ok := IdentityFrom(ctx); ok && caller.UserID != id {
		lg.Warn("forbidden: token belongs to another user", "caller_id", caller.UserID)
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if patch.Name != nil {
		if *patch.Name = strings.TrimSpace(*patch.Name); *patch.Name == "" {
			lg.Warn("invalid argument: empty name")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	if patch.Role != nil && !patch.Role.Valid() {
		lg.Warn("invalid argument: unknown role", "role", *patch.Role)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	before, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, "UserByID", err)
	}

	user, err := s.storage.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, storageErr(lg, op, "UpdateUser", err)
	}

	if patch.Avatar != nil && user.Avatar != before.Avatar {
		s.cascadeAvatar(ctx, user.Name, user.Avatar)
	}

	return user, nil
}

// cascadeAvatar денормализует аватар автора в ленту: корни постов и узлы обсуждений.
func (s *Service) cascadeAvatar(ctx context.Context, name, avatar string) {
	const op = "service/auth/cascadeAvatar"

	lg := log.From(ctx).With("op", op, "name", name)

	n, err := s.storage.SetAuthorAvatar(ctx, name, avatar)
	if err != nil {
		lg.Error("storage error on SetAuthorAvatar", "err", err)
	}

	posts, err := s.storage.PostsByParticipant(ctx, name)
	if err != nil {
		lg.Error("storage error on PostsByParticipant", "err", err)
		return
	}

	var nodes int
	for _, p := range posts {
		var touched int
		_, err := s.mutateThread(ctx, p.ID, func(post *models.Post) error {
			if touched = thread.SetAvatar(post.Comments, name, avatar); touched == 0 {
				return errNoChange
			}

			return nil
		})

		switch {
		case err == nil:
			nodes += touched
		case errors.Is(err, errNoChange), errors.Is(err, storage.ErrNotFound):
		default:
			metrics.Fallbacks.WithLabelValues("avatar_cascade", "thread_write").Inc()
			lg.Error("avatar cascade failed for post", "post_id", p.ID, "err", err)
		}
	}

	lg.Info("avatar cascaded", "posts", n, "threads", len(posts), "nodes", nodes)
}

func (s *Service) issueSession(ctx context.Context, user *models.User) (*models.Session, error) {
	const op = "service/auth/issueSession"

	token, err := s.generateToken(ctx, user, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &models.Session{User: user, Token: token}, nil
}
