// service содержит бизнес-логику сервиса профилей: склейку локальных профилей
// с записями users-сервиса и сущностями multimedia-сервиса.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-music-profiles/internal/clients"
	"github.com/pribylovaa/go-music-profiles/internal/config"
	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/storage"
)

var (
	// ErrNotFound: профиль (или перевод) отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument: неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstream: вызов смежного сервиса завершился ошибкой.
	ErrUpstream = errors.New("upstream failure")
	// ErrInternal: операция не завершилась (хранилище/БД/контекст).
	ErrInternal = errors.New("internal")
)

// UpstreamError: отказ смежного сервиса. Текст исходной ошибки отдаётся клиенту.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return ErrUpstream.Error() + ": " + e.Cause.Error()
}

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

func (e *UpstreamError) Unwrap() error { return e.Cause }

// Deps: внешние зависимости сервиса.
type Deps struct {
	Artists      storage.ArtistStorage
	Listeners    storage.ListenerStorage
	Transactions storage.TransactionStorage
	Users        clients.Users
	Catalog      clients.Catalog
}

// Service: описывает бизнес-логику сервиса профилей.
type Service struct {
	artists      storage.ArtistStorage
	listeners    storage.ListenerStorage
	transactions storage.TransactionStorage
	users        clients.Users
	catalog      clients.Catalog
	listLimit    int64
}

// New создает новый экземпляр Service.
func New(deps Deps, cfg config.Config) *Service {
	limit := cfg.Limits.List
	if limit <= 0 {
		limit = defaultListLimit
	}

	return &Service{
		artists:      deps.Artists,
		listeners:    deps.Listeners,
		transactions: deps.Transactions,
		users:        deps.Users,
		catalog:      deps.Catalog,
		listLimit:    limit,
	}
}

const defaultListLimit = 100

// storageErr переводит ошибку хранилища в сервисную.
func storageErr(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("not found")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrInvalidReference):
		lg.Warn("invalid reference", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	default:
		lg.Error("storage error", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}

// upstreamErr оборачивает ошибку шлюза в UpstreamError.
func upstreamErr(lg *slog.Logger, op string, err error) error {
	lg.Warn("upstream error", "err", err)
	return fmt.Errorf("%s: %w", op, &UpstreamError{Cause: err})
}

// created проверяет результат создания сущности в каталоге.
// Успех без id считается отказом апстрима: ссылку некуда привязать.
func created(lg *slog.Logger, op, kind, id string, err error) error {
	if err != nil {
		return upstreamErr(lg, op, err)
	}
	if strings.TrimSpace(id) == "" {
		return upstreamErr(lg, op, fmt.Errorf("catalog returned %s without id", kind))
	}

	return nil
}

func invalid(lg *slog.Logger, op, reason string) error {
	lg.Warn("invalid argument: " + reason)
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, reason)
}

// validateIdentity проверяет обязательные поля идентичности и нормализует их.
func validateIdentity(in *models.Identity) string {
	in.FirebaseID = strings.TrimSpace(in.FirebaseID)
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Location = strings.TrimSpace(in.Location)

	switch {
	case in.FirebaseID == "":
		return "empty firebase_id"
	case in.Email == "":
		return "empty email"
	case in.FirstName == "":
		return "empty first_name"
	case in.LastName == "":
		return "empty last_name"
	}

	return ""
}

// identities запрашивает записи users-сервиса одним вызовом и индексирует их по id.
func (s *Service) identities(ctx context.Context, userIDs []string) (map[string]models.User, error) {
	users, err := s.users.Users(ctx, models.UniqueRefs(userIDs))
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}

	return out, nil
}

// identity обновляет запись users-сервиса, если в запросе есть её поля, иначе читает её.
func (s *Service) identity(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error) {
	if upd.IsEmpty() {
		return s.users.User(ctx, userID)
	}

	return s.users.UpdateUser(ctx, userID, upd)
}
