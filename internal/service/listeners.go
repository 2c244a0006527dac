package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/pkg/log"
)

// CreateListener: создание слушателя: запись users-сервиса, затем профиль.
// Пустая подписка трактуется как free, неизвестная: ErrInvalidArgument.
func (s *Service) CreateListener(ctx context.Context, in models.ListenerCreate) (*models.ListenerView, error) {
	const op = "service/listeners/CreateListener"

	lg := log.From(ctx).With("op", op, "firebase_id", in.FirebaseID)

	if reason := validateIdentity(&in.Identity); reason != "" {
		return nil, invalid(lg, op, reason)
	}

	if in.Subscription == "" {
		in.Subscription = models.SubscriptionFree
	}
	if !in.Subscription.Valid() {
		return nil, invalid(lg, op, "unknown subscription")
	}

	user, err := s.users.CreateUser(ctx, models.UserCreate{Identity: in.Identity, Role: models.RoleListener})
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	listener, err := s.listeners.CreateListener(ctx, models.Listener{
		UserID:       user.ID,
		Interests:    models.UniqueRefs(in.Interests),
		Playlists:    []string{},
		Subscription: in.Subscription,
	})
	if err != nil {
		lg.Warn("orphan identity: profile not persisted", "user_id", user.ID)
		return nil, storageErr(lg, op, err)
	}

	return s.listenerView(ctx, listener, user), nil
}

// Listener: профиль слушателя с идентичностью и развёрнутыми плейлистами.
func (s *Service) Listener(ctx context.Context, id string) (*models.ListenerView, error) {
	const op = "service/listeners/Listener"

	lg := log.From(ctx).With("op", op, "id", id)

	listener, err := s.listeners.ListenerByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	user, err := s.users.User(ctx, listener.UserID)
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	return s.listenerView(ctx, listener, user), nil
}

// Listeners: список слушателей (опционально по user_id).
func (s *Service) Listeners(ctx context.Context, userID string) ([]models.ListenerSummary, error) {
	const op = "service/listeners/Listeners"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	list, err := s.listeners.ListListeners(ctx, userID, s.listLimit)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	out := make([]models.ListenerSummary, 0, len(list))
	if len(list) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(list))
	for _, l := range list {
		ids = append(ids, l.UserID)
	}

	users, err := s.identities(ctx, ids)
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	for _, l := range list {
		u, ok := users[l.UserID]
		if !ok {
			lg.Warn("identity missing, profile dropped", "id", l.ID, "user_id", l.UserID)
			continue
		}

		out = append(out, models.ListenerSummary{
			Profile:      models.NewProfile(l.ID, u),
			Subscription: l.Subscription,
			Interests:    l.Interests,
			Playlists:    l.Playlists,
		})
	}

	return out, nil
}

// UpdateListener: частичное обновление профиля слушателя и его идентичности.
func (s *Service) UpdateListener(ctx context.Context, id string, patch models.ListenerPatch) (*models.ListenerView, error) {
	const op = "service/listeners/UpdateListener"

	lg := log.From(ctx).With("op", op, "id", id)

	if sub := patch.Profile.Subscription; sub != nil && !sub.Valid() {
		return nil, invalid(lg, op, "unknown subscription")
	}

	listener, err := s.listeners.UpdateListener(ctx, id, patch.Profile)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	user, err := s.identity(ctx, listener.UserID, patch.Identity)
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	return s.listenerView(ctx, listener, user), nil
}

func (s *Service) DeleteListener(ctx context.Context, id string) error {
	const op = "service/listeners/DeleteListener"

	lg := log.From(ctx).With("op", op, "id", id)

	n, err := s.listeners.DeleteListener(ctx, id)
	if err != nil {
		return storageErr(lg, op, err)
	}

	if n == 0 {
		lg.Warn("not found")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

// AddListenerPlaylist создаёт плейлист от имени слушателя и привязывает его к профилю.
// owner_id плейлиста: user_id слушателя.
func (s *Service) AddListenerPlaylist(ctx context.Context, id string, req models.PlaylistCreate) (*models.ListenerView, error) {
	const op = "service/listeners/AddListenerPlaylist"

	lg := log.From(ctx).With("op", op, "id", id)

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, invalid(lg, op, "empty title")
	}

	listener, err := s.listeners.ListenerByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	req.OwnerID = listener.UserID
	req.Songs = models.UniqueRefs(req.Songs)

	_, playlistID, err := s.catalog.CreatePlaylist(ctx, req)
	if err := created(lg, op, "playlist", playlistID, err); err != nil {
		return nil, err
	}

	return s.attachListenerRef(ctx, lg, op, id, models.RefPlaylists, playlistID)
}

// AddListenerInterest добавляет жанр в интересы слушателя (без повторов).
// Интересы задают жанры для Recommendations.
func (s *Service) AddListenerInterest(ctx context.Context, id, interest string) (*models.ListenerView, error) {
	const op = "service/listeners/AddListenerInterest"

	lg := log.From(ctx).With("op", op, "id", id)

	interest = strings.TrimSpace(interest)
	if interest == "" {
		return nil, invalid(lg, op, "empty interest")
	}

	return s.attachListenerRef(ctx, lg, op, id, models.RefInterests, interest)
}

func (s *Service) attachListenerRef(ctx context.Context, lg *slog.Logger, op, id, collection, ref string) (*models.ListenerView, error) {
	listener, err := s.listeners.AddListenerReference(ctx, id, collection, ref)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	user, err := s.users.User(ctx, listener.UserID)
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	return s.listenerView(ctx, listener, user), nil
}

// Recommendations: песни по интересам слушателя.
func (s *Service) Recommendations(ctx context.Context, id string) ([]models.Song, error) {
	const op = "service/listeners/Recommendations"

	lg := log.From(ctx).With("op", op, "id", id)

	listener, err := s.listeners.ListenerByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return s.catalog.RecommendationsByGenre(ctx, listener.Interests), nil
}

func (s *Service) listenerView(ctx context.Context, l *models.Listener, u *models.User) *models.ListenerView {
	return &models.ListenerView{
		Profile:      models.NewProfile(l.ID, *u),
		Subscription: l.Subscription,
		Interests:    l.Interests,
		Playlists:    s.catalog.Playlists(ctx, l.Playlists),
	}
}
