package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/pkg/log"
)

// CreateArtist: создание артиста: сначала запись в users-сервисе, затем профиль.
//
// Поведение/ошибки:
//   - ErrInvalidArgument: не заполнены firebase_id/email/first_name/last_name;
//   - ErrUpstream: users-сервис отказал, профиль не создаётся;
//   - ErrInternal: профиль не сохранён. Созданная запись users-сервиса
//     остаётся (в логе orphan identity с её id).
func (s *Service) CreateArtist(ctx context.Context, in models.ArtistCreate) (*models.ArtistView, error) {
	const op = "service/artists/CreateArtist"

	lg := log.From(ctx).With("op", op, "firebase_id", in.FirebaseID)

	if reason := validateIdentity(&in.Identity); reason != "" {
		return nil, invalid(lg, op, reason)
	}

	user, err := s.users.CreateUser(ctx, models.UserCreate{Identity: in.Identity, Role: models.RoleArtist})
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	artist, err := s.artists.CreateArtist(ctx, models.Artist{
		UserID: user.ID,
		Songs:  models.UniqueRefs(in.Songs),
		Albums: models.UniqueRefs(in.Albums),
	})
	if err != nil {
		lg.Warn("orphan identity: profile not persisted", "user_id", user.ID)
		return nil, storageErr(lg, op, err)
	}

	return s.artistView(ctx, artist, user), nil
}

// Artist: профиль артиста с идентичностью и развёрнутыми песнями/альбомами.
func (s *Service) Artist(ctx context.Context, id string) (*models.ArtistView, error) {
	const op = "service/artists/Artist"

	lg := log.From(ctx).With("op", op, "id", id)

	artist, err := s.artists.ArtistByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	user, err := s.users.User(ctx, artist.UserID)
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	return s.artistView(ctx, artist, user), nil
}

// Artists: список артистов (опционально по user_id).
// Идентичности запрашиваются одним вызовом; профиль без идентичности
// выбрасывается из ответа и логируется.
func (s *Service) Artists(ctx context.Context, userID string) ([]models.ArtistSummary, error) {
	const op = "service/artists/Artists"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	list, err := s.artists.ListArtists(ctx, userID, s.listLimit)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	out := make([]models.ArtistSummary, 0, len(list))
	if len(list) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.UserID)
	}

	users, err := s.identities(ctx, ids)
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	for _, a := range list {
		u, ok := users[a.UserID]
		if !ok {
			lg.Warn("identity missing, profile dropped", "id", a.ID, "user_id", a.UserID)
			continue
		}

		out = append(out, models.ArtistSummary{
			Profile: models.NewProfile(a.ID, u),
			Songs:   a.Songs,
			Albums:  a.Albums,
		})
	}

	return out, nil
}

// UpdateArtist: частичное обновление профиля и, если заданы поля идентичности,
// записи users-сервиса. Запись профиля не откатывается при отказе users-сервиса.
func (s *Service) UpdateArtist(ctx context.Context, id string, patch models.ArtistPatch) (*models.ArtistView, error) {
	const op = "service/artists/UpdateArtist"

	lg := log.From(ctx).With("op", op, "id", id)

	artist, err := s.artists.UpdateArtist(ctx, id, patch.Profile)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	user, err := s.identity(ctx, artist.UserID, patch.Identity)
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	return s.artistView(ctx, artist, user), nil
}

// DeleteArtist удаляет профиль без каскада на users/multimedia.
func (s *Service) DeleteArtist(ctx context.Context, id string) error {
	const op = "service/artists/DeleteArtist"

	lg := log.From(ctx).With("op", op, "id", id)

	n, err := s.artists.DeleteArtist(ctx, id)
	if err != nil {
		return storageErr(lg, op, err)
	}

	if n == 0 {
		lg.Warn("not found")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

// AddArtistAlbum создаёт альбом (вместе с его песнями) и привязывает его к артисту.
func (s *Service) AddArtistAlbum(ctx context.Context, id string, req models.AlbumCreate) (*models.ArtistView, error) {
	const op = "service/artists/AddArtistAlbum"

	lg := log.From(ctx).With("op", op, "id", id)

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, invalid(lg, op, "empty title")
	}

	if req.Subscription == "" {
		req.Subscription = models.SubscriptionFree
	}
	if !req.Subscription.Valid() {
		return nil, invalid(lg, op, "unknown subscription")
	}

	artist, err := s.artists.ArtistByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	if req.Artist.ArtistID == "" {
		req.Artist.ArtistID = artist.ID
	}

	_, albumID, err := s.catalog.CreateAlbum(ctx, req)
	if err := created(lg, op, "album", albumID, err); err != nil {
		return nil, err
	}

	return s.attachArtistRef(ctx, lg, op, id, models.RefAlbums, albumID)
}

// AddArtistSong создаёт песню и привязывает её к артисту.
func (s *Service) AddArtistSong(ctx context.Context, id string, req models.SongCreate) (*models.ArtistView, error) {
	const op = "service/artists/AddArtistSong"

	lg := log.From(ctx).With("op", op, "id", id)

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, invalid(lg, op, "empty title")
	}

	artist, err := s.artists.ArtistByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	if len(req.Artists) == 0 {
		req.Artists = []models.ArtistRef{{ArtistID: artist.ID}}
	}

	_, songID, err := s.catalog.CreateSong(ctx, req)
	if err := created(lg, op, "song", songID, err); err != nil {
		return nil, err
	}

	return s.attachArtistRef(ctx, lg, op, id, models.RefSongs, songID)
}

// AddSongToAlbum создаёт песню в альбоме артиста.
//
// Поведение/ошибки:
//   - ErrNotFound: нет артиста или альбом ему не принадлежит;
//   - ErrUpstream: песня не создана или не привязана к альбому (песня остаётся в каталоге).
func (s *Service) AddSongToAlbum(ctx context.Context, id, albumID string, req models.SongCreate) (*models.ArtistView, error) {
	const op = "service/artists/AddSongToAlbum"

	lg := log.From(ctx).With("op", op, "id", id, "album_id", albumID)

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, invalid(lg, op, "empty title")
	}

	artist, err := s.artists.ArtistByID(ctx, id)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	if !slices.Contains(artist.Albums, albumID) {
		lg.Warn("album does not belong to artist")
		return nil, fmt.Errorf("%s: album %q: %w", op, albumID, ErrNotFound)
	}

	if len(req.Artists) == 0 {
		req.Artists = []models.ArtistRef{{ArtistID: artist.ID}}
	}

	_, songID, err := s.catalog.CreateSong(ctx, req)
	if err := created(lg, op, "song", songID, err); err != nil {
		return nil, err
	}

	if !s.catalog.AddSongToAlbum(ctx, albumID, songID) {
		return nil, upstreamErr(lg, op, fmt.Errorf("song %q was not added to album %q", songID, albumID))
	}

	return s.attachArtistRef(ctx, lg, op, id, models.RefSongs, songID)
}

// attachArtistRef дописывает ссылку в профиль и собирает ответ.
func (s *Service) attachArtistRef(ctx context.Context, lg *slog.Logger, op, id, collection, ref string) (*models.ArtistView, error) {
	artist, err := s.artists.AddArtistReference(ctx, id, collection, ref)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	user, err := s.users.User(ctx, artist.UserID)
	if err != nil {
		return nil, upstreamErr(lg, op, err)
	}

	return s.artistView(ctx, artist, user), nil
}

// artistView разворачивает ссылки артиста. Недоступные сущности пропускаются.
func (s *Service) artistView(ctx context.Context, a *models.Artist, u *models.User) *models.ArtistView {
	return &models.ArtistView{
		Profile: models.NewProfile(a.ID, *u),
		Songs:   s.catalog.Songs(ctx, a.Songs),
		Albums:  s.catalog.Albums(ctx, a.Albums),
	}
}
