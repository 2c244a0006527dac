// multimedia: HTTP-шлюз multimedia-сервиса (песни, альбомы, плейлисты).
//
// На проводе альбомы и плейлисты ссылаются на песни по id; шлюз разворачивает
// их в полные объекты через Song. Недоступная вложенная песня пропускается.
package multimedia

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pribylovaa/go-music-profiles/internal/clients"
	"github.com/pribylovaa/go-music-profiles/internal/clients/upstream"
	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/pkg/log"
)

// Параметры выборки рекомендаций фиксированы.
const (
	recommendGenres   = 2
	recommendPerGenre = 3
	recommendMax      = 10
)

// errNoID: апстрим ответил успехом, но не вернул id созданной сущности.
var errNoID = errors.New("created entity has no id")

// song: песня на проводе. Каталог отдаёт id либо в "id", либо в "_id".
type song struct {
	models.Song
	OID string `json:"_id"`
}

func (s song) model() *models.Song {
	out := s.Song
	out.ID = pick(s.ID, s.OID)
	return &out
}

// album/playlist: представление на проводе: песни как id.
type album struct {
	ID           string              `json:"id"`
	OID          string              `json:"_id,omitempty"`
	Title        string              `json:"title"`
	Artist       models.ArtistRef    `json:"artist"`
	Description  string              `json:"description"`
	Genre        string              `json:"genre"`
	Image        string              `json:"image"`
	Subscription models.Subscription `json:"subscription"`
	Songs        []string            `json:"songs"`
}

type playlist struct {
	ID              string   `json:"id"`
	OID             string   `json:"_id,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Songs           []string `json:"songs"`
	IsCollaborative bool     `json:"is_collaborative"`
	OwnerID         string   `json:"owner_id"`
}

// Client реализует clients.Catalog поверх upstream.Client.
type Client struct {
	up *upstream.Client
}

var _ clients.Catalog = (*Client)(nil)

func New(up *upstream.Client) *Client {
	return &Client{up: up}
}

// CreateSong: POST /songs.
func (c *Client) CreateSong(ctx context.Context, req models.SongCreate) (*models.Song, string, error) {
	const op = "clients/multimedia/CreateSong"

	var out song
	if _, err := c.up.Do(ctx, http.MethodPost, "/songs", nil, req, &out); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s := out.model()
	if s.ID == "" {
		return nil, "", fmt.Errorf("%s: %w", op, errNoID)
	}

	return s, s.ID, nil
}

// CreateAlbum сначала создаёт каждую вложенную песню, затем сам альбом с их id.
// Ошибка создания любой песни прерывает операцию; уже созданные песни остаются.
func (c *Client) CreateAlbum(ctx context.Context, req models.AlbumCreate) (*models.Album, string, error) {
	const op = "clients/multimedia/CreateAlbum"

	created := make(map[string]models.Song, len(req.Songs))
	ids := make([]string, 0, len(req.Songs))
	for _, sr := range req.Songs {
		s, id, err := c.CreateSong(ctx, sr)
		if err != nil {
			return nil, "", fmt.Errorf("%s: song %q: %w", op, sr.Title, err)
		}
		created[id] = *s
		ids = append(ids, id)
	}

	body := album{
		Title:        req.Title,
		Artist:       req.Artist,
		Description:  req.Description,
		Genre:        req.Genre,
		Image:        req.Image,
		Subscription: req.Subscription,
		Songs:        ids,
	}

	var out album
	if _, err := c.up.Do(ctx, http.MethodPost, "/albums", nil, body, &out); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if out.key() == "" {
		return nil, "", fmt.Errorf("%s: %w", op, errNoID)
	}

	songs := make([]models.Song, 0, len(out.Songs))
	for _, id := range out.Songs {
		if s, ok := created[id]; ok {
			songs = append(songs, s)
			continue
		}
		songs = append(songs, c.Songs(ctx, []string{id})...)
	}

	return out.hydrated(songs), out.key(), nil
}

// CreatePlaylist: POST /playlists; песни плейлиста разворачиваются после создания.
func (c *Client) CreatePlaylist(ctx context.Context, req models.PlaylistCreate) (*models.Playlist, string, error) {
	const op = "clients/multimedia/CreatePlaylist"

	if req.Songs == nil {
		req.Songs = []string{}
	}

	var out playlist
	if _, err := c.up.Do(ctx, http.MethodPost, "/playlists", nil, req, &out); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if out.key() == "" {
		return nil, "", fmt.Errorf("%s: %w", op, errNoID)
	}

	return out.hydrated(c.Songs(ctx, out.Songs)), out.key(), nil
}

// Song: GET /songs/{id}.
func (c *Client) Song(ctx context.Context, id string) (*models.Song, error) {
	const op = "clients/multimedia/Song"

	var out song
	if _, err := c.up.Do(ctx, http.MethodGet, "/songs/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out.model(), nil
}

// Album: GET /albums/{id} с развёрнутыми песнями.
func (c *Client) Album(ctx context.Context, id string) (*models.Album, error) {
	const op = "clients/multimedia/Album"

	var out album
	if _, err := c.up.Do(ctx, http.MethodGet, "/albums/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out.hydrated(c.Songs(ctx, out.Songs)), nil
}

// Playlist: GET /playlists/{id} с развёрнутыми песнями.
func (c *Client) Playlist(ctx context.Context, id string) (*models.Playlist, error) {
	const op = "clients/multimedia/Playlist"

	var out playlist
	if _, err := c.up.Do(ctx, http.MethodGet, "/playlists/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out.hydrated(c.Songs(ctx, out.Songs)), nil
}

// Songs разворачивает список id; недоступные песни пропускаются.
func (c *Client) Songs(ctx context.Context, ids []string) []models.Song {
	out := make([]models.Song, 0, len(ids))
	for _, id := range ids {
		s, err := c.Song(ctx, id)
		if err != nil {
			c.skipped(ctx, "song", id, err)
			continue
		}
		out = append(out, *s)
	}

	return out
}

func (c *Client) Albums(ctx context.Context, ids []string) []models.Album {
	out := make([]models.Album, 0, len(ids))
	for _, id := range ids {
		a, err := c.Album(ctx, id)
		if err != nil {
			c.skipped(ctx, "album", id, err)
			continue
		}
		out = append(out, *a)
	}

	return out
}

func (c *Client) Playlists(ctx context.Context, ids []string) []models.Playlist {
	out := make([]models.Playlist, 0, len(ids))
	for _, id := range ids {
		p, err := c.Playlist(ctx, id)
		if err != nil {
			c.skipped(ctx, "playlist", id, err)
			continue
		}
		out = append(out, *p)
	}

	return out
}

// AddSongToAlbum: PUT /songs/{song_id} с {"album_id": ...}.
// Успех только при 200; ошибка транспорта тоже считается неуспехом.
func (c *Client) AddSongToAlbum(ctx context.Context, albumID, songID string) bool {
	body := map[string]string{"album_id": albumID}

	code, err := c.up.Do(ctx, http.MethodPut, "/songs/"+url.PathEscape(songID), nil, body, nil)
	if err != nil {
		log.From(ctx).Warn("add_song_to_album_failed",
			slog.String("album_id", albumID),
			slog.String("song_id", songID),
			slog.String("err", err.Error()),
		)
		return false
	}

	return code == http.StatusOK
}

// SongsByGenre: GET /songs?genre=...
func (c *Client) SongsByGenre(ctx context.Context, genre string) ([]models.Song, error) {
	const op = "clients/multimedia/SongsByGenre"

	var raw []song
	if _, err := c.up.Do(ctx, http.MethodGet, "/songs", url.Values{"genre": {genre}}, nil, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.Song, 0, len(raw))
	for _, s := range raw {
		out = append(out, *s.model())
	}

	return out, nil
}

// RecommendationsByGenre набирает песни по первым интересам слушателя.
// Жанр, который не удалось получить, пропускается.
func (c *Client) RecommendationsByGenre(ctx context.Context, interests []string) []models.Song {
	if len(interests) > recommendGenres {
		interests = interests[:recommendGenres]
	}

	out := make([]models.Song, 0, recommendMax)
	for _, genre := range interests {
		songs, err := c.SongsByGenre(ctx, genre)
		if err != nil {
			c.skipped(ctx, "genre", genre, err)
			continue
		}

		if len(songs) > recommendPerGenre {
			songs = songs[:recommendPerGenre]
		}
		out = append(out, songs...)
	}

	if len(out) > recommendMax {
		out = out[:recommendMax]
	}

	return out
}

func (a album) key() string { return pick(a.ID, a.OID) }

func (a album) hydrated(songs []models.Song) *models.Album {
	return &models.Album{
		ID:           a.key(),
		Title:        a.Title,
		Artist:       a.Artist,
		Description:  a.Description,
		Genre:        a.Genre,
		Image:        a.Image,
		Subscription: a.Subscription,
		Songs:        songs,
	}
}

func (p playlist) key() string { return pick(p.ID, p.OID) }

func (p playlist) hydrated(songs []models.Song) *models.Playlist {
	return &models.Playlist{
		ID:              p.key(),
		Title:           p.Title,
		Description:     p.Description,
		Songs:           songs,
		IsCollaborative: p.IsCollaborative,
		OwnerID:         p.OwnerID,
	}
}

// pick: первый непустой id.
func pick(id, oid string) string {
	if id != "" {
		return id
	}

	return oid
}

// skipped логирует пропущенную при развёртывании ссылку.
func (c *Client) skipped(ctx context.Context, kind, id string, err error) {
	log.From(ctx).Warn("catalog_reference_skipped",
		slog.String("upstream", c.up.Name()),
		slog.String("kind", kind),
		slog.String("id", id),
		slog.String("err", err.Error()),
	)
}
