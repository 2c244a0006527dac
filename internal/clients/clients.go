// clients описывает контракты смежных сервисов, которыми пользуется сервисный слой.
// Реализации: clients/users и clients/multimedia.
package clients

//go:generate mockgen -source=./clients.go -destination=../../mocks/clients.go -package=mocks

import (
	"context"

	"github.com/pribylovaa/go-music-profiles/internal/models"
)

// Users: шлюз users-сервиса. Любой ответ вне 2xx: ошибка, без ретраев.
type Users interface {
	CreateUser(ctx context.Context, req models.UserCreate) (*models.User, error)
	User(ctx context.Context, id string) (*models.User, error)
	// Users возвращает записи по списку id одним запросом; пустой список: все записи.
	Users(ctx context.Context, ids []string) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
}

// Catalog: шлюз multimedia-сервиса.
type Catalog interface {
	// CreateSong/CreateAlbum/CreatePlaylist возвращают развёрнутый объект и его id.
	CreateSong(ctx context.Context, req models.SongCreate) (*models.Song, string, error)
	CreateAlbum(ctx context.Context, req models.AlbumCreate) (*models.Album, string, error)
	CreatePlaylist(ctx context.Context, req models.PlaylistCreate) (*models.Playlist, string, error)

	Song(ctx context.Context, id string) (*models.Song, error)
	Album(ctx context.Context, id string) (*models.Album, error)
	Playlist(ctx context.Context, id string) (*models.Playlist, error)

	// Songs/Albums/Playlists работают по принципу best-effort:
	// ссылка, которую не удалось получить, пропускается и логируется.
	Songs(ctx context.Context, ids []string) []models.Song
	Albums(ctx context.Context, ids []string) []models.Album
	Playlists(ctx context.Context, ids []string) []models.Playlist

	// AddSongToAlbum привязывает песню к альбому; true только при ответе 200.
	AddSongToAlbum(ctx context.Context, albumID, songID string) bool
	SongsByGenre(ctx context.Context, genre string) ([]models.Song, error)
	// RecommendationsByGenre: первые два интереса, до трёх песен на жанр, всего не больше десяти.
	RecommendationsByGenre(ctx context.Context, interests []string) []models.Song
}
