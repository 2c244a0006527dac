package storage

//go:generate mockgen -source=./storage.go -destination=../../mocks/storage.go -package=mocks

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-music-profiles/internal/models"
)

var (
	// ErrNotFound: сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference: неизвестный список ссылок или пустая ссылка.
	ErrInvalidReference = errors.New("invalid reference")
)

// ArtistStorage описывает операции над профилями артистов.
type ArtistStorage interface {
	// CreateArtist сохраняет профиль. Пустой ID заменяется новым ObjectID.
	CreateArtist(ctx context.Context, artist models.Artist) (*models.Artist, error)

	// ArtistByID возвращает профиль по идентификатору.
	// Некорректный формат id и отсутствие записи: ErrNotFound.
	ArtistByID(ctx context.Context, id string) (*models.Artist, error)

	// ListArtists возвращает не более limit профилей; пустой userID: без фильтра.
	ListArtists(ctx context.Context, userID string, limit int64) ([]models.Artist, error)

	// UpdateArtist применяет только заданные поля и возвращает документ после обновления.
	// Если запись не найдена: ErrNotFound.
	UpdateArtist(ctx context.Context, id string, upd models.ArtistUpdate) (*models.Artist, error)

	// AddArtistReference добавляет ref в список collection (songs|albums) с семантикой множества.
	// Неизвестный список или пустой ref: ErrInvalidReference, отсутствие записи: ErrNotFound.
	AddArtistReference(ctx context.Context, id, collection, ref string) (*models.Artist, error)

	// DeleteArtist удаляет профиль и возвращает число удалённых документов (0 или 1).
	DeleteArtist(ctx context.Context, id string) (int64, error)
}

// ListenerStorage описывает операции над профилями слушателей.
// Допустимые списки ссылок: playlists|interests.
type ListenerStorage interface {
	CreateListener(ctx context.Context, listener models.Listener) (*models.Listener, error)
	ListenerByID(ctx context.Context, id string) (*models.Listener, error)
	ListListeners(ctx context.Context, userID string, limit int64) ([]models.Listener, error)
	UpdateListener(ctx context.Context, id string, upd models.ListenerUpdate) (*models.Listener, error)
	AddListenerReference(ctx context.Context, id, collection, ref string) (*models.Listener, error)
	DeleteListener(ctx context.Context, id string) (int64, error)
}

// TransactionStorage описывает операции над переводами.
type TransactionStorage interface {
	CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	TransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, limit int64) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error)
}
