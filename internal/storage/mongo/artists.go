package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// artistDoc: представление профиля артиста в коллекции artists.
type artistDoc struct {
	ID     primitive.ObjectID `bson:"_id"`
	UserID string             `bson:"user_id"`
	Songs  []string           `bson:"songs"`
	Albums []string           `bson:"albums"`
}

func (d artistDoc) model() *models.Artist {
	return &models.Artist{
		ID:     d.ID.Hex(),
		UserID: d.UserID,
		Songs:  refs(d.Songs),
		Albums: refs(d.Albums),
	}
}

// artistRefs: списки, которые разрешено пополнять через AddArtistReference.
var artistRefs = map[string]struct{}{
	models.RefSongs:  {},
	models.RefAlbums: {},
}

// CreateArtist сохраняет профиль артиста; списки ссылок очищаются от повторов.
func (m *Mongo) CreateArtist(ctx context.Context, artist models.Artist) (*models.Artist, error) {
	const op = "storage/mongo/CreateArtist"

	oid, err := newObjectID(artist.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc := artistDoc{
		ID:     oid,
		UserID: artist.UserID,
		Songs:  models.UniqueRefs(artist.Songs),
		Albums: models.UniqueRefs(artist.Albums),
	}

	if _, err := m.artists.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return doc.model(), nil
}

// ArtistByID возвращает профиль по идентификатору.
// Если запись не найдена: storage.ErrNotFound.
func (m *Mongo) ArtistByID(ctx context.Context, id string) (*models.Artist, error) {
	const op = "storage/mongo/ArtistByID"

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc artistDoc
	if err := m.artists.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.model(), nil
}

// ListArtists возвращает профили в порядке вставки, не более limit штук.
func (m *Mongo) ListArtists(ctx context.Context, userID string, limit int64) ([]models.Artist, error) {
	const op = "storage/mongo/ListArtists"

	filter := bson.D{}
	if userID != "" {
		filter = bson.D{{Key: "user_id", Value: userID}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)

	cur, err := m.artists.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var docs []artistDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	out := make([]models.Artist, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.model())
	}

	return out, nil
}

// UpdateArtist выставляет ($set) только заданные поля.
// Пустое обновление возвращает текущий документ.
func (m *Mongo) UpdateArtist(ctx context.Context, id string, upd models.ArtistUpdate) (*models.Artist, error) {
	const op = "storage/mongo/UpdateArtist"

	if upd.IsEmpty() {
		return m.ArtistByID(ctx, id)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc artistDoc
	err = m.artists.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		setDoc(upd.Fields()),
		afterUpdate(),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.model(), nil
}

// AddArtistReference добавляет ссылку через $addToSet: повторное добавление ничего не меняет.
func (m *Mongo) AddArtistReference(ctx context.Context, id, collection, ref string) (*models.Artist, error) {
	const op = "storage/mongo/AddArtistReference"

	if err := checkRef(artistRefs, collection, ref); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	oid, err := objectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc artistDoc
	err = m.artists.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: collection, Value: ref}}}},
		afterUpdate(),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.model(), nil
}

// DeleteArtist удаляет профиль без каскада. 0: записи не было.
func (m *Mongo) DeleteArtist(ctx context.Context, id string) (int64, error) {
	const op = "storage/mongo/DeleteArtist"

	oid, err := objectID(id)
	if err != nil {
		return 0, nil
	}

	res, err := m.artists.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.DeletedCount, nil
}
