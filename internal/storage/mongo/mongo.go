package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-music-profiles/internal/config"
	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	artistsCollection      = "artists"
	listenersCollection    = "listeners"
	transactionsCollection = "transactions"
	defaultDBName          = "profiles"
)

// Mongo - тонкий адаптер над коллекциями профилей и переводов.
type Mongo struct {
	client       *mongodriver.Client
	db           *mongodriver.Database
	artists      *mongodriver.Collection
	listeners    *mongodriver.Collection
	transactions *mongodriver.Collection
}

var (
	_ storage.ArtistStorage      = (*Mongo)(nil)
	_ storage.ListenerStorage    = (*Mongo)(nil)
	_ storage.TransactionStorage = (*Mongo)(nil)
)

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции и индексы.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(cfg.DB.URL))

	m := &Mongo{
		client:       cli,
		db:           db,
		artists:      db.Collection(artistsCollection),
		listeners:    db.Collection(listenersCollection),
		transactions: db.Collection(transactionsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping проверяет доступность primary; используется в /healthz.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ensureIndexes создаёт индексы по user_id: по нему фильтруются списки профилей.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	byUser := func(name string) mongodriver.IndexModel {
		return mongodriver.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName(name),
		}
	}

	if _, err := m.artists.Indexes().CreateOne(ctx, byUser("artists_user_id")); err != nil {
		return fmt.Errorf("mongo ensure indexes: %w", err)
	}

	if _, err := m.listeners.Indexes().CreateOne(ctx, byUser("listeners_user_id")); err != nil {
		return fmt.Errorf("mongo ensure indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддается расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}

	return defaultDBName
}

// objectID разбирает строковый идентификатор.
// Некорректный формат трактуется как «нет такой записи».
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, storage.ErrNotFound
	}

	return oid, nil
}

// newObjectID возвращает ObjectID для вставки: новый, если id пустой.
func newObjectID(id string) (primitive.ObjectID, error) {
	if strings.TrimSpace(id) == "" {
		return primitive.NewObjectID(), nil
	}

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", id, err)
	}

	return oid, nil
}

// afterUpdate: FindOneAndUpdate должен возвращать документ после изменения.
func afterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// refs гарантирует, что наружу уходит пустой массив, а не nil.
func refs(in []string) []string {
	if in == nil {
		return []string{}
	}

	return in
}

// setDoc собирает тело $set из заданных полей обновления.
func setDoc(fields []models.Field) bson.D {
	set := make(bson.D, 0, len(fields))
	for _, f := range fields {
		set = append(set, bson.E{Key: f.Name, Value: f.Value})
	}

	return bson.D{{Key: "$set", Value: set}}
}

// checkRef: список должен быть в белом списке, а ссылка непустой.
func checkRef(allowed map[string]struct{}, collection, ref string) error {
	if _, ok := allowed[collection]; !ok {
		return fmt.Errorf("%q: %w", collection, storage.ErrInvalidReference)
	}
	if strings.TrimSpace(ref) == "" {
		return fmt.Errorf("%s: empty ref: %w", collection, storage.ErrInvalidReference)
	}

	return nil
}
