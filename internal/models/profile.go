// Package models содержит доменные сущности сервиса профилей.
package models

// Subscription: уровень подписки слушателя.
type Subscription string

const (
	SubscriptionFree    Subscription = "free"
	SubscriptionNormal  Subscription = "normal"
	SubscriptionPremium Subscription = "premium"
)

// Valid сообщает, является ли значение известным уровнем подписки.
func (s Subscription) Valid() bool {
	switch s {
	case SubscriptionFree, SubscriptionNormal, SubscriptionPremium:
		return true
	}

	return false
}

// Имена списков ссылок, которые можно пополнять через AddReference.
const (
	RefSongs     = "songs"
	RefAlbums    = "albums"
	RefPlaylists = "playlists"
	RefInterests = "interests"
)

// Artist: локально хранимый профиль артиста.
// Важно:
//   - ID: ObjectID MongoDB в hex-виде, назначается хранилищем.
//   - UserID: идентификатор записи в users-сервисе, задаётся один раз при создании.
//   - Songs/Albums: идентификаторы сущностей multimedia-сервиса, без повторов.
type Artist struct {
	ID     string   `json:"id"`
	UserID string   `json:"user_id"`
	Songs  []string `json:"songs"`
	Albums []string `json:"albums"`
}

// Listener: локально хранимый профиль слушателя.
type Listener struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Interests    []string     `json:"interests"`
	Playlists    []string     `json:"playlists"`
	Subscription Subscription `json:"subscription"`
}

// Field: одно заданное поле частичного обновления.
// Name совпадает с именем поля в документе хранилища.
type Field struct {
	Name  string
	Value any
}

// ArtistUpdate: частичное обновление профиля артиста.
// nil-поле означает «не менять».
type ArtistUpdate struct {
	Songs  *[]string
	Albums *[]string
}

// IsEmpty: в обновлении нет ни одного поля.
func (u ArtistUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Fields перечисляет заданные поля; списки ссылок очищаются от повторов.
func (u ArtistUpdate) Fields() []Field {
	var out []Field
	if u.Songs != nil {
		out = append(out, Field{Name: RefSongs, Value: UniqueRefs(*u.Songs)})
	}
	if u.Albums != nil {
		out = append(out, Field{Name: RefAlbums, Value: UniqueRefs(*u.Albums)})
	}

	return out
}

// ListenerUpdate: частичное обновление профиля слушателя.
type ListenerUpdate struct {
	Interests    *[]string
	Playlists    *[]string
	Subscription *Subscription
}

func (u ListenerUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

func (u ListenerUpdate) Fields() []Field {
	var out []Field
	if u.Interests != nil {
		out = append(out, Field{Name: RefInterests, Value: UniqueRefs(*u.Interests)})
	}
	if u.Playlists != nil {
		out = append(out, Field{Name: RefPlaylists, Value: UniqueRefs(*u.Playlists)})
	}
	if u.Subscription != nil {
		out = append(out, Field{Name: "subscription", Value: string(*u.Subscription)})
	}

	return out
}

// UniqueRefs убирает пустые значения и повторы, сохраняя порядок первых вхождений.
// Всегда возвращает не-nil срез, чтобы в документе хранился массив, а не null.
func UniqueRefs(refs []string) []string {
	out := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))

	for _, r := range refs {
		if r == "" {
			continue
		}

		if _, ok := seen[r]; ok {
			continue
		}

		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out
}
