package models

// ArtistCreate: входные данные создания артиста: идентичность и начальные ссылки.
type ArtistCreate struct {
	Identity
	Songs  []string
	Albums []string
}

// ListenerCreate: входные данные создания слушателя.
// Пустая Subscription трактуется как free.
type ListenerCreate struct {
	Identity
	Interests    []string
	Subscription Subscription
}

// ArtistPatch: обновление профиля артиста и его идентичности одним запросом.
type ArtistPatch struct {
	Profile  ArtistUpdate
	Identity UserUpdate
}

// ListenerPatch: обновление профиля слушателя и его идентичности.
type ListenerPatch struct {
	Profile  ListenerUpdate
	Identity UserUpdate
}

// Profile: поля идентичности, которые отдаются вместе с любым профилем.
type Profile struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	FirebaseID string `json:"firebase_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	Role       Role   `json:"role"`
}

// NewProfile склеивает идентификатор профиля с записью users-сервиса.
func NewProfile(id string, u User) Profile {
	return Profile{
		ID:         id,
		UserID:     u.ID,
		FirebaseID: u.FirebaseID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Location:   u.Location,
		Status:     u.Status,
		Role:       u.Role,
	}
}

// ArtistView: ответ по одному артисту с развёрнутыми песнями и альбомами.
type ArtistView struct {
	Profile
	Songs  []Song  `json:"songs"`
	Albums []Album `json:"albums"`
}

// ArtistSummary: элемент списка артистов: идентичность и голые ссылки.
type ArtistSummary struct {
	Profile
	Songs  []string `json:"songs"`
	Albums []string `json:"albums"`
}

// ListenerView: ответ по одному слушателю с развёрнутыми плейлистами.
type ListenerView struct {
	Profile
	Subscription Subscription `json:"subscription"`
	Interests    []string     `json:"interests"`
	Playlists    []Playlist   `json:"playlists"`
}

// ListenerSummary: элемент списка слушателей.
type ListenerSummary struct {
	Profile
	Subscription Subscription `json:"subscription"`
	Interests    []string     `json:"interests"`
	Playlists    []string     `json:"playlists"`
}
