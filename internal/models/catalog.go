package models

// ArtistRef: краткая ссылка на артиста внутри песни или альбома.
type ArtistRef struct {
	ArtistID   string `json:"artist_id"`
	ArtistName string `json:"artist_name"`
}

// Song: песня multimedia-сервиса.
type Song struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Artists     []ArtistRef `json:"artists"`
	Description string      `json:"description"`
	Genre       string      `json:"genre"`
	SongFile    string      `json:"song_file"`
}

// SongCreate: тело POST /songs.
type SongCreate struct {
	Title       string      `json:"title"`
	Artists     []ArtistRef `json:"artists"`
	Description string      `json:"description"`
	Genre       string      `json:"genre"`
	SongFile    string      `json:"song_file"`
}

// Album: альбом с развёрнутыми песнями.
type Album struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Artist       ArtistRef    `json:"artist"`
	Description  string       `json:"description"`
	Genre        string       `json:"genre"`
	Image        string       `json:"image"`
	Subscription Subscription `json:"subscription"`
	Songs        []Song       `json:"songs"`
}

// AlbumCreate: запрос на создание альбома вместе с его песнями.
type AlbumCreate struct {
	Title        string       `json:"title"`
	Artist       ArtistRef    `json:"artist"`
	Description  string       `json:"description"`
	Genre        string       `json:"genre"`
	Image        string       `json:"image"`
	Subscription Subscription `json:"subscription"`
	Songs        []SongCreate `json:"songs"`
}

// Playlist: плейлист с развёрнутыми песнями.
type Playlist struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Songs           []Song `json:"songs"`
	IsCollaborative bool   `json:"is_collaborative"`
	OwnerID         string `json:"owner_id"`
}

// PlaylistCreate: тело POST /playlists; Songs: идентификаторы существующих песен.
type PlaylistCreate struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Songs           []string `json:"songs"`
	IsCollaborative bool     `json:"is_collaborative"`
	OwnerID         string   `json:"owner_id"`
}
