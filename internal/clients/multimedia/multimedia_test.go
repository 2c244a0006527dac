package multimedia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-music-profiles/internal/clients/upstream"
	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/pkg/log"
	"github.com/stretchr/testify/require"
)

// fakeCatalog: in-memory multimedia-сервис для тестов шлюза.
type fakeCatalog struct {
	mu        sync.Mutex
	songs     map[string]models.Song
	albums    map[string]album
	playlists map[string]playlist
	byGenre   map[string][]models.Song
	badGenres map[string]bool
	linked    map[string]string // song_id -> album_id
	seq       int
	putStatus int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		songs:     map[string]models.Song{},
		albums:    map[string]album{},
		playlists: map[string]playlist{},
		byGenre:   map[string][]models.Song{},
		badGenres: map[string]bool{},
		linked:    map[string]string{},
		putStatus: http.StatusOK,
	}
}

func (f *fakeCatalog) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeCatalog) router() http.Handler {
	r := chi.NewRouter()

	r.Post("/songs", func(w http.ResponseWriter, r *http.Request) {
		var in models.SongCreate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		s := models.Song{ID: f.nextID("song"), Title: in.Title, Artists: in.Artists, Genre: in.Genre, SongFile: in.SongFile}
		f.songs[s.ID] = s
		writeJSON(w, http.StatusCreated, s)
	})
	r.Get("/songs", func(w http.ResponseWriter, r *http.Request) {
		g := r.URL.Query().Get("genre")
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.badGenres[g] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, f.byGenre[g])
	})
	r.Get("/songs/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		s, ok := f.songs[chi.URLParam(r, "id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, s)
	})
	r.Put("/songs/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			AlbumID string `json:"album_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.linked[chi.URLParam(r, "id")] = in.AlbumID
		w.WriteHeader(f.putStatus)
	})
	r.Post("/albums", func(w http.ResponseWriter, r *http.Request) {
		var in album
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		in.ID = f.nextID("album")
		f.albums[in.ID] = in
		writeJSON(w, http.StatusCreated, in)
	})
	r.Get("/albums/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		a, ok := f.albums[chi.URLParam(r, "id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, a)
	})
	r.Post("/playlists", func(w http.ResponseWriter, r *http.Request) {
		var in playlist
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		in.ID = f.nextID("playlist")
		f.playlists[in.ID] = in
		writeJSON(w, http.StatusCreated, in)
	})
	r.Get("/playlists/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		p, ok := f.playlists[chi.URLParam(r, "id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	})

	return r
}

func newTestClient(t *testing.T, f *fakeCatalog) *Client {
	t.Helper()
	srv := httptest.NewServer(f.router())
	t.Cleanup(srv.Close)
	return New(upstream.New(upstream.Options{Name: "multimedia", BaseURL: srv.URL}))
}

func (f *fakeCatalog) putSong(s models.Song) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.songs[s.ID] = s
}

func TestCreateSong_ReturnsObjectAndID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newFakeCatalog())

	s, id, err := c.CreateSong(context.Background(), models.SongCreate{
		Title:   "title",
		Artists: []models.ArtistRef{{ArtistID: "a-1", ArtistName: "name"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, id, s.ID)
	require.Equal(t, "title", s.Title)
}

// TestCreate_ResponseWithoutID: 201 без id не считается успешным созданием.
func TestCreate_ResponseWithoutID(t *testing.T) {
	t.Parallel()

	var posts int
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		posts++
		mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]string{"title": "t"})
	}))
	t.Cleanup(srv.Close)

	c := New(upstream.New(upstream.Options{Name: "multimedia", BaseURL: srv.URL}))
	ctx := context.Background()

	_, id, err := c.CreateSong(ctx, models.SongCreate{Title: "t"})
	require.ErrorIs(t, err, errNoID)
	require.Empty(t, id)

	_, id, err = c.CreatePlaylist(ctx, models.PlaylistCreate{Title: "t", OwnerID: "u-1"})
	require.ErrorIs(t, err, errNoID)
	require.Empty(t, id)

	// Песня без id прерывает создание альбома до POST /albums.
	_, id, err = c.CreateAlbum(ctx, models.AlbumCreate{Title: "t", Songs: []models.SongCreate{{Title: "one"}}})
	require.ErrorIs(t, err, errNoID)
	require.Empty(t, id)

	_, id, err = c.CreateAlbum(ctx, models.AlbumCreate{Title: "t"})
	require.ErrorIs(t, err, errNoID)
	require.Empty(t, id)

	mu.Lock()
	require.Equal(t, 4, posts)
	mu.Unlock()
}

// TestCreate_AcceptsMongoStyleID: id в поле "_id" тоже считается id сущности.
func TestCreate_AcceptsMongoStyleID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/songs":
			writeJSON(w, http.StatusCreated, map[string]string{"_id": "abc", "title": "t"})
		case "/playlists":
			writeJSON(w, http.StatusCreated, map[string]any{"_id": "p-9", "title": "mix", "songs": []string{}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	c := New(upstream.New(upstream.Options{Name: "multimedia", BaseURL: srv.URL}))

	s, id, err := c.CreateSong(context.Background(), models.SongCreate{Title: "t"})
	require.NoError(t, err)
	require.Equal(t, "abc", id)
	require.Equal(t, "abc", s.ID)

	p, id, err := c.CreatePlaylist(context.Background(), models.PlaylistCreate{Title: "mix"})
	require.NoError(t, err)
	require.Equal(t, "p-9", id)
	require.Equal(t, "p-9", p.ID)
}

// TestCreateAlbum_CreatesSongsFirst: песни создаются раньше альбома, альбом хранит их id.
func TestCreateAlbum_CreatesSongsFirst(t *testing.T) {
	t.Parallel()

	f := newFakeCatalog()
	c := newTestClient(t, f)

	a, id, err := c.CreateAlbum(context.Background(), models.AlbumCreate{
		Title:        "album",
		Artist:       models.ArtistRef{ArtistID: "a-1", ArtistName: "name"},
		Subscription: models.SubscriptionFree,
		Songs:        []models.SongCreate{{Title: "one"}, {Title: "two"}},
	})
	require.NoError(t, err)
	require.Equal(t, id, a.ID)
	require.Len(t, a.Songs, 2)
	require.Equal(t, "one", a.Songs[0].Title)
	require.Equal(t, "two", a.Songs[1].Title)

	f.mu.Lock()
	stored := f.albums[id]
	f.mu.Unlock()
	require.Equal(t, []string{a.Songs[0].ID, a.Songs[1].ID}, stored.Songs)
}

func TestAlbum_HydratesAndSkipsMissingSongs(t *testing.T) {
	t.Parallel()

	f := newFakeCatalog()
	f.putSong(models.Song{ID: "s-1", Title: "ok"})
	f.albums["al-1"] = album{ID: "al-1", Title: "album", Songs: []string{"s-1", "s-missing"}}
	c := newTestClient(t, f)

	a, err := c.Album(context.Background(), "al-1")
	require.NoError(t, err)
	require.Len(t, a.Songs, 1)
	require.Equal(t, "s-1", a.Songs[0].ID)

	_, err = c.Album(context.Background(), "nope")
	require.ErrorIs(t, err, upstream.ErrUnexpectedStatus)
}

// TestBulk_SkipsFailedReferences: одна ошибка не валит весь список.
func TestBulk_SkipsFailedReferences(t *testing.T) {
	t.Parallel()

	f := newFakeCatalog()
	f.putSong(models.Song{ID: "s-1", Title: "ok"})
	f.albums["al-1"] = album{ID: "al-1", Songs: []string{"s-1"}}
	f.playlists["p-1"] = playlist{ID: "p-1", Songs: []string{"s-1"}, OwnerID: "u-1"}
	c := newTestClient(t, f)
	ctx := context.Background()

	songs := c.Songs(ctx, []string{"s-1", "s-bad"})
	require.Len(t, songs, 1)
	require.Equal(t, "s-1", songs[0].ID)

	albums := c.Albums(ctx, []string{"al-bad", "al-1"})
	require.Len(t, albums, 1)
	require.Equal(t, "al-1", albums[0].ID)

	playlists := c.Playlists(ctx, []string{"p-1", "p-bad"})
	require.Len(t, playlists, 1)
	require.Equal(t, "u-1", playlists[0].OwnerID)
	require.Len(t, playlists[0].Songs, 1)

	require.Empty(t, c.Songs(ctx, nil))
	require.NotNil(t, c.Songs(ctx, nil))
}

// TestSongs_SkipLogNamesUpstream: запись о пропуске содержит имя апстрима и id.
func TestSongs_SkipLogNamesUpstream(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, newFakeCatalog())

	var buf bytes.Buffer
	ctx := log.Into(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	require.Empty(t, c.Songs(ctx, []string{"s-gone"}))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "catalog_reference_skipped", rec["msg"])
	require.Equal(t, "multimedia", rec["upstream"])
	require.Equal(t, "song", rec["kind"])
	require.Equal(t, "s-gone", rec["id"])
}

func TestCreatePlaylist_Hydrates(t *testing.T) {
	t.Parallel()

	f := newFakeCatalog()
	f.putSong(models.Song{ID: "s-1", Title: "ok"})
	c := newTestClient(t, f)

	p, id, err := c.CreatePlaylist(context.Background(), models.PlaylistCreate{
		Title:   "mix",
		Songs:   []string{"s-1"},
		OwnerID: "u-1",
	})
	require.NoError(t, err)
	require.Equal(t, id, p.ID)
	require.Equal(t, "u-1", p.OwnerID)
	require.Len(t, p.Songs, 1)
}

func TestAddSongToAlbum(t *testing.T) {
	t.Parallel()

	f := newFakeCatalog()
	c := newTestClient(t, f)

	require.True(t, c.AddSongToAlbum(context.Background(), "al-1", "s-1"))
	f.mu.Lock()
	require.Equal(t, "al-1", f.linked["s-1"])
	f.putStatus = http.StatusAccepted
	f.mu.Unlock()

	// Успехом считается только 200.
	require.False(t, c.AddSongToAlbum(context.Background(), "al-1", "s-2"))
}

func TestAddSongToAlbum_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := New(upstream.New(upstream.Options{Name: "multimedia", BaseURL: base}))
	require.False(t, c.AddSongToAlbum(context.Background(), "al-1", "s-1"))
}

// TestRecommendationsByGenre_Sampling: не больше двух жанров и трёх песен на жанр.
func TestRecommendationsByGenre_Sampling(t *testing.T) {
	t.Parallel()

	f := newFakeCatalog()
	for _, g := range []string{"rock", "pop", "jazz", "blues", "folk"} {
		for i := 0; i < 5; i++ {
			f.byGenre[g] = append(f.byGenre[g], models.Song{ID: fmt.Sprintf("%s-%d", g, i), Genre: g})
		}
	}
	c := newTestClient(t, f)

	out := c.RecommendationsByGenre(context.Background(), []string{"rock", "pop", "jazz", "blues", "folk"})
	require.LessOrEqual(t, len(out), 10)
	require.Len(t, out, 6)

	perGenre := map[string]int{}
	for _, s := range out {
		perGenre[s.Genre]++
	}
	require.Equal(t, map[string]int{"rock": 3, "pop": 3}, perGenre)
}

func TestRecommendationsByGenre_SkipsFailedGenre(t *testing.T) {
	t.Parallel()

	f := newFakeCatalog()
	f.badGenres["rock"] = true
	f.byGenre["pop"] = []models.Song{{ID: "p-1", Genre: "pop"}}
	c := newTestClient(t, f)

	out := c.RecommendationsByGenre(context.Background(), []string{"rock", "pop"})
	require.Len(t, out, 1)
	require.Equal(t, "p-1", out[0].ID)

	require.Empty(t, c.RecommendationsByGenre(context.Background(), nil))
}

func TestSongsByGenre_Query(t *testing.T) {
	t.Parallel()

	f := newFakeCatalog()
	f.byGenre["hip hop"] = []models.Song{{ID: "h-1", Genre: "hip hop"}}
	c := newTestClient(t, f)

	out, err := c.SongsByGenre(context.Background(), "hip hop")
	require.NoError(t, err)
	require.Len(t, out, 1)
}
