package http

// Тесты HTTP-слоя: роутер + обработчики + сервис поверх моков хранилища и шлюзов.
//
//  Проверяем:
//  - статус-коды (201 create/attach, 200 read/update, 204 delete, 404, 400);
//  - конверт ошибки {"error":{...}} с request_id;
//  - строгий разбор JSON (неизвестные поля -> 400).

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-music-profiles/internal/config"
	"github.com/pribylovaa/go-music-profiles/internal/models"
	"github.com/pribylovaa/go-music-profiles/internal/service"
	"github.com/pribylovaa/go-music-profiles/internal/storage"
	"github.com/pribylovaa/go-music-profiles/internal/transport/http/middleware"
	"github.com/pribylovaa/go-music-profiles/mocks"
)

type testDeps struct {
	artists      *mocks.MockArtistStorage
	listeners    *mocks.MockListenerStorage
	transactions *mocks.MockTransactionStorage
	users        *mocks.MockUsers
	catalog      *mocks.MockCatalog
}

func newTestRouter(t *testing.T, opts Options) (http.Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := testDeps{
		artists:      mocks.NewMockArtistStorage(ctrl),
		listeners:    mocks.NewMockListenerStorage(ctrl),
		transactions: mocks.NewMockTransactionStorage(ctrl),
		users:        mocks.NewMockUsers(ctrl),
		catalog:      mocks.NewMockCatalog(ctrl),
	}

	svc := service.New(service.Deps{
		Artists:      d.artists,
		Listeners:    d.listeners,
		Transactions: d.transactions,
		Users:        d.users,
		Catalog:      d.catalog,
	}, config.Config{Limits: config.LimitsConfig{List: 100}})

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return NewRouter(svc, opts), d
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, rd)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type errEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func decodeErr(t *testing.T, rr *httptest.ResponseRecorder) errEnvelope {
	t.Helper()

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func testUser(id string, role models.Role) *models.User {
	return &models.User{
		ID:         id,
		FirebaseID: "fb-" + id,
		FirstName:  "Juan",
		LastName:   "Perez",
		Email:      id + "@mail.com",
		Role:       role,
	}
}

const createArtistBody = `{"firebase_id":"fb-1","first_name":"Juan","last_name":"Perez","email":"u@mail.com","location":"AR"}`

func TestCreateArtist_201(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(testUser("u-1", models.RoleArtist), nil)
	d.artists.EXPECT().CreateArtist(gomock.Any(), gomock.Any()).
		Return(&models.Artist{ID: "a-1", UserID: "u-1", Songs: []string{}, Albums: []string{}}, nil)
	d.catalog.EXPECT().Songs(gomock.Any(), []string{}).Return([]models.Song{})
	d.catalog.EXPECT().Albums(gomock.Any(), []string{}).Return([]models.Album{})

	rr := do(t, h, http.MethodPost, "/artists", createArtistBody)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))

	var view models.ArtistView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Equal(t, "a-1", view.ID)
	require.Equal(t, "u-1", view.UserID)
	require.Equal(t, models.RoleArtist, view.Role)
}

func TestCreateArtist_UnknownField_400(t *testing.T) {
	h, _ := newTestRouter(t, Options{})

	rr := do(t, h, http.MethodPost, "/artists", `{"firebase_id":"fb-1","nickname":"x"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	env := decodeErr(t, rr)
	require.Equal(t, "invalid_argument", env.Error.Code)
	require.Equal(t, rr.Header().Get(middleware.HeaderRequestID), env.Error.RequestID)
}

func TestCreateArtist_UpstreamFailure_400WithCause(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("users: unexpected status 500"))

	rr := do(t, h, http.MethodPost, "/artists", createArtistBody)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	env := decodeErr(t, rr)
	require.Equal(t, "upstream_failure", env.Error.Code)
	require.Contains(t, env.Error.Message, "users: unexpected status 500")
}

func TestGetArtist_404(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.artists.EXPECT().ArtistByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	rr := do(t, h, http.MethodGet, "/artists/missing", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "not_found", decodeErr(t, rr).Error.Code)
}

func TestListArtists_FilterAndEmptyArray(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.artists.EXPECT().ListArtists(gomock.Any(), "u-9", int64(100)).Return(nil, nil)

	rr := do(t, h, http.MethodGet, "/artists?user_id=u-9", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}

func TestUpdateArtist_PartialBody(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	albums := []string{"al-1"}
	d.artists.EXPECT().
		UpdateArtist(gomock.Any(), "a-1", models.ArtistUpdate{Albums: &albums}).
		Return(&models.Artist{ID: "a-1", UserID: "u-1", Songs: []string{}, Albums: albums}, nil)
	d.users.EXPECT().User(gomock.Any(), "u-1").Return(testUser("u-1", models.RoleArtist), nil)
	d.catalog.EXPECT().Songs(gomock.Any(), []string{}).Return([]models.Song{})
	d.catalog.EXPECT().Albums(gomock.Any(), albums).Return([]models.Album{{ID: "al-1"}})

	rr := do(t, h, http.MethodPut, "/artists/a-1", `{"albums":["al-1"]}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var view models.ArtistView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Len(t, view.Albums, 1)
}

func TestDeleteArtist_204And404(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.artists.EXPECT().DeleteArtist(gomock.Any(), "a-1").Return(int64(1), nil)
	rr := do(t, h, http.MethodDelete, "/artists/a-1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Empty(t, rr.Body.String())

	d.artists.EXPECT().DeleteArtist(gomock.Any(), "a-2").Return(int64(0), nil)
	rr = do(t, h, http.MethodDelete, "/artists/a-2", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAddArtistAlbum_201(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	artist := &models.Artist{ID: "a-1", UserID: "u-1", Songs: []string{}, Albums: []string{}}
	d.artists.EXPECT().ArtistByID(gomock.Any(), "a-1").Return(artist, nil)
	d.catalog.EXPECT().CreateAlbum(gomock.Any(), gomock.Any()).Return(&models.Album{ID: "al-1"}, "al-1", nil)
	d.artists.EXPECT().AddArtistReference(gomock.Any(), "a-1", models.RefAlbums, "al-1").
		Return(&models.Artist{ID: "a-1", UserID: "u-1", Songs: []string{}, Albums: []string{"al-1"}}, nil)
	d.users.EXPECT().User(gomock.Any(), "u-1").Return(testUser("u-1", models.RoleArtist), nil)
	d.catalog.EXPECT().Songs(gomock.Any(), gomock.Any()).Return([]models.Song{})
	d.catalog.EXPECT().Albums(gomock.Any(), []string{"al-1"}).Return([]models.Album{{ID: "al-1"}})

	rr := do(t, h, http.MethodPost, "/artists/a-1/albums", `{"title":"First","songs":[{"title":"one"}]}`)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestAddSongToAlbum_ForeignAlbum_404(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.artists.EXPECT().ArtistByID(gomock.Any(), "a-1").
		Return(&models.Artist{ID: "a-1", UserID: "u-1", Albums: []string{"al-1"}}, nil)

	rr := do(t, h, http.MethodPost, "/artists/a-1/albums/al-2/songs", `{"title":"one"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListenerRoutes(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	listener := &models.Listener{ID: "l-1", UserID: "u-2", Interests: []string{"rock"}, Playlists: []string{}, Subscription: models.SubscriptionFree}

	d.listeners.EXPECT().ListenerByID(gomock.Any(), "l-1").Return(listener, nil)
	d.users.EXPECT().User(gomock.Any(), "u-2").Return(testUser("u-2", models.RoleListener), nil)
	d.catalog.EXPECT().Playlists(gomock.Any(), []string{}).Return([]models.Playlist{})

	rr := do(t, h, http.MethodGet, "/listeners/l-1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var view models.ListenerView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Equal(t, models.SubscriptionFree, view.Subscription)
	require.Equal(t, []models.Playlist{}, view.Playlists)

	d.listeners.EXPECT().ListenerByID(gomock.Any(), "l-1").Return(listener, nil)
	d.catalog.EXPECT().RecommendationsByGenre(gomock.Any(), []string{"rock"}).Return(nil)

	rr = do(t, h, http.MethodGet, "/listeners/l-1/recommendations", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}

func TestCreateListener_UnknownSubscription_400(t *testing.T) {
	h, _ := newTestRouter(t, Options{})

	body := `{"firebase_id":"fb-1","first_name":"A","last_name":"B","email":"a@b.c","subscription":"gold"}`
	rr := do(t, h, http.MethodPost, "/listeners", body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid argument: unknown subscription", decodeErr(t, rr).Error.Message)
}

func TestAddListenerPlaylist_201(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.listeners.EXPECT().ListenerByID(gomock.Any(), "l-1").
		Return(&models.Listener{ID: "l-1", UserID: "u-2", Playlists: []string{}}, nil)
	d.catalog.EXPECT().
		CreatePlaylist(gomock.Any(), models.PlaylistCreate{Title: "mix", Songs: []string{"s-1"}, OwnerID: "u-2"}).
		Return(&models.Playlist{ID: "p-1"}, "p-1", nil)
	d.listeners.EXPECT().AddListenerReference(gomock.Any(), "l-1", models.RefPlaylists, "p-1").
		Return(&models.Listener{ID: "l-1", UserID: "u-2", Playlists: []string{"p-1"}}, nil)
	d.users.EXPECT().User(gomock.Any(), "u-2").Return(testUser("u-2", models.RoleListener), nil)
	d.catalog.EXPECT().Playlists(gomock.Any(), []string{"p-1"}).Return([]models.Playlist{{ID: "p-1"}})

	rr := do(t, h, http.MethodPost, "/listeners/l-1/playlists", `{"title":"mix","songs":["s-1","s-1"]}`)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestAddListenerInterest_201(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.listeners.EXPECT().AddListenerReference(gomock.Any(), "l-1", models.RefInterests, "jazz").
		Return(&models.Listener{ID: "l-1", UserID: "u-2", Interests: []string{"jazz"}, Playlists: []string{}}, nil)
	d.users.EXPECT().User(gomock.Any(), "u-2").Return(testUser("u-2", models.RoleListener), nil)
	d.catalog.EXPECT().Playlists(gomock.Any(), []string{}).Return([]models.Playlist{})

	rr := do(t, h, http.MethodPost, "/listeners/l-1/interests", `{"interest":" jazz "}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.ListenerView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, []string{"jazz"}, got.Interests)

	rr = do(t, h, http.MethodPost, "/listeners/l-1/interests", `{"interest":""}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid argument: empty interest", decodeErr(t, rr).Error.Message)

	rr = do(t, h, http.MethodPost, "/listeners/l-1/interests", `{"genre":"jazz"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTransactionRoutes(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	tx := &models.Transaction{ID: "t-1", Sender: "u-1", Receiver: "u-2", Amount: 9.5, Date: "2024-01-01"}

	d.transactions.EXPECT().
		CreateTransaction(gomock.Any(), models.Transaction{Sender: "u-1", Receiver: "u-2", Amount: 9.5, Date: "2024-01-01"}).
		Return(tx, nil)
	rr := do(t, h, http.MethodPost, "/transactions", `{"sender":"u-1","receiver":"u-2","amount":9.5,"date":"2024-01-01"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	d.transactions.EXPECT().TransactionByID(gomock.Any(), "t-1").Return(tx, nil)
	rr = do(t, h, http.MethodGet, "/transactions/t-1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Transaction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, *tx, got)

	d.transactions.EXPECT().ListTransactions(gomock.Any(), int64(100)).Return([]models.Transaction{*tx}, nil)
	rr = do(t, h, http.MethodGet, "/transactions", "")
	require.Equal(t, http.StatusOK, rr.Code)

	amount := 10.0
	d.transactions.EXPECT().
		UpdateTransaction(gomock.Any(), "t-1", models.TransactionUpdate{Amount: &amount}).
		Return(&models.Transaction{ID: "t-1", Sender: "u-1", Receiver: "u-2", Amount: 10, Date: "2024-01-01"}, nil)
	rr = do(t, h, http.MethodPut, "/transactions/t-1", `{"amount":10}`)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestStorageFailure_400Generic(t *testing.T) {
	h, d := newTestRouter(t, Options{})

	d.transactions.EXPECT().TransactionByID(gomock.Any(), "t-1").Return(nil, errors.New("connection reset"))

	rr := do(t, h, http.MethodGet, "/transactions/t-1", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	env := decodeErr(t, rr)
	require.Equal(t, "operation did not complete", env.Error.Message)
	require.NotContains(t, rr.Body.String(), "connection reset")
}

func TestNewRouter_BasePathAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewHTTPMetrics(reg)

	h, d := newTestRouter(t, Options{BasePath: "/api", Metrics: m})

	d.transactions.EXPECT().ListTransactions(gomock.Any(), int64(100)).Return(nil, nil)

	rr := do(t, h, http.MethodGet, "/api/transactions", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/transactions", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	n, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// TestNewRouter_PanicCountedInMetrics: паника в обработчике отдаёт 500 и попадает в метрики.
func TestNewRouter_PanicCountedInMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, d := newTestRouter(t, Options{Metrics: middleware.NewHTTPMetrics(reg)})

	d.transactions.EXPECT().TransactionByID(gomock.Any(), "t-1").
		DoAndReturn(func(context.Context, string) (*models.Transaction, error) {
			panic("storage exploded")
		})

	rr := do(t, h, http.MethodGet, "/transactions/t-1", "")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "internal", decodeErr(t, rr).Error.Code)
	require.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))

	n, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	expected := `
# HELP http_requests_total Total number of HTTP requests by method, route and status.
# TYPE http_requests_total counter
http_requests_total{method="GET",route="/transactions/{id}",status="500"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))
}
