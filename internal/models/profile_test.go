package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubscription_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, SubscriptionNormal.Valid())
	require.False(t, Subscription("").Valid())
	require.False(t, Subscription("FREE").Valid())
}

func TestUniqueRefs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a", "b", "c"}, UniqueRefs([]string{"a", "b", "a", "", "c", "b"}))
	require.NotNil(t, UniqueRefs(nil))
	require.Empty(t, UniqueRefs(nil))
}

// TestListenerUpdate_Fields_OnlyGivenFields: в $set попадают только заданные поля.
func TestListenerUpdate_Fields_OnlyGivenFields(t *testing.T) {
	t.Parallel()

	premium := SubscriptionPremium
	upd := ListenerUpdate{Subscription: &premium}

	require.False(t, upd.IsEmpty())
	require.Equal(t, []Field{{Name: "subscription", Value: "premium"}}, upd.Fields())
}

func TestListenerUpdate_Fields_AllSet(t *testing.T) {
	t.Parallel()

	interests := []string{"rock", "rock", "jazz"}
	playlists := []string{}
	free := SubscriptionFree
	upd := ListenerUpdate{Interests: &interests, Playlists: &playlists, Subscription: &free}

	require.Equal(t, []Field{
		{Name: RefInterests, Value: []string{"rock", "jazz"}},
		{Name: RefPlaylists, Value: []string{}},
		{Name: "subscription", Value: "free"},
	}, upd.Fields())
	require.True(t, ListenerUpdate{}.IsEmpty())
	require.Empty(t, ListenerUpdate{}.Fields())
}

func TestArtistUpdate_Fields_DeduplicatesLists(t *testing.T) {
	t.Parallel()

	albums := []string{"al2", "al2", "", "al3"}
	upd := ArtistUpdate{Albums: &albums}

	require.Equal(t, []Field{{Name: RefAlbums, Value: []string{"al2", "al3"}}}, upd.Fields())
	require.True(t, ArtistUpdate{}.IsEmpty())
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, UserUpdate{}.IsEmpty())

	email := "new@mail.com"
	require.False(t, UserUpdate{Email: &email}.IsEmpty())
}

func TestTransactionUpdate_Fields(t *testing.T) {
	t.Parallel()

	amount := 5.5
	date := "2021-01-01"
	upd := TransactionUpdate{Amount: &amount, Date: &date}

	require.Equal(t, []Field{
		{Name: "amount", Value: 5.5},
		{Name: "date", Value: "2021-01-01"},
	}, upd.Fields())
	require.True(t, TransactionUpdate{}.IsEmpty())
}

func TestNewProfile(t *testing.T) {
	t.Parallel()

	p := NewProfile("p1", User{ID: "u1", FirebaseID: "fb", Email: "e", FirstName: "f", LastName: "l", Location: "AR", Status: "ACTIVE", Role: RoleArtist})
	require.Equal(t, Profile{ID: "p1", UserID: "u1", FirebaseID: "fb", Email: "e", FirstName: "f", LastName: "l", Location: "AR", Status: "ACTIVE", Role: RoleArtist}, p)
}
