package handlers

import "github.com/pribylovaa/go-music-profiles/internal/models"

// identityPatch: поля идентичности в PUT-запросах профилей.
type identityPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Location  *string `json:"location"`
	Status    *string `json:"status"`
}

func (p identityPatch) toModel() models.UserUpdate {
	return models.UserUpdate{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Location:  p.Location,
		Status:    p.Status,
	}
}

// CreateArtistRequest: тело POST /artists.
type CreateArtistRequest struct {
	models.Identity
	Songs  []string `json:"songs"`
	Albums []string `json:"albums"`
}

func (r CreateArtistRequest) toModel() models.ArtistCreate {
	return models.ArtistCreate{Identity: r.Identity, Songs: r.Songs, Albums: r.Albums}
}

// UpdateArtistRequest: тело PUT /artists/{id}; отсутствующие поля не меняются.
type UpdateArtistRequest struct {
	identityPatch
	Songs  *[]string `json:"songs"`
	Albums *[]string `json:"albums"`
}

func (r UpdateArtistRequest) toModel() models.ArtistPatch {
	return models.ArtistPatch{
		Profile:  models.ArtistUpdate{Songs: r.Songs, Albums: r.Albums},
		Identity: r.identityPatch.toModel(),
	}
}

// CreateListenerRequest: тело POST /listeners.
type CreateListenerRequest struct {
	models.Identity
	Interests    []string            `json:"interests"`
	Subscription models.Subscription `json:"subscription"`
}

func (r CreateListenerRequest) toModel() models.ListenerCreate {
	return models.ListenerCreate{Identity: r.Identity, Interests: r.Interests, Subscription: r.Subscription}
}

// UpdateListenerRequest: тело PUT /listeners/{id}.
type UpdateListenerRequest struct {
	identityPatch
	Interests    *[]string            `json:"interests"`
	Playlists    *[]string            `json:"playlists"`
	Subscription *models.Subscription `json:"subscription"`
}

func (r UpdateListenerRequest) toModel() models.ListenerPatch {
	return models.ListenerPatch{
		Profile: models.ListenerUpdate{
			Interests:    r.Interests,
			Playlists:    r.Playlists,
			Subscription: r.Subscription,
		},
		Identity: r.identityPatch.toModel(),
	}
}

// AddInterestRequest: тело POST /listeners/{id}/interests.
type AddInterestRequest struct {
	Interest string `json:"interest"`
}

// CreateTransactionRequest: тело POST /transactions.
type CreateTransactionRequest struct {
	Sender   string  `json:"sender"`
	Receiver string  `json:"receiver"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

func (r CreateTransactionRequest) toModel() models.Transaction {
	return models.Transaction{Sender: r.Sender, Receiver: r.Receiver, Amount: r.Amount, Date: r.Date}
}
