package models

// Role: роль пользователя в users-сервисе.
type Role string

const (
	RoleArtist   Role = "ARTIST"
	RoleListener Role = "LISTENER"
)

// User: запись users-сервиса (идентичность человека).
type User struct {
	ID         string `json:"id"`
	FirebaseID string `json:"firebase_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	Role       Role   `json:"role"`
	Status     string `json:"status,omitempty"`
}

// Identity: поля идентичности, которые клиент передаёт при создании профиля.
type Identity struct {
	FirebaseID string `json:"firebase_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Location   string `json:"location"`
}

// UserCreate: тело POST /users.
type UserCreate struct {
	Identity
	Role Role `json:"role"`
}

// UserUpdate: частичное обновление идентичности (PUT /users/{id}).
// В запрос попадают только не-nil поля.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Location  *string `json:"location,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Location == nil && u.Status == nil
}
