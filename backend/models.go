package backend

// User mirrors the backend user entity. The backend owns its lifecycle; the
// portal only reflects it. The canonical identifier field is "id".
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserList is the list envelope the backend returns for user queries.
type UserList struct {
	Data  []User `json:"data"`
	Count int    `json:"count"`
}

type UserCreate struct {
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Password    string `json:"password"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserUpdate is a partial patch; nil fields are left untouched.
type UserUpdate struct {
	Email       *string `json:"email,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

type UserRegister struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type UpdatePassword struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Item mirrors the backend item entity.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ItemList struct {
	Data  []Item `json:"data"`
	Count int    `json:"count"`
}

type ItemCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ItemUpdate is the full replacement payload for PUT /items/{id}.
type ItemUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
