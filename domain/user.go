package domain

import "time"

// User representa al titular de la sesión actual.
// Los usuarios registrados se persisten en MySQL; los invitados
// se generan al vuelo y nunca se guardan.
type User struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // El "-" oculta el password en JSON
	IsGuest   bool      `gorm:"-" json:"is_guest,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName especifica el nombre de la tabla en MySQL
func (User) TableName() string {
	return "users"
}

// Profile devuelve una copia del usuario sin el hash del password.
// El estado de sesión nunca retiene credenciales.
func (u User) Profile() *User {
	u.Password = ""
	return &u
}
