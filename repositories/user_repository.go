package repositories

import (
	"errors"
	"strings"

	"rentals-api/domain"

	"gorm.io/gorm"
)

// UserRepository es el colaborador de registros de usuario.
// Los emails se comparan en minúsculas (política case-insensitive).
type UserRepository interface {
	Create(user *domain.User) error
	GetByID(id string) (*domain.User, error)
	GetByEmail(email string) (*domain.User, error)
	ExistsByEmail(email string) (bool, error)
}

// userRepository es la implementación real del repositorio sobre GORM
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository crea una nueva instancia del repositorio
// Recibe la conexión a la base de datos
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserta un nuevo usuario en la base de datos.
// El índice único sobre email resuelve a nivel de store la carrera de dos
// sign-ups simultáneos con el mismo email: el segundo INSERT falla y se
// reporta como ErrConflict.
func (r *userRepository) Create(user *domain.User) error {
	user.Email = strings.ToLower(user.Email)
	err := r.db.Create(user).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}

// GetByID busca un usuario por su ID
func (r *userRepository) GetByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail busca un usuario por su email
// Se usa en el sign-in
func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail chequea si ya hay una cuenta con ese email
// Se usa en el chequeo de duplicados del sign-up
func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
