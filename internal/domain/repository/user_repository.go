package repository

import "github.com/stoyanovb/gradina-api/internal/domain/entity"

// UserRepository is the persistence port for back-office accounts.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}

// SettingsRepository reads and writes the single store settings row.
type SettingsRepository interface {
	Get() (*entity.StoreSettings, error)
	Update(s *entity.StoreSettings) error
}
