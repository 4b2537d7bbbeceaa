package repositories

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"motostock-api/models"
)

// UserRepository persists application accounts. Save and
// UpdatePassword take the clear-text password as a separate argument
// and hash it before it gets anywhere near storage; the model itself
// only ever carries the hash.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save hashes the password with a fresh salt and inserts the account.
// The user's id is populated from storage on success. A taken username
// surfaces as ErrDuplicate.
func (r *UserRepository) Save(user *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	result := r.db.Create(user)
	if result.Error != nil {
		log.Printf("Error saving user: %v", result.Error)
		return fmt.Errorf("save user: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("save user: no rows affected")
	}
	return nil
}

// Update overwrites the profile fields of the matching row. The
// password column is left untouched; use UpdatePassword for that.
func (r *UserRepository) Update(user *models.User) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"username": user.Username,
			"role":     user.Role,
			"name":     user.Name,
			"email":    user.Email,
		})
	if result.Error != nil {
		log.Printf("Error updating user %d: %v", user.ID, result.Error)
		return fmt.Errorf("update user: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword re-hashes the new clear-text password and overwrites
// the stored hash for the given account.
func (r *UserRepository) UpdatePassword(id uint, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("password", string(hash))
	if result.Error != nil {
		log.Printf("Error updating password for user %d: %v", id, result.Error)
		return fmt.Errorf("update password: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		log.Printf("Error deleting user %d: %v", id, result.Error)
		return fmt.Errorf("delete user: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		err = translate(err)
		if err == ErrNotFound {
			return nil, ErrNotFound
		}
		log.Printf("Error finding user %d: %v", id, err)
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Find(&users).Error; err != nil {
		log.Printf("Error listing users: %v", err)
		return nil, fmt.Errorf("list users: %w", translate(err))
	}
	return users, nil
}

// FindByUsername looks up an account by its exact login name.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		err = translate(err)
		if err == ErrNotFound {
			return nil, ErrNotFound
		}
		log.Printf("Error finding user by username: %v", err)
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

// Authenticate verifies the supplied clear-text password against the
// stored hash. An unknown username and a wrong password both return
// ErrInvalidCredentials with no further distinction.
func (r *UserRepository) Authenticate(username, password string) (*models.User, error) {
	user, err := r.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
