package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hikeup-backend/database"
	"github.com/hikeup-backend/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// FindByExternalIDOrEmail retrieves the first user matching either the
// external identity ID or the email. OR semantics: a match on one field is
// enough. Returns (nil, nil) when no user exists.
func (r *UserRepository) FindByExternalIDOrEmail(externalID, email string) (*models.User, error) {
	var users []models.User
	result := database.DB.
		Where("external_id = ? OR email = ?", externalID, email).
		Order("created_at asc").
		Limit(1).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user *models.User) error {
	return database.DB.Save(user).Error
}

// UpdateRoleCache updates the advisory cached role for a user.
// The caller treats a failure here as non-fatal: the authoritative role is
// recomputed from the allowlist on every request anyway.
func (r *UserRepository) UpdateRoleCache(id string, role models.Role) error {
	return database.DB.Model(&models.User{}).Where("id = ?", id).
		Update("role", role).Error
}

// MarkDeleted soft-deletes a user: the status flips to DELETED and PII is
// replaced with anonymized placeholders. The row itself is kept so that
// later credential presentations can be rejected.
func (r *UserRepository) MarkDeleted(id string) error {
	placeholder := uuid.NewString()
	return database.DB.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      models.UserStatusDeleted,
			"email":       fmt.Sprintf("deleted-%s@anonymized.invalid", placeholder),
			"name":        "Deleted User",
			"external_id": fmt.Sprintf("deleted-%s", placeholder),
		}).Error
}

// FindWithPagination retrieves users with pagination and search
func (r *UserRepository) FindWithPagination(page, pageSize int, search string) ([]models.User, int64, error) {
	var users []models.User
	var totalCount int64

	db := database.DB.Model(&models.User{})

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(email ILIKE ? OR name ILIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at desc").Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, totalCount, nil
}
