package services

import (
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/repositories"
)

// UserService handles business logic for user accounts
type UserService struct {
	users *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{users: repositories.NewUserRepository()}
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id string) (*models.User, error) {
	return s.users.FindByID(id)
}

// UpdateProfile edits a user's profile
func (s *UserService) UpdateProfile(id string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// BecomeGuide upgrades a hiker's cached role to guide. The allowlist
// still owns the admin decision; this only moves between hiker and guide.
func (s *UserService) BecomeGuide(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if user.Role != models.RoleAdmin {
		user.Role = models.RoleGuide
		if err := s.users.Update(user); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// DeleteAccount soft-deletes a user account and anonymizes its PII
func (s *UserService) DeleteAccount(id string) error {
	return s.users.MarkDeleted(id)
}

// ListUsers retrieves users with pagination for the admin dashboard
func (s *UserService) ListUsers(filter dto.UserFilter) (dto.UserListResponse, error) {
	var response dto.UserListResponse

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	users, totalCount, err := s.users.FindWithPagination(filter.Page, filter.PageSize, filter.Search)
	if err != nil {
		return response, err
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.UserListResponse{
		Users:      users,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}
