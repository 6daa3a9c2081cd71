package account

import (
	"fmt"

	userRepo "cleanly/database/repository/user"
	"cleanly/models"
	"cleanly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ResetMessage is returned for every password-reset request so the endpoint
// never reveals which emails are registered.
const ResetMessage = "If a user with that email exists, a password reset link has been sent."

// RegisterInput is the public registration payload. Role is intentionally
// absent: every new account starts as a customer, and elevation to provider
// or admin is a separate admin-gated step.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileInput carries the self-service profile fields.
type ProfileInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the session payload returned after register and login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// AccountService manages registration, authentication and profiles.
type AccountService interface {
	Register(in RegisterInput) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	ResetPassword(email string) string
	Logout(token string) error
	UpdateProfile(userID string, in ProfileInput) (*models.User, error)
	ListProviders() ([]models.PublicProvider, error)
}

// DefaultAccountService is the standard AccountService implementation.
type DefaultAccountService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.JWTManager
	Auth   *redis.Client
}

// Register creates a customer account and issues a session token.
func (s *DefaultAccountService) Register(in RegisterInput) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError{Reason: "User already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.respond(user)
}

// Authenticate verifies credentials and issues a session token.
func (s *DefaultAccountService) Authenticate(email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, utils.UnauthorizedError{Reason: "Invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.UnauthorizedError{Reason: "Invalid email or password"}
	}
	return s.respond(user)
}

// ResetPassword acknowledges the request with the fixed message regardless
// of whether the account exists.
// TODO: look up the account and deliver a reset link once outbound email
// exists.
func (s *DefaultAccountService) ResetPassword(email string) string {
	return ResetMessage
}

// Logout puts the token's hash on the denylist until its natural expiry.
func (s *DefaultAccountService) Logout(token string) error {
	if err := utils.RevokeToken(s.Auth, utils.HashToken(token), s.Tokens.TTL()); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// UpdateProfile applies self-service changes to the caller's own account.
func (s *DefaultAccountService) UpdateProfile(userID string, in ProfileInput) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, utils.NotFoundError{Resource: "User"}
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" && in.Email != user.Email {
		other, err := s.Repo.GetByEmail(in.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email availability: %w", err)
		}
		if other != nil {
			return nil, utils.ConflictError{Reason: "Email already in use"}
		}
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.Repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ListProviders returns approved providers for the public listing.
func (s *DefaultAccountService) ListProviders() ([]models.PublicProvider, error) {
	providers, err := s.Repo.ListApprovedProviders()
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

func (s *DefaultAccountService) respond(user *models.User) (*AuthResponse, error) {
	token, err := s.Tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}
