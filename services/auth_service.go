package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore is the slice of the user repository the auth service needs
type UserStore interface {
	FindByID(id string) (models.User, error)
	FindByEmail(email string) (models.User, error)
	FindByRole(role models.Role) ([]models.User, error)
	Create(user models.User) (models.User, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}

// AuthService handles registration, login, profile and token issuance
type AuthService struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service instance. The signing secret
// and token lifetime come from configuration, not from the environment at
// call time.
func NewAuthService(users UserStore, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user account and returns it with a fresh token
func (s *AuthService) Register(req dto.RegisterRequest) (*dto.TokenResponse, error) {
	// Friendly pre-check; the unique index on email is the real arbiter
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Password:  hashedPassword,
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	user, err = s.users.Create(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.tokenResponse(user)
}

// Login authenticates a user and returns a token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

// AdminLogin authenticates an admin account. A valid user-role credential
// is rejected the same way as a wrong password, the caller learns nothing
// about which part failed.
func (s *AuthService) AdminLogin(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil || user.Role != models.RoleAdmin {
		return nil, ErrInvalidCredentials
	}

	if !CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) (models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
// Only name and phone can change through this path, and only when present
// in the request.
func (s *AuthService) UpdateProfile(id string, req dto.ProfileUpdateRequest) (models.User, error) {
	fields := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		fields["name"] = *req.Name
	}
	if req.Phone != nil && *req.Phone != "" {
		fields["phone"] = *req.Phone
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.User{}, ErrNotFound
			}
			return models.User{}, err
		}
	}

	return s.GetUser(id)
}

// ListUsers retrieves all non-admin accounts
func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.users.FindByRole(models.RoleUser)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// DeleteUser removes a user account. Destructive, there is no soft delete.
func (s *AuthService) DeleteUser(id string) error {
	err := s.users.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *AuthService) tokenResponse(user models.User) (*dto.TokenResponse, error) {
	token, _, err := s.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	// Clear password from response
	user.Password = ""

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// GenerateToken generates a new JWT token for a user
func (s *AuthService) GenerateToken(userID, email, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid.
// Expiry is reported separately from every other failure so the API can
// tell the caller to log in again.
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifies a plaintext password against a bcrypt hash.
// A malformed hash verifies false instead of erroring out.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
