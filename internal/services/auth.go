package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// nameRe constrains first and last names to letters, hyphen and space.
var nameRe = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё -]+$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByEmailOrUsername(ctx context.Context, email, username *string) (*models.UserDB, error)
	List(ctx context.Context, limit, offset int) ([]models.UserDB, error)
	Count(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, firstName, lastName, passwordHash string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) error
}

// TokenGenerator defines an interface for issuing JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login and password changes.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns the stored record.
func (svc *AuthService) Register(ctx context.Context, email, username, firstName, lastName, password string) (*models.UserDB, error) {
	if err := validateProfile(email, username, firstName, lastName); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, NewValidationError("password", "must not be empty")
	}

	existing, err := svc.reader.GetByEmailOrUsername(ctx, &email, &username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	id, err := svc.writer.Save(ctx, email, username, firstName, lastName, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return svc.reader.GetByID(ctx, id)
}

// Login authenticates a user by email and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmailOrUsername(ctx, &email, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return NewValidationError("new_password", "must not be empty")
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return svc.writer.UpdatePassword(ctx, userID, string(hashedPassword))
}

func validateProfile(email, username, firstName, lastName string) error {
	if email == "" || !strings.Contains(email, "@") {
		return NewValidationError("email", "must be a valid email address")
	}
	if username == "" {
		return NewValidationError("username", "must not be empty")
	}
	if strings.EqualFold(username, "me") {
		return NewValidationError("username", `must not be "me"`)
	}
	for field, value := range map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
	} {
		if !nameRe.MatchString(value) {
			return NewValidationError(field, "contains invalid characters")
		}
		if strings.EqualFold(value, "me") {
			return NewValidationError(field, `must not be "me"`)
		}
	}
	return nil
}
