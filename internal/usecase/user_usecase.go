package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/metrics"
)

// UserUseCase handles registration and authentication. Registration creates
// the user row and their default settings row in one transaction so a user
// can never exist without settings.
type UserUseCase struct {
	userRepo     UserRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	retrier      Retrier
	idGen        IDGenerator
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo UserRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	retrier Retrier,
	idGen IDGenerator,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		retrier:      retrier,
		idGen:        idGen,
	}
}

// RegisterInput represents input for registering a user
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Register creates a new user with hashed password and weekly reminders by
// default.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          input.Email,
		Name:           input.Name,
		HashedPassword: hashedPassword,
		Role:           domain.RoleMember,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	settings := &domain.UserSettings{
		ID:                uc.idGen.Generate(),
		UserID:            user.ID,
		Email:             input.Email,
		ReminderFrequency: domain.ReminderWeekly,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.userRepo.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		if err := uc.settingsRepo.CreateTx(ctx, tx, settings); err != nil {
			return err
		}
		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCreated("user")
	user.HashedPassword = ""
	return user, nil
}

// AuthenticateInput represents authentication input
type AuthenticateInput struct {
	Email    string
	Password string
}

// Authenticate verifies user credentials
func (uc *UserUseCase) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !user.Active {
		return nil, domain.ErrUnauthorized
	}

	if err := verifyPassword(user.HashedPassword, input.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	user.HashedPassword = ""
	return user, nil
}

// GetUser retrieves a user by ID
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// UpdateProfileInput represents input for updating a user profile
type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// UpdateProfile updates the caller's own name or password.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		user.Name = *input.Name
	}

	if input.Password != nil {
		if err := domain.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}
		hashedPassword, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashedPassword
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword verifies a password against a hash
func verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
