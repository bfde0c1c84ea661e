package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/platform/logger"
	"github.com/openblog/api/internal/service/auth"
	"github.com/openblog/api/internal/store"
)

// SignupInput carries the data for a new account. Role names are accepted
// with or without the ROLE_ prefix; an empty list grants the maintainer
// role.
type SignupInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Roles    []string
}

// TokenResult is the outcome of a successful login.
type TokenResult struct {
	AccessToken string
	TokenType   string
}

// AuthService provides account signup and login.
type AuthService interface {
	// Signup registers a new user and grants the requested roles. The user
	// row and the role grants are written in one transaction. Duplicate
	// username or email yields the matching conflict sentinel; an unknown
	// role name yields ErrUnknownRole before anything is written.
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)

	// Login verifies the credentials and issues a signed token. The
	// identifier matches either username or email. Unknown identifier and
	// wrong password both yield auth.ErrInvalidCredentials.
	Login(ctx context.Context, usernameOrEmail, password string) (*TokenResult, error)

	// PrincipalLoader resolves token subjects for the authentication
	// middleware.
	PrincipalLoader
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	db       *sql.DB
	users    store.UserStore
	roles    store.RoleStore
	jwt      auth.JWTService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService.
// It returns an error if any of the required dependencies are nil.
func NewAuthService(
	db *sql.DB,
	users store.UserStore,
	roles store.RoleStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) (AuthService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if roles == nil {
		return nil, domain.NewValidationError("roles", "cannot be nil", domain.ErrValidation)
	}
	if jwtService == nil {
		return nil, domain.NewValidationError("jwtService", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authServiceImpl{
		db:       db,
		users:    users,
		roles:    roles,
		jwt:      jwtService,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "auth_service")),
	}, nil
}

// Signup implements AuthService.Signup
func (s *authServiceImpl) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(input.Name, input.Username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	usernameTaken, err := s.users.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, NewServiceError("signup", "failed to check username", err)
	}
	if usernameTaken {
		return nil, store.ErrUsernameExists
	}

	emailTaken, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewServiceError("signup", "failed to check email", err)
	}
	if emailTaken {
		return nil, store.ErrEmailExists
	}

	// Resolve every role before any row is written.
	roleNames := input.Roles
	if len(roleNames) == 0 {
		roleNames = []string{domain.RoleMaintainer}
	}
	for _, name := range roleNames {
		qualified := domain.QualifyRoleName(name)
		role, err := s.roles.GetByName(ctx, qualified)
		if err != nil {
			if store.IsNotFoundError(err) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownRole, name)
			}
			return nil, NewServiceError("signup", "failed to resolve role", err)
		}
		user.AddRole(role)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, NewServiceError("signup", "failed to hash password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		return s.users.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return nil, err
	}

	log.Info("user signed up",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return user, nil
}

// Login implements AuthService.Login
func (s *authServiceImpl) Login(ctx context.Context, usernameOrEmail, password string) (*TokenResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login failed: unknown identifier")
			return nil, auth.ErrInvalidCredentials
		}
		return nil, NewServiceError("login", "failed to load user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch",
			slog.String("username", user.Username))
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user)
	if err != nil {
		return nil, NewServiceError("login", "failed to issue token", err)
	}

	log.Info("user logged in", slog.String("username", user.Username))
	return &TokenResult{AccessToken: token, TokenType: "Bearer"}, nil
}

// PrincipalLoader resolves the subject of a validated token to the stored
// user. It is what the authentication middleware uses to attach the
// principal to the request.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, username string) (*domain.User, error)
}

// LoadPrincipal implements PrincipalLoader on top of the user store. A
// subject that no longer exists is reported as unauthorized, not as a
// plain not-found.
func (s *authServiceImpl) LoadPrincipal(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsernameOrEmail(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: principal not found", domain.ErrUnauthorized)
		}
		return nil, err
	}
	return user, nil
}

var _ PrincipalLoader = (*authServiceImpl)(nil)
