package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cron6502/plansmaisons-backend/internal/users"
	pkgauth "github.com/cron6502/plansmaisons-backend/pkg/auth"
	"github.com/cron6502/plansmaisons-backend/pkg/auth/session"
	"github.com/cron6502/plansmaisons-backend/pkg/config"
	"github.com/cron6502/plansmaisons-backend/pkg/db/models"
	"github.com/cron6502/plansmaisons-backend/pkg/enums"
	pkgerrors "github.com/cron6502/plansmaisons-backend/pkg/errors"
	"github.com/cron6502/plansmaisons-backend/pkg/mailer"
	"github.com/cron6502/plansmaisons-backend/pkg/security"
	"github.com/cron6502/plansmaisons-backend/pkg/verification"
)

const (
	invalidCredentialsMessage = "invalid credentials"
	restartSignupMessage      = "sign-up session expired, please sign up again"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	Verify(ctx context.Context, signupToken string, req VerifyRequest) (*SessionResponse, error)
	Login(ctx context.Context, req LoginRequest) (*SessionResponse, error)
	Logout(ctx context.Context, accessID string) error
	Refresh(ctx context.Context, req RefreshRequest) (*SessionResponse, error)
}

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	RefreshSignup(ctx context.Context, id uuid.UUID, passwordHash, code string) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

type service struct {
	users       userRepository
	sessions    sessionManager
	mail        mailer.Sender
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	redirectURL string
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionManager
	Mailer         mailer.Sender
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
	RedirectURL    string
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if params.Mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	return &service{
		users:       params.UserRepo,
		sessions:    params.SessionManager,
		mail:        params.Mailer,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		redirectURL: params.RedirectURL,
		now:         time.Now,
	}, nil
}

// Signup validates the request, creates or refreshes an unverified account
// with a fresh one-time code, and emails the code. No session is issued
// until the code is confirmed.
func (s *service) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	email := users.NormalizeEmail(req.Email)
	if !ValidEmailSyntax(email) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email address is malformed")
	}

	if violations := security.ValidatePassword(req.Password); len(violations) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password does not meet the policy").
			WithDetails(violations)
	}

	role := enums.UserRoleVisitor
	if strings.TrimSpace(req.Role) != "" {
		parsed, err := enums.ParseUserRole(req.Role)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown role")
		}
		if parsed == enums.UserRoleAdmin {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "role cannot be self-assigned")
		}
		role = parsed
	}

	code, err := verification.Generate()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating code")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user, err := s.upsertUnverified(ctx, email, hash, code, role, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	if err := s.mail.SendVerification(ctx, email, code, s.redirectURL); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sending verification email")
	}

	token, err := pkgauth.MintSignupToken(s.jwtCfg, s.now(), user.ID, user.Role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting signup token")
	}

	return &SignupResponse{
		SignupToken: token,
		User:        users.ToDTO(*user),
	}, nil
}

// upsertUnverified creates the account, or reissues credentials and code
// when an unverified account signs up again. A verified account is a
// conflict.
func (s *service) upsertUnverified(ctx context.Context, email, hash, code string, role enums.UserRole, firstName, lastName string) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "looking up account")
	}

	if existing != nil {
		if existing.Verified {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an account with this email already exists")
		}
		if err := s.users.RefreshSignup(ctx, existing.ID, hash, code); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "refreshing signup")
		}
		existing.PasswordHash = hash
		existing.VerificationCode = &code
		return existing, nil
	}

	user := &models.User{
		Email:            email,
		PasswordHash:     hash,
		FirstName:        strings.TrimSpace(firstName),
		LastName:         strings.TrimSpace(lastName),
		Role:             role,
		VerificationCode: &code,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating account")
	}
	return user, nil
}

// Verify confirms the emailed code and activates the account. A valid code
// is consumed on success, retrying with the same code afterwards fails.
func (s *service) Verify(ctx context.Context, signupToken string, req VerifyRequest) (*SessionResponse, error) {
	claims, err := pkgauth.ParseToken(s.jwtCfg, signupToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeSessionExpired, restartSignupMessage)
	}
	if claims.Purpose != pkgauth.PurposeSignup {
		return nil, pkgerrors.New(pkgerrors.CodeSessionExpired, restartSignupMessage)
	}

	code, err := s.normalizeCode(req)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeSessionExpired, restartSignupMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading account")
	}
	if user.Verified {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "account is already verified")
	}

	stored := ""
	if user.VerificationCode != nil {
		stored = *user.VerificationCode
	}
	if !verification.Match(code, stored) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "verification code does not match")
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "activating account")
	}
	user.Verified = true
	user.VerificationCode = nil

	return s.issueSession(ctx, user)
}

func (s *service) normalizeCode(req VerifyRequest) (string, error) {
	var (
		code string
		err  error
	)
	if req.Pasted {
		code, err = verification.ParsePasted(req.Code)
	} else {
		code, err = verification.ParseInput(req.Code)
	}
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	return code, nil
}

// Login authenticates email and password. Unverified accounts never receive
// a session, they are told to finish verification first.
func (s *service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "looking up account")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	if !user.Verified {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "verify your email before signing in")
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording login")
	}
	user.LastLoginAt = &now

	return s.issueSession(ctx, user)
}

// Logout revokes the refresh session tied to the access token.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

// Refresh rotates the refresh token and reissues an access token with the
// account's current role.
func (s *service) Refresh(ctx context.Context, req RefreshRequest) (*SessionResponse, error) {
	claims, err := pkgauth.ParseTokenAllowExpired(s.jwtCfg, req.AccessToken)
	if err != nil || claims.Purpose != pkgauth.PurposeAccess {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, claims.ID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotating session")
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading account")
	}

	access, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	return &SessionResponse{
		AccessToken:  access,
		RefreshToken: newRefresh,
		User:         users.ToDTO(*user),
	}, nil
}

func (s *service) issueSession(ctx context.Context, user *models.User) (*SessionResponse, error) {
	accessID := session.NewAccessID()
	refresh, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating session")
	}

	access, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	return &SessionResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         users.ToDTO(*user),
	}, nil
}
