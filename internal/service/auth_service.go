package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dailylect/internal/models"
	"dailylect/internal/progress"
	"dailylect/internal/repository"
	"dailylect/internal/security"
	"dailylect/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// AuthService handles authentication business logic. Every successful
// sign-in also accrues daily login credit in the login ledger.
type AuthService struct {
	userRepo        *repository.UserRepository
	loginRepo       *repository.LoginRepository
	emailService    *EmailService
	sessionDuration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, loginRepo *repository.LoginRepository, emailService *EmailService, sessionDuration time.Duration) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		loginRepo:       loginRepo,
		emailService:    emailService,
		sessionDuration: sessionDuration,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(email, passwordHash, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.emailService != nil && s.emailService.IsEnabled() {
		if err := s.emailService.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
			// Registration succeeded; the welcome email is best-effort
			log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return user, nil
}

// Login authenticates a user, creates a session, and records the login day
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, *models.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(user)
	if err != nil {
		return nil, nil, err
	}

	s.recordLoginDay(ctx, user)

	return session, user, nil
}

// OAuthLogin authenticates or provisions a user from an OAuth identity and
// records the login day
func (s *AuthService) OAuthLogin(ctx context.Context, provider, subject, email, name string) (*models.Session, *models.User, error) {
	if provider == "" || subject == "" {
		return nil, nil, errors.New("missing oauth provider information")
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if user == nil {
		if name == "" {
			name = email
		}
		// OAuth accounts never log in with a password; store an
		// unguessable hash so the column is non-empty.
		randomPasswordHash, err := security.HashPassword(security.GenerateSessionID())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate oauth password hash: %w", err)
		}
		user, err = s.userRepo.CreateOAuthUser(email, randomPasswordHash, name, provider, subject)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create oauth user: %w", err)
		}
		if s.emailService != nil && s.emailService.IsEnabled() {
			if err := s.emailService.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
			}
		}
	} else if user.OAuthProvider != "" && user.OAuthProvider != provider {
		return nil, nil, ErrEmailTaken
	}

	session, err := s.createSession(user)
	if err != nil {
		return nil, nil, err
	}

	s.recordLoginDay(ctx, user)

	return session, user, nil
}

func (s *AuthService) createSession(user *models.User) (*models.Session, error) {
	sessionID := security.GenerateSessionID()
	expiresAt := time.Now().Add(s.sessionDuration)

	session, err := s.userRepo.CreateSession(sessionID, user.ID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// recordLoginDay accrues the daily login credit for a successful sign-in.
// A ledger failure is logged but never blocks the sign-in itself; the user
// loses at most one day of credit, not access to their account.
func (s *AuthService) recordLoginDay(ctx context.Context, user *models.User) {
	inserted, err := s.loginRepo.RecordLogin(user.ID, time.Now())
	if err != nil {
		log.Printf("Failed to record login day for user %d: %v", user.ID, err)
		return
	}
	if !inserted {
		return
	}

	// First login of the day. If this is the day the quiz unlocks, tell
	// the user about it.
	count, err := s.loginRepo.CountLoginDays(user.ID)
	if err != nil {
		log.Printf("Failed to count login days for user %d: %v", user.ID, err)
		return
	}
	if count == progress.QuizAccessDays && s.emailService != nil && s.emailService.IsEnabled() {
		if err := s.emailService.SendQuizUnlockedEmail(ctx, user.Email, user.Name); err != nil {
			log.Printf("Failed to send quiz unlocked email to %s: %v", user.Email, err)
		}
	}
}

// ValidateSession checks if a session is valid and returns the associated user
func (s *AuthService) ValidateSession(sessionID string) (*models.User, error) {
	session, err := s.userRepo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired() {
		_ = s.userRepo.DeleteSession(sessionID)
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetUserByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	return user, nil
}

// Logout invalidates a session
func (s *AuthService) Logout(sessionID string) error {
	if err := s.userRepo.DeleteSession(sessionID); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// CleanupExpiredSessions removes expired sessions from the database
func (s *AuthService) CleanupExpiredSessions() error {
	if err := s.userRepo.DeleteExpiredSessions(); err != nil {
		return fmt.Errorf("failed to cleanup sessions: %w", err)
	}
	return nil
}
