package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"persona-lab/internal/domain"
	"persona-lab/internal/email"
	"persona-lab/internal/repository"
)

var (
	ErrSessionNotFound   = errors.New("validation session not found")
	ErrShareExpired      = errors.New("share link expired")
	ErrSharePassword     = errors.New("share password incorrect")
	ErrShareRateLimited  = errors.New("too many password attempts")
	ErrInviteUnavailable = errors.New("invitations not configured")
)

// SessionService maneja el ciclo de vida de las sesiones de validación y el
// flujo de desbloqueo del share link por parte de los validadores.
type SessionService struct {
	logger       *zap.Logger
	sessions     repository.SessionRepository
	tokens       *ShareTokenService
	limiter      ShareRateLimiter
	invites      email.Sender
	shareBaseURL string
	sessionTTL   time.Duration
}

func NewSessionService(
	logger *zap.Logger,
	sessions repository.SessionRepository,
	tokens *ShareTokenService,
	limiter ShareRateLimiter,
	invites email.Sender,
	shareBaseURL string,
	sessionTTL time.Duration,
) *SessionService {
	if sessionTTL <= 0 {
		sessionTTL = 30 * 24 * time.Hour
	}
	return &SessionService{
		logger:       logger,
		sessions:     sessions,
		tokens:       tokens,
		limiter:      limiter,
		invites:      invites,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
		sessionTTL:   sessionTTL,
	}
}

// CreateSession crea una sesión nueva con su share link protegido por password.
func (s *SessionService) CreateSession(ctx context.Context, founderName, founderEmail, productName, sharePassword string) (domain.ValidationSession, error) {
	if strings.TrimSpace(founderName) == "" {
		return domain.ValidationSession{}, fmt.Errorf("founder name is required")
	}
	if len(sharePassword) < 4 {
		return domain.ValidationSession{}, fmt.Errorf("share password too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(sharePassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ValidationSession{}, fmt.Errorf("hash share password: %w", err)
	}

	now := time.Now().UTC()
	session := domain.ValidationSession{
		ID:                uuid.NewString(),
		FounderName:       strings.TrimSpace(founderName),
		FounderEmail:      strings.TrimSpace(founderEmail),
		ProductName:       strings.TrimSpace(productName),
		ShareToken:        uuid.NewString(),
		SharePasswordHash: string(hash),
		ExpiresAt:         now.Add(s.sessionTTL),
		CreatedAt:         now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.ValidationSession{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// AuthorizeShare verifica el password de un share link y emite el token JWT
// del validador. Los intentos se acotan por share token.
func (s *SessionService) AuthorizeShare(ctx context.Context, shareToken, password string) (string, domain.ValidationSession, error) {
	if s.limiter != nil && !s.limiter.Allow(shareToken) {
		return "", domain.ValidationSession{}, ErrShareRateLimited
	}

	session, err := s.sessions.GetByShareToken(ctx, shareToken)
	if err != nil {
		return "", domain.ValidationSession{}, ErrSessionNotFound
	}
	if session.IsExpired(time.Now().UTC()) {
		return "", domain.ValidationSession{}, ErrShareExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(session.SharePasswordHash), []byte(password)); err != nil {
		return "", domain.ValidationSession{}, ErrSharePassword
	}

	respondentID := uuid.NewString()
	token, err := s.tokens.Issue(session.ID, respondentID, domain.RespondentRoleValidator)
	if err != nil {
		return "", domain.ValidationSession{}, fmt.Errorf("issue validator token: %w", err)
	}
	return token, session, nil
}

// InviteValidator envía el share link por correo a un validador.
func (s *SessionService) InviteValidator(ctx context.Context, sessionID, toEmail string) error {
	if s.invites == nil {
		return ErrInviteUnavailable
	}
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return ErrSessionNotFound
	}

	link := s.shareBaseURL + "/share/" + session.ShareToken
	if err := s.invites.SendShareInvite(ctx, toEmail, session.FounderName, session.ProductName, link); err != nil {
		if s.logger != nil {
			s.logger.Warn("share invite failed", zap.String("session_id", sessionID), zap.Error(err))
		}
		return err
	}
	return nil
}
