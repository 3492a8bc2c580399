package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"persona-lab/internal/domain"
)

type mockSessionRepo struct {
	byID    map[string]domain.ValidationSession
	byToken map[string]string
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		byID:    make(map[string]domain.ValidationSession),
		byToken: make(map[string]string),
	}
}

func (m *mockSessionRepo) Create(_ context.Context, session domain.ValidationSession) error {
	m.byID[session.ID] = session
	m.byToken[session.ShareToken] = session.ID
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (domain.ValidationSession, error) {
	session, ok := m.byID[id]
	if !ok {
		return domain.ValidationSession{}, pgx.ErrNoRows
	}
	return session, nil
}

func (m *mockSessionRepo) GetByShareToken(_ context.Context, token string) (domain.ValidationSession, error) {
	id, ok := m.byToken[token]
	if !ok {
		return domain.ValidationSession{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

type mockLimiter struct {
	allow bool
	calls int
}

func (m *mockLimiter) Allow(string) bool {
	m.calls++
	return m.allow
}

func newSessionService(repo *mockSessionRepo, limiter ShareRateLimiter) *SessionService {
	tokens := NewShareTokenService("secret", time.Hour)
	return NewSessionService(zap.NewNop(), repo, tokens, limiter, nil, "https://app.example.com", 0)
}

func TestCreateSession_HashesPasswordAndGeneratesShareToken(t *testing.T) {
	repo := newMockSessionRepo()
	svc := newSessionService(repo, nil)

	session, err := svc.CreateSession(context.Background(), "Ana", "ana@example.com", "LaunchKit", "hunter2")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.ShareToken == "" {
		t.Fatalf("expected share token")
	}
	if session.SharePasswordHash == "hunter2" || session.SharePasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if _, ok := repo.byID[session.ID]; !ok {
		t.Fatalf("session not persisted")
	}
}

func TestCreateSession_RejectsWeakInput(t *testing.T) {
	svc := newSessionService(newMockSessionRepo(), nil)

	if _, err := svc.CreateSession(context.Background(), "  ", "", "", "hunter2"); err == nil {
		t.Fatalf("expected error for empty founder name")
	}
	if _, err := svc.CreateSession(context.Background(), "Ana", "", "", "abc"); err == nil {
		t.Fatalf("expected error for short password")
	}
}

func TestAuthorizeShare_IssuesValidatorToken(t *testing.T) {
	repo := newMockSessionRepo()
	svc := newSessionService(repo, nil)

	session, err := svc.CreateSession(context.Background(), "Ana", "", "LaunchKit", "hunter2")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	token, got, err := svc.AuthorizeShare(context.Background(), session.ShareToken, "hunter2")
	if err != nil {
		t.Fatalf("authorize share: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("expected session %s, got %s", session.ID, got.ID)
	}

	claims, err := svc.tokens.Parse(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.SessionID != session.ID || claims.Role != domain.RespondentRoleValidator {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAuthorizeShare_WrongPasswordNeverIssuesToken(t *testing.T) {
	repo := newMockSessionRepo()
	svc := newSessionService(repo, nil)

	session, _ := svc.CreateSession(context.Background(), "Ana", "", "", "hunter2")
	token, _, err := svc.AuthorizeShare(context.Background(), session.ShareToken, "wrong")
	if err != ErrSharePassword {
		t.Fatalf("expected ErrSharePassword, got %v", err)
	}
	if token != "" {
		t.Fatalf("wrong password must not issue a token")
	}
}

func TestAuthorizeShare_RateLimited(t *testing.T) {
	repo := newMockSessionRepo()
	limiter := &mockLimiter{allow: false}
	svc := newSessionService(repo, limiter)

	session, _ := svc.CreateSession(context.Background(), "Ana", "", "", "hunter2")
	if _, _, err := svc.AuthorizeShare(context.Background(), session.ShareToken, "hunter2"); err != ErrShareRateLimited {
		t.Fatalf("expected ErrShareRateLimited, got %v", err)
	}
	if limiter.calls != 1 {
		t.Fatalf("expected limiter consulted once, got %d", limiter.calls)
	}
}

func TestAuthorizeShare_ExpiredSession(t *testing.T) {
	repo := newMockSessionRepo()
	svc := newSessionService(repo, nil)

	session, _ := svc.CreateSession(context.Background(), "Ana", "", "", "hunter2")
	expired := repo.byID[session.ID]
	expired.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	repo.byID[session.ID] = expired

	if _, _, err := svc.AuthorizeShare(context.Background(), session.ShareToken, "hunter2"); err != ErrShareExpired {
		t.Fatalf("expected ErrShareExpired, got %v", err)
	}
}

func TestAuthorizeShare_UnknownToken(t *testing.T) {
	svc := newSessionService(newMockSessionRepo(), nil)

	if _, _, err := svc.AuthorizeShare(context.Background(), "missing", "hunter2"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
