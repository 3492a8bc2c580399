package service

import (
	"testing"
	"time"

	"persona-lab/internal/domain"
)

func TestShareToken_IssueAndParse(t *testing.T) {
	svc := NewShareTokenService("secret", time.Hour)

	token, err := svc.Issue("s1", "r1", domain.RespondentRoleValidator)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != "s1" || claims.RespondentID != "r1" || claims.Role != domain.RespondentRoleValidator {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestShareToken_RejectsExpired(t *testing.T) {
	svc := NewShareTokenService("secret", time.Hour)
	svc.ttl = -time.Minute

	token, err := svc.Issue("s1", "r1", domain.RespondentRoleValidator)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Parse(token); err != ErrShareTokenExpired {
		t.Fatalf("expected ErrShareTokenExpired, got %v", err)
	}
}

func TestShareToken_RejectsForeignSignature(t *testing.T) {
	issuer := NewShareTokenService("secret-a", time.Hour)
	verifier := NewShareTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("s1", "r1", domain.RespondentRoleValidator)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Parse(token); err != ErrShareTokenInvalid {
		t.Fatalf("expected ErrShareTokenInvalid, got %v", err)
	}
}

func TestShareToken_RejectsEmptyInput(t *testing.T) {
	svc := NewShareTokenService("secret", time.Hour)

	if _, err := svc.Parse("   "); err != ErrShareTokenInvalid {
		t.Fatalf("expected ErrShareTokenInvalid, got %v", err)
	}
	noSecret := NewShareTokenService("", time.Hour)
	if _, err := noSecret.Issue("s1", "r1", domain.RespondentRoleValidator); err != ErrShareTokenInvalid {
		t.Fatalf("expected ErrShareTokenInvalid without secret, got %v", err)
	}
}
