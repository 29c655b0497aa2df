package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func newProfileFixture(t *testing.T) (*ProfileService, *stubUserRepo, *stubSessionStore) {
	t.Helper()
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewProfileService(repo, sessions, zerolog.Nop())
	return svc, repo, sessions
}

// registerDirect inserts a user and opens a session without going through
// AuthService, keeping these tests focused on the profile rules.
func registerDirect(t *testing.T, repo *stubUserRepo, sessions *stubSessionStore, email, role string) (userID, token string) {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: "$2a$04$fakehashfakehashfakehash",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err = sessions.Establish(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("establish session: %v", err)
	}
	return user.ID, token
}

func TestProfileService_Update_Success(t *testing.T) {
	svc, repo, sessions := newProfileFixture(t)
	userID, token := registerDirect(t, repo, sessions, "master@example.com", domain.RoleMaster)

	updated, err := svc.UpdateProfile(context.Background(), token, ports.ProfilePatch{
		Name:      strPtr("Anna"),
		Specialty: strPtr("Manicure"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Anna" || updated.Specialty != "Manicure" {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.ID != userID {
		t.Fatalf("updated wrong user: %s", updated.ID)
	}

	// Untouched fields survive a later partial update.
	updated, err = svc.UpdateProfile(context.Background(), token, ports.ProfilePatch{
		Photo: strPtr("/static/uploads/abc.jpg"),
	})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if updated.Name != "Anna" || updated.Specialty != "Manicure" || updated.Photo != "/static/uploads/abc.jpg" {
		t.Fatalf("partial update clobbered fields: %+v", updated)
	}

	// The public catalog reflects the change.
	profiles, err := NewCatalogService(repo).ListMasters(context.Background())
	if err != nil {
		t.Fatalf("list masters: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Anna" {
		t.Fatalf("catalog does not reflect update: %+v", profiles)
	}
}

func TestProfileService_Update_RoleGate(t *testing.T) {
	svc, repo, sessions := newProfileFixture(t)
	_, clientToken := registerDirect(t, repo, sessions, "client@example.com", domain.RoleClient)
	_, adminToken := registerDirect(t, repo, sessions, "admin@example.com", domain.RoleAdmin)

	for name, token := range map[string]string{"client": clientToken, "admin": adminToken} {
		if _, err := svc.UpdateProfile(context.Background(), token, ports.ProfilePatch{Name: strPtr("X")}); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", name, err)
		}
	}
	if repo.updateCalls != 0 {
		t.Fatalf("forbidden update must not write, saw %d writes", repo.updateCalls)
	}
}

func TestProfileService_Update_Unauthenticated(t *testing.T) {
	svc, repo, sessions := newProfileFixture(t)
	_, token := registerDirect(t, repo, sessions, "master@example.com", domain.RoleMaster)

	if _, err := svc.UpdateProfile(context.Background(), "", ports.ProfilePatch{Name: strPtr("X")}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("empty token: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), "never-issued", ports.ProfilePatch{Name: strPtr("X")}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("unknown token: expected ErrUnauthenticated, got %v", err)
	}

	// A revoked session is anonymous again.
	if err := sessions.Revoke(context.Background(), token); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), token, ports.ProfilePatch{Name: strPtr("X")}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("revoked token: expected ErrUnauthenticated, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("unauthenticated update must not write, saw %d writes", repo.updateCalls)
	}
}

func TestProfileService_Update_EmptyPatch(t *testing.T) {
	svc, repo, sessions := newProfileFixture(t)
	_, token := registerDirect(t, repo, sessions, "master@example.com", domain.RoleMaster)

	user, err := svc.UpdateProfile(context.Background(), token, ports.ProfilePatch{})
	if err != nil {
		t.Fatalf("empty patch failed: %v", err)
	}
	if user == nil {
		t.Fatalf("expected current user back")
	}
	if repo.updateCalls != 0 {
		t.Fatalf("empty patch must not write, saw %d writes", repo.updateCalls)
	}
}
