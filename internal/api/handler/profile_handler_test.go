package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/salonspot/masters-api/internal/core/domain"
	"github.com/salonspot/masters-api/internal/core/ports"
)

type stubProfileService struct {
	updateFn func(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error)
}

func (s *stubProfileService) UpdateProfile(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error) {
	return s.updateFn(ctx, token, patch)
}

func TestProfileHandler_Update_Success(t *testing.T) {
	stub := &stubProfileService{
		updateFn: func(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error) {
			if token != "tok-1" {
				t.Fatalf("unexpected token: %s", token)
			}
			if patch.Name == nil || *patch.Name != "Anna" {
				t.Fatalf("name not forwarded: %+v", patch)
			}
			if patch.Specialty != nil || patch.Photo != nil {
				t.Fatalf("omitted fields must stay nil: %+v", patch)
			}
			return &domain.User{ID: "u1", Role: domain.RoleMaster, Name: "Anna"}, nil
		},
	}
	h := NewProfileHandler(stub, testCookies)

	c, rec := newJSONContext(t, http.MethodPost, "/api/update_profile", `{"name":"Anna","unknown_field":"ignored"}`)
	c.Request().AddCookie(&http.Cookie{Name: testCookies.Name, Value: "tok-1"})

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["name"] != "Anna" {
		t.Fatalf("unexpected payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked: %+v", user)
	}
}

func TestProfileHandler_Update_ClearsField(t *testing.T) {
	stub := &stubProfileService{
		updateFn: func(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error) {
			if patch.Photo == nil || *patch.Photo != "" {
				t.Fatalf("explicit empty string must clear the field: %+v", patch)
			}
			return &domain.User{ID: "u1", Role: domain.RoleMaster}, nil
		},
	}
	h := NewProfileHandler(stub, testCookies)

	c, _ := newJSONContext(t, http.MethodPost, "/api/update_profile", `{"photo":""}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestProfileHandler_Update_Denied(t *testing.T) {
	for name, serviceErr := range map[string]error{
		"anonymous":  domain.ErrUnauthenticated,
		"not master": domain.ErrForbidden,
	} {
		stub := &stubProfileService{
			updateFn: func(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.User, error) {
				return nil, serviceErr
			},
		}
		h := NewProfileHandler(stub, testCookies)

		c, _ := newJSONContext(t, http.MethodPost, "/api/update_profile", `{"name":"X"}`)
		if err := h.Update(c); !errors.Is(err, serviceErr) {
			t.Fatalf("%s: expected %v, got %v", name, serviceErr, err)
		}
	}
}
