package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
)

func newTestProfileService() (*ProfileService, *stubUserRepo) {
	repo := newStubUserRepo()
	return NewProfileService(repo, zerolog.Nop()), repo
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc, users := newTestProfileService()

	created, _ := users.Create(context.Background(), &domain.User{
		FullName: "Ann", Email: "ann@x.com", Role: domain.RoleUser,
	})

	updated, err := svc.UpdateProfile(context.Background(), created.ID, "Ann Smith", "ann.smith@x.com")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Ann Smith" || updated.Email != "ann.smith@x.com" {
		t.Fatalf("unexpected result: %+v", updated)
	}

	live, _ := users.FindByID(context.Background(), created.ID)
	if live.FullName != "Ann Smith" || live.Email != "ann.smith@x.com" {
		t.Fatalf("stored record not updated: %+v", live)
	}
}

func TestProfileService_UpdateProfile_EmptyFieldsUntouched(t *testing.T) {
	svc, users := newTestProfileService()

	created, _ := users.Create(context.Background(), &domain.User{
		FullName: "Ann", Email: "ann@x.com", Role: domain.RoleUser,
	})

	if _, err := svc.UpdateProfile(context.Background(), created.ID, "", ""); err != nil {
		t.Fatalf("update: %v", err)
	}

	live, _ := users.FindByID(context.Background(), created.ID)
	if live.FullName != "Ann" || live.Email != "ann@x.com" {
		t.Fatalf("empty fields overwrote stored record: %+v", live)
	}
}

func TestProfileService_UpdateProfile_SameEmailNoConflict(t *testing.T) {
	svc, users := newTestProfileService()

	created, _ := users.Create(context.Background(), &domain.User{
		FullName: "Ann", Email: "ann@x.com", Role: domain.RoleUser,
	})

	// Re-submitting the current email must not trip the uniqueness check.
	updated, err := svc.UpdateProfile(context.Background(), created.ID, "Ann Smith", "ann@x.com")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "ann@x.com" || updated.FullName != "Ann Smith" {
		t.Fatalf("unexpected result: %+v", updated)
	}
}

func TestProfileService_UpdateProfile_EmailTaken(t *testing.T) {
	svc, users := newTestProfileService()

	ann, _ := users.Create(context.Background(), &domain.User{
		FullName: "Ann", Email: "ann@x.com", Role: domain.RoleUser,
	})
	_, _ = users.Create(context.Background(), &domain.User{
		FullName: "Bob", Email: "bob@x.com", Role: domain.RoleUser,
	})

	if _, err := svc.UpdateProfile(context.Background(), ann.ID, "", "bob@x.com"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	live, _ := users.FindByID(context.Background(), ann.ID)
	if live.Email != "ann@x.com" {
		t.Fatalf("conflicting update mutated stored record: %+v", live)
	}
}

func TestProfileService_UpdateProfile_MalformedEmail(t *testing.T) {
	svc, users := newTestProfileService()

	created, _ := users.Create(context.Background(), &domain.User{
		FullName: "Ann", Email: "ann@x.com", Role: domain.RoleUser,
	})

	if _, err := svc.UpdateProfile(context.Background(), created.ID, "", "not-an-email"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestProfileService_UpdateProfile_UnknownUser(t *testing.T) {
	svc, _ := newTestProfileService()

	if _, err := svc.UpdateProfile(context.Background(), "missing", "Ann", ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
