package service_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nxthub/influencer-hub-backend/internal/auth"
	appErrors "github.com/nxthub/influencer-hub-backend/internal/errors"
	"github.com/nxthub/influencer-hub-backend/internal/model"
	"github.com/nxthub/influencer-hub-backend/internal/repository"
	"github.com/nxthub/influencer-hub-backend/internal/service"
	"github.com/nxthub/influencer-hub-backend/internal/store"
)

func newInfluencerService() (*service.InfluencerService, *repository.InfluencerRepository) {
	repo := &repository.InfluencerRepository{Store: store.NewMemoryStore()}
	return &service.InfluencerService{InfluencerRepo: repo}, repo
}

func validDraft() model.Influencer {
	return model.Influencer{
		Name:     "New Face",
		Handle:   "@new_face",
		Email:    "new@example.com",
		Mobile:   "+1 555 0100",
		Category: "Travel",
		Language: "English",
	}
}

func TestCreateInfluencerStampsOwnership(t *testing.T) {
	svc, _ := newInfluencerService()

	draft := validDraft()
	draft.CreatedBy = "spoofed@nxthub.com" // must be overwritten

	created, collection, err := svc.CreateInfluencer(draft, salesManager())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.CreatedBy != "sales@nxthub.com" {
		t.Errorf("createdBy should come from the session, got %s", created.CreatedBy)
	}
	if created.ID == "" {
		t.Error("expected a fresh id")
	}
	if collection[0].ID != created.ID {
		t.Error("new influencer should be prepended")
	}
}

func TestCreateInfluencerValidation(t *testing.T) {
	svc, _ := newInfluencerService()
	sess := salesManager()

	strip := []func(*model.Influencer){
		func(i *model.Influencer) { i.Name = "" },
		func(i *model.Influencer) { i.Handle = "" },
		func(i *model.Influencer) { i.Email = "" },
		func(i *model.Influencer) { i.Mobile = "" },
		func(i *model.Influencer) { i.Category = "" },
		func(i *model.Influencer) { i.Language = "" },
	}

	for i, blank := range strip {
		draft := validDraft()
		blank(&draft)
		_, _, err := svc.CreateInfluencer(draft, sess)
		var validation *appErrors.ErrValidation
		if !errors.As(err, &validation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestUpdateInfluencerRequiresOwnership(t *testing.T) {
	svc, repo := newInfluencerService()

	// i1 is owned by marketing@nxthub.com in the seed data.
	stranger := auth.Session{Email: "vignesh.sadula@example.com", Role: model.RoleManager, Department: "Sales"}
	updated, _ := repo.GetByID("i1")
	updated.Category = "Tech"

	_, err := svc.UpdateInfluencer(*updated, stranger)
	var unauthorized *appErrors.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateInfluencerKeepsCreatedBy(t *testing.T) {
	svc, repo := newInfluencerService()
	owner := marketingManager()

	updated, _ := repo.GetByID("i1")
	updated.Category = "Tech"
	updated.CreatedBy = "hijack@nxthub.com" // must not stick

	if _, err := svc.UpdateInfluencer(*updated, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.GetByID("i1")
	if stored.CreatedBy != "marketing@nxthub.com" {
		t.Errorf("createdBy must be immutable, got %s", stored.CreatedBy)
	}
	if stored.Category != "Tech" {
		t.Errorf("update not applied, got %s", stored.Category)
	}
}

func TestUpdateInfluencerMissing(t *testing.T) {
	svc, _ := newInfluencerService()

	draft := validDraft()
	draft.ID = "ghost"
	_, err := svc.UpdateInfluencer(draft, salesManager())
	var notFound *appErrors.ErrInfluencerNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrInfluencerNotFound, got %v", err)
	}
}

func TestDeleteInfluencerByNonOwner(t *testing.T) {
	svc, repo := newInfluencerService()

	stranger := auth.Session{Email: "vignesh.sadula@example.com", Role: model.RoleManager, Department: "Sales"}
	_, err := svc.DeleteInfluencer("i1", stranger)
	var unauthorized *appErrors.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	stored, _ := repo.GetByID("i1")
	if stored == nil {
		t.Error("record should survive a rejected delete")
	}
}

func TestDeleteInfluencerIsIdempotent(t *testing.T) {
	svc, _ := newInfluencerService()
	owner := marketingManager()

	first, err := svc.DeleteInfluencer("i1", owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.DeleteInfluencer("i1", owner)
	if err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("double delete should return the same collection as a single delete")
	}
}
