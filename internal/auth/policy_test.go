package auth_test

import (
	"testing"

	"github.com/nxthub/influencer-hub-backend/internal/auth"
	"github.com/nxthub/influencer-hub-backend/internal/model"
)

func TestExecutiveCannotEditAnyCampaign(t *testing.T) {
	exec := auth.Session{Email: "exec@nxthub.com", Role: model.RoleExecutive, Department: "Headquarters"}

	campaigns := []model.Campaign{
		{ID: "c1", Department: "Marketing"},
		{ID: "c2", Department: "Headquarters"},
		{ID: "c3", Department: ""},
	}

	for _, c := range campaigns {
		if auth.CanEditCampaign(exec, c) {
			t.Errorf("executive should not edit campaign %s", c.ID)
		}
	}
}

func TestManagerEditScopedToDepartment(t *testing.T) {
	cases := []struct {
		name       string
		department string
		campaign   string
		want       bool
	}{
		{"same department", "Marketing", "Marketing", true},
		{"case-insensitive match", "marketing", "MARKETING", true},
		{"different department", "Marketing", "HR", false},
		{"empty session department", "", "Marketing", false},
		{"empty campaign department", "Marketing", "", false},
	}

	for _, tc := range cases {
		sess := auth.Session{Email: "m@nxthub.com", Role: model.RoleManager, Department: tc.department}
		c := model.Campaign{ID: "c1", Department: tc.campaign}
		if got := auth.CanEditCampaign(sess, c); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestGuestHasNoEditRights(t *testing.T) {
	guest := auth.Session{Email: "someone@nxthub.com"}

	if auth.CanEditCampaign(guest, model.Campaign{Department: ""}) {
		t.Error("guest should not edit campaigns")
	}
	if auth.CanCreateCampaign(guest) {
		t.Error("guest should not create campaigns")
	}
}

func TestCanCreateCampaign(t *testing.T) {
	manager := auth.Session{Email: "m@nxthub.com", Role: model.RoleManager, Department: "Sales"}
	exec := auth.Session{Email: "e@nxthub.com", Role: model.RoleExecutive}

	if !auth.CanCreateCampaign(manager) {
		t.Error("manager should create campaigns")
	}
	if auth.CanCreateCampaign(exec) {
		t.Error("executive should not create campaigns")
	}
}

func TestCanDeleteInfluencerOwnershipIsExact(t *testing.T) {
	cases := []struct {
		name      string
		createdBy string
		email     string
		want      bool
	}{
		{"owner matches", "marketing@nxthub.com", "marketing@nxthub.com", true},
		{"case differs", "Marketing@nxthub.com", "marketing@nxthub.com", false},
		{"different user", "marketing@nxthub.com", "sales@nxthub.com", false},
		{"no creator recorded", "", "marketing@nxthub.com", false},
		{"no session email", "marketing@nxthub.com", "", false},
	}

	for _, tc := range cases {
		sess := auth.Session{Email: tc.email, Role: model.RoleManager, Department: "Marketing"}
		inf := model.Influencer{ID: "i1", CreatedBy: tc.createdBy}
		if got := auth.CanDeleteInfluencer(sess, inf); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestEditInfluencerMatchesDeleteRule(t *testing.T) {
	sess := auth.Session{Email: "sales@nxthub.com", Role: model.RoleManager, Department: "Sales"}
	owned := model.Influencer{ID: "i1", CreatedBy: "sales@nxthub.com"}
	foreign := model.Influencer{ID: "i2", CreatedBy: "marketing@nxthub.com"}

	if !auth.CanEditInfluencer(sess, owned) {
		t.Error("owner should edit their influencer")
	}
	if auth.CanEditInfluencer(sess, foreign) {
		t.Error("non-owner should not edit a foreign influencer")
	}
}
