package view

import (
	"strings"
	"testing"

	"github.com/spaceresearch/mission-console/internal/core/access"
	"github.com/spaceresearch/mission-console/internal/core/domain"
)

func TestResearch_RendersMarkdownDescriptions(t *testing.T) {
	payload := Research(domain.RoleUser, []domain.ResearchFact{
		{FactTitle: "Solar wind", Description: "Peaks at **800 km/s** near coronal holes."},
	})

	page, ok := payload.Data.(ResearchPage)
	if !ok {
		t.Fatalf("unexpected data type: %T", payload.Data)
	}
	if !strings.Contains(page.Facts[0].DescriptionHTML, "<strong>800 km/s</strong>") {
		t.Fatalf("markdown not rendered: %q", page.Facts[0].DescriptionHTML)
	}
	if page.CanEdit {
		t.Fatalf("plain users must not get edit affordances")
	}
}

func TestResearch_RawHTMLIsNotPassedThrough(t *testing.T) {
	payload := Research(domain.RoleAdmin, []domain.ResearchFact{
		{FactTitle: "Injection", Description: `<script>alert("x")</script>`},
	})

	page := payload.Data.(ResearchPage)
	if strings.Contains(page.Facts[0].DescriptionHTML, "<script>") {
		t.Fatalf("raw html must be stripped: %q", page.Facts[0].DescriptionHTML)
	}
	if !page.CanEdit {
		t.Fatalf("admins get edit affordances")
	}
}

func TestMissions_EditFlagFollowsRole(t *testing.T) {
	admin := Missions(domain.RoleAdmin, nil).Data.(MissionsPage)
	if !admin.CanEdit {
		t.Fatalf("admin missions page must be editable")
	}
	user := Missions(domain.RoleUser, nil).Data.(MissionsPage)
	if user.CanEdit {
		t.Fatalf("user missions page must be read-only")
	}
}

func TestAuthFormPayloads(t *testing.T) {
	if LoginSelect().Page != access.PageLoginSelect {
		t.Fatalf("unexpected page id")
	}
	form, ok := AdminSignup().Data.(AuthForm)
	if !ok {
		t.Fatalf("unexpected data type")
	}
	if form.Action != "/auth/signup" {
		t.Fatalf("unexpected action: %s", form.Action)
	}
	if len(form.Fields) != 3 {
		t.Fatalf("expected username+email+password fields, got %d", len(form.Fields))
	}
}
