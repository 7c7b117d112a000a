package email

import (
	"strings"
	"testing"

	"github.com/trendiesmaroc/admin-backend/internal/store"
)

func TestRenderSubstitutesDeclaredVariables(t *testing.T) {
	template := store.EmailTemplate{
		Subject:     "Order Confirmed - {{productName}}",
		HTMLContent: "<p>Hi {{buyerName}},</p><p>{{productName}} for ${{amount}}</p>",
		Variables:   []string{"buyerName", "productName", "amount"},
	}
	vars := map[string]string{
		"buyerName":   "jane",
		"productName": "Silk Scarf",
		"amount":      "89.99",
	}

	subject := renderSubject(template, vars)
	if subject != "Order Confirmed - Silk Scarf" {
		t.Fatalf("unexpected subject %q", subject)
	}

	content := renderContent(template, vars)
	if strings.Contains(content, "{{") {
		t.Fatalf("unreplaced placeholder in %q", content)
	}
	if !strings.Contains(content, "Hi jane,") {
		t.Fatalf("missing buyer name in %q", content)
	}
}

func TestRenderFallsBackToBracketedName(t *testing.T) {
	template := store.EmailTemplate{
		Subject:     "Hello {{name}}",
		HTMLContent: "{{name}} and {{other}}",
		Variables:   []string{"name", "other"},
	}

	content := renderContent(template, map[string]string{"name": "Sam"})
	if content != "Sam and [other]" {
		t.Fatalf("unexpected content %q", content)
	}
	if subject := renderSubject(template, nil); subject != "Hello [name]" {
		t.Fatalf("unexpected subject %q", subject)
	}
}

func TestRenderIgnoresUndeclaredPlaceholders(t *testing.T) {
	template := store.EmailTemplate{
		HTMLContent: "{{declared}} {{sneaky}}",
		Variables:   []string{"declared"},
	}
	content := renderContent(template, map[string]string{"declared": "ok", "sneaky": "no"})
	if content != "ok {{sneaky}}" {
		t.Fatalf("unexpected content %q", content)
	}
}
