package email

import (
	"strings"

	"github.com/trendiesmaroc/admin-backend/internal/store"
)

// renderSubject substitutes declared template variables into the subject
// line. Missing values render as [name] so a raw {{name}} never leaks.
func renderSubject(template store.EmailTemplate, variables map[string]string) string {
	return substitute(template.Subject, template.Variables, variables)
}

// renderContent substitutes declared template variables into the HTML body.
func renderContent(template store.EmailTemplate, variables map[string]string) string {
	return substitute(template.HTMLContent, template.Variables, variables)
}

func substitute(text string, declared []string, variables map[string]string) string {
	for _, name := range declared {
		value := variables[name]
		if value == "" {
			value = "[" + name + "]"
		}
		text = strings.ReplaceAll(text, "{{"+name+"}}", value)
	}
	return text
}
