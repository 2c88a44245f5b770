package cli

import (
	"fmt"
	"text/template"
)

// renderTemplate executes tmpl with data and writes it to the command's IO
func (c *Cli) renderTemplate(name, tmpl string, data any) error {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return nil
}
