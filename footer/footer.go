// Package footer renders the site footer: a copyleft icon and a line naming
// the year and the time the site was last updated.
package footer

import (
	"bytes"
	"conkyweb/domain"
	"errors"
	"fmt"
	"html/template"
)

const IconSize = 20

var ErrNotConfigured = errors.New("footer: configuration is not initialized")

type Icon struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type View struct {
	Icon      Icon   `json:"icon"`
	Year      string `json:"year"`
	Modified  string `json:"modifiedDate"`
	Formatted string `json:"formatted"`
	Text      string `json:"text"`
}

// Render builds the footer for cfg. The output depends only on its inputs.
func Render(cfg *domain.FooterConfig, f Formatter) (View, error) {
	if cfg == nil {
		return View{}, ErrNotConfigured
	}
	if err := cfg.Validate(); err != nil {
		return View{}, err
	}
	formatted := f.Format(cfg.ModifiedDate)
	return View{
		Icon:      Icon{Width: IconSize, Height: IconSize},
		Year:      cfg.ModifiedYear,
		Modified:  cfg.ModifiedDate,
		Formatted: formatted,
		Text:      fmt.Sprintf("%s Conky developers, updated %s", cfg.ModifiedYear, formatted),
	}, nil
}

var tmpl = template.Must(template.New("footer").Parse(`<footer class="footer">
  <div class="footer-icon">
    <svg class="copyleft" width="{{ .Icon.Width }}" height="{{ .Icon.Height }}" viewBox="0 0 24 24" role="img" aria-label="copyleft">
      <circle cx="12" cy="12" r="10" fill="none" stroke="currentColor" stroke-width="2"/>
      <path d="M9.5 9.2a4 4 0 1 1 0 5.6" fill="none" stroke="currentColor" stroke-width="2" transform="matrix(-1 0 0 1 24 0)"/>
    </svg>
  </div>
  <div class="footer-text">
    <p>{{ .Text }}</p>
  </div>
</footer>`))

func (v View) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("error executing footer template: %w", err)
	}
	return template.HTML(buf.String()), nil
}
