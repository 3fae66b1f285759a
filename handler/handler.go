package handler

import (
	"conkyweb/domain"
	"conkyweb/footer"
)

type Handler struct {
	Footer     *domain.FooterConfig
	Formatter  footer.Formatter
	ContentDir string
	Version    string
}
