package handler

import (
	"conkyweb/footer"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) footerHTML() (template.HTML, error) {
	v, err := footer.Render(h.Footer, h.Formatter)
	if err != nil {
		return "", err
	}
	return v.HTML()
}

func (h *Handler) GetFooter(c echo.Context) error {
	html, err := h.footerHTML()
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, string(html))
}

func (h *Handler) GetFooterJSON(c echo.Context) error {
	v, err := footer.Render(h.Footer, h.Formatter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok "+h.Version)
}
