package handler

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizerStrict = bluemonday.StrictPolicy()
	sanitizerUGC    = bluemonday.UGCPolicy()
	pageName        = regexp.MustCompile("^[a-zA-Z0-9_-]+$")
)

type PageDTO struct {
	Name    string
	Title   string
	Content template.HTML
	Footer  template.HTML
}

func (h *Handler) GetIndex(c echo.Context) error {
	return h.renderPage(c, "index")
}

func (h *Handler) GetDoc(c echo.Context) error {
	name := c.Param("name")
	if !pageName.MatchString(name) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return h.renderPage(c, name)
}

func (h *Handler) renderPage(c echo.Context, name string) error {
	md, err := os.ReadFile(filepath.Join(h.ContentDir, name+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return fmt.Errorf("error reading page %s: %w", name, err)
	}

	footerHTML, err := h.footerHTML()
	if err != nil {
		return err
	}

	c.Logger().Debugf("rendering page %s", name)
	return c.Render(http.StatusOK, "page.html", PageDTO{
		Name:    name,
		Title:   sanitizerStrict.Sanitize(pageTitle(md, name)),
		Content: safeMd(md),
		Footer:  footerHTML,
	})
}

func newParser() *parser.Parser {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	return parser.NewWithExtensions(extensions)
}

func mdToHTML(md []byte) []byte {
	doc := newParser().Parse(md)

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return markdown.Render(doc, renderer)
}

func safeMd(md []byte) template.HTML {
	return template.HTML(sanitizerUGC.SanitizeBytes(mdToHTML(md)))
}

// pageTitle is the text of the first level-1 heading, or name.
func pageTitle(md []byte, name string) string {
	doc := newParser().Parse(md)
	var title string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		h, ok := node.(*ast.Heading)
		if !ok || !entering || h.Level != 1 {
			return ast.GoToNext
		}
		var b strings.Builder
		ast.WalkFunc(h, func(n ast.Node, entering bool) ast.WalkStatus {
			if leaf := n.AsLeaf(); entering && leaf != nil {
				b.Write(leaf.Literal)
			}
			return ast.GoToNext
		})
		title = b.String()
		return ast.Terminate
	})
	if title == "" {
		return name
	}
	return title
}
