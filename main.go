package main

import (
	"conkyweb/config"
	"conkyweb/handler"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/acme/autocert"
)

func main() {
	cfg, err := config.Load(config.New(".", "./config"))
	if err != nil {
		panic(err)
	}

	e, err := newServer(cfg)
	if err != nil {
		panic(err)
	}

	if cfg.Addr != "" {
		e.Logger.Fatal(e.Start(cfg.Addr))
	} else {
		// Cache certificates to avoid issues with rate limits (https://letsencrypt.org/docs/rate-limits)
		e.AutoTLSManager.Cache = autocert.DirCache(cfg.CertCacheDir)
		if cfg.WhitelistHost != "" {
			e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.WhitelistHost)
		}
		e.Pre(middleware.HTTPSRedirect())
		e.Logger.Fatal(e.StartAutoTLS(":443"))
	}
}

func newServer(cfg *config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())

	renderer, err := handler.NewTemplateRegistry(cfg.TemplateDir, "page.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	e.Renderer = renderer

	h := handler.Handler{
		Footer:     &cfg.Footer,
		Formatter:  cfg.Formatter,
		ContentDir: cfg.ContentDir,
		Version:    cfg.Version,
	}

	e.GET("/", h.GetIndex)
	e.GET("/docs/:name", h.GetDoc)
	e.GET("/footer", h.GetFooter)
	e.GET("/api/footer", h.GetFooterJSON)
	e.GET("/healthz", h.Health)
	e.Static("/static", cfg.AssetsDir)
	e.File("/favicon.ico", filepath.Join(cfg.AssetsDir, "favicon.ico"))

	// Fancy error pages
	e.HTTPErrorHandler = errorHandler(cfg.AssetsDir)

	e.Logger.Infof("conkyweb %s, footer year %s, updated %s", cfg.Version, cfg.Footer.ModifiedYear, cfg.Footer.ModifiedDate)
	return e, nil
}

func logLevel(s string) log.Lvl {
	switch s {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func errorHandler(assetsDir string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		if code != http.StatusNotFound {
			c.Logger().Error(err)
		}
		page, err := os.ReadFile(filepath.Join(assetsDir, fmt.Sprintf("%d.html", code)))
		if err != nil {
			c.Logger().Error(err)
			err = c.NoContent(code)
		} else {
			err = c.HTMLBlob(code, page)
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
