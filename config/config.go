package config

import (
	"conkyweb/build"
	"conkyweb/domain"
	"conkyweb/footer"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DevEnv = "dev"
	ProEnv = "pro"
)

type Config struct {
	Env           string
	Addr          string
	WhitelistHost string
	CertCacheDir  string
	LogLevel      string
	ContentDir    string
	TemplateDir   string
	AssetsDir     string
	Version       string
	Footer        domain.FooterConfig
	Formatter     footer.Formatter
}

// New returns a viper instance reading config.<env>.json (falling back to
// config.json) from paths, with CONKYWEB_* environment overrides.
func New(paths ...string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("conkyweb")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("json")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("env", ProEnv)
	v.SetDefault("addr", "")
	v.SetDefault("whitelistHost", "")
	v.SetDefault("certCacheDir", "/var/www/.cache")
	v.SetDefault("logLevel", "info")
	v.SetDefault("contentDir", "content")
	v.SetDefault("templateDir", "templates")
	v.SetDefault("assetsDir", "assets")
	v.SetDefault("footer.modifiedYear", build.ModifiedYear)
	v.SetDefault("footer.modifiedDate", build.ModifiedDate)
	v.SetDefault("footer.locale", string(footer.DefaultLocale))
	v.SetDefault("footer.timeZone", "UTC")
	v.SetDefault("footer.dateStyle", string(footer.StyleLong))
	return v
}

// Load reads the config file, if any, and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	env := v.GetString("env")
	v.SetConfigName("config." + env)
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	addr := v.GetString("addr")
	if env == DevEnv && addr == "" {
		addr = ":8080"
	}

	c := &Config{
		Env:           env,
		Addr:          addr,
		WhitelistHost: v.GetString("whitelistHost"),
		CertCacheDir:  v.GetString("certCacheDir"),
		LogLevel:      v.GetString("logLevel"),
		ContentDir:    v.GetString("contentDir"),
		TemplateDir:   v.GetString("templateDir"),
		AssetsDir:     v.GetString("assetsDir"),
		Version:       build.Version,
		Footer: domain.FooterConfig{
			ModifiedYear: v.GetString("footer.modifiedYear"),
			ModifiedDate: v.GetString("footer.modifiedDate"),
		},
	}
	if err := c.Footer.Validate(); err != nil {
		return nil, err
	}

	f, err := footer.NewFormatter(
		v.GetString("footer.locale"),
		v.GetString("footer.timeZone"),
		footer.Style(v.GetString("footer.dateStyle")),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid footer config: %w", err)
	}
	c.Formatter = f
	return c, nil
}
