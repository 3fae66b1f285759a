package domain

import (
	"errors"
	"strings"
)

var ErrMissingYear = errors.New("footer: modified year is not set")

// FooterConfig is the build metadata shown in the page footer. ModifiedDate
// is kept as supplied; it is parsed only when rendered.
type FooterConfig struct {
	ModifiedYear string
	ModifiedDate string
}

func (f FooterConfig) Validate() error {
	if strings.TrimSpace(f.ModifiedYear) == "" {
		return ErrMissingYear
	}
	return nil
}
