package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFooterConfigValidate(t *testing.T) {
	assert.NoError(t, FooterConfig{ModifiedYear: "2021"}.Validate())
	assert.NoError(t, FooterConfig{ModifiedYear: "2021", ModifiedDate: "not-a-date"}.Validate())
	assert.ErrorIs(t, FooterConfig{ModifiedDate: "2021-03-15T10:00:00Z"}.Validate(), ErrMissingYear)
	assert.ErrorIs(t, FooterConfig{ModifiedYear: "  "}.Validate(), ErrMissingYear)
}
