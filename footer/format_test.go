package footer

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLong(t *testing.T) {
	f, err := NewFormatter("en_US", "UTC", StyleLong)
	require.NoError(t, err)

	assert.Equal(t, "March 15, 2021, 10:00:00 AM", f.Format("2021-03-15T10:00:00Z"))
	assert.Equal(t, "March 15, 2021, 8:30:00 AM", f.Format("2021-03-15T10:30:00+02:00"))
	assert.Equal(t, "March 15, 2021, 12:00:00 AM", f.Format("2021-03-15"))
	assert.Equal(t, "March 1, 2021, 12:00:00 AM", f.Format("2021-03"))
	assert.Equal(t, "January 1, 2021, 12:00:00 AM", f.Format("2021"))
	assert.Equal(t, "March 15, 2021, 10:00:00 AM", f.Format("2021-03-15T10:00Z"))
	assert.Equal(t, "March 15, 2021, 8:00:00 AM", f.Format("2021-03-15T10:00+02:00"))
	assert.Equal(t, "March 15, 2021, 10:00:00 AM", f.Format("2021-03-15T10:00:00.000Z"))
}

func TestFormatNumeric(t *testing.T) {
	f, err := NewFormatter("en-US", "", StyleNumeric)
	require.NoError(t, err)

	assert.Equal(t, "3/15/2021, 10:00:00 AM", f.Format("2021-03-15T10:00:00Z"))
	assert.Equal(t, "3/15/2021, 10:00:00 AM", f.Format("Mon, 15 Mar 2021 10:00:00 +0000"))
}

func TestFormatLocalized(t *testing.T) {
	f, err := NewFormatter("de_DE", "UTC", StyleLong)
	require.NoError(t, err)

	assert.Equal(t, "15. März 2021, 10:00:00", f.Format("2021-03-15T10:00:00Z"))
}

func TestFormatTimeZone(t *testing.T) {
	f, err := NewFormatter("en_US", "Asia/Tokyo", StyleNumeric)
	require.NoError(t, err)

	assert.Equal(t, "3/15/2021, 7:00:00 PM", f.Format("2021-03-15T10:00:00Z"))
	// no offset in the input: read in the configured zone
	assert.Equal(t, "3/15/2021, 10:00:00 AM", f.Format("2021-03-15T10:00:00"))
}

func TestParse(t *testing.T) {
	f, err := NewFormatter("en_US", "Asia/Tokyo", StyleLong)
	require.NoError(t, err)

	got, ok := f.parse("2021-03-15T10:00Z")
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2021, 3, 15, 10, 0, 0, 0, time.UTC)))

	// date-only forms stay UTC regardless of the configured zone
	got, ok = f.parse("2021-03")
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)))

	got, ok = f.parse("2021-03-15T10:00")
	require.True(t, ok)
	assert.Equal(t, "Asia/Tokyo", got.Location().String())

	_, ok = f.parse("21")
	assert.False(t, ok)
}

func TestFormatInvalid(t *testing.T) {
	f, err := NewFormatter("", "", "")
	require.NoError(t, err)

	for _, raw := range []string{"not-a-date", "", "   ", "2021-13-45T99:00:00Z"} {
		assert.Equal(t, InvalidDate, f.Format(raw), raw)
	}
}

func TestFormatterZeroValue(t *testing.T) {
	var f Formatter
	assert.Equal(t, "March 15, 2021, 10:00:00 AM", f.Format("2021-03-15T10:00:00Z"))
}

func TestNewFormatterErrors(t *testing.T) {
	_, err := NewFormatter("xx_XX", "", StyleLong)
	assert.Error(t, err)

	_, err = NewFormatter("en_US", "Nowhere/Atlantis", StyleLong)
	assert.Error(t, err)

	_, err = NewFormatter("en_US", "", Style("short"))
	assert.Error(t, err)

	f, err := NewFormatter("", "", "")
	require.NoError(t, err)
	assert.Equal(t, monday.Locale(monday.LocaleEnUS), f.Locale)
	assert.Equal(t, time.UTC, f.Location)
	assert.Equal(t, StyleLong, f.Style)
}
