package footer

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// InvalidDate is shown in place of a date that could not be parsed.
const InvalidDate = "Invalid Date"

type Style string

const (
	StyleLong    Style = "long"
	StyleNumeric Style = "numeric"
)

const DefaultLocale = monday.LocaleEnUS

// Month and weekday names in these layouts are translated by monday.
var longLayouts = map[monday.Locale]string{
	monday.LocaleEnUS: "January 2, 2006, 3:04:05 PM",
	monday.LocaleEnGB: "2 January 2006, 15:04:05",
	monday.LocaleDeDE: "2. January 2006, 15:04:05",
	monday.LocaleFrFR: "2 January 2006 15:04:05",
	monday.LocaleEsES: "2 de January de 2006, 15:04:05",
	monday.LocaleItIT: "2 January 2006, 15:04:05",
	monday.LocalePtBR: "2 de January de 2006, 15:04:05",
	monday.LocaleRuRU: "2 January 2006, 15:04:05",
	monday.LocaleJaJP: "2006年1月2日 15:04:05",
}

var numericLayouts = map[monday.Locale]string{
	monday.LocaleEnUS: "1/2/2006, 3:04:05 PM",
	monday.LocaleEnGB: "02/01/2006, 15:04:05",
	monday.LocaleDeDE: "2.1.2006, 15:04:05",
	monday.LocaleFrFR: "02/01/2006 15:04:05",
	monday.LocaleEsES: "2/1/2006, 15:04:05",
	monday.LocaleItIT: "2/1/2006, 15:04:05",
	monday.LocalePtBR: "02/01/2006, 15:04:05",
	monday.LocaleRuRU: "02.01.2006, 15:04:05",
	monday.LocaleJaJP: "2006/1/2 15:04:05",
}

// Inputs carrying an explicit offset.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"2006-01-02 15:04:05Z07:00",
}

// Date-only ISO strings are UTC midnight.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01",
	"2006",
}

// Inputs without an offset are read in the formatter's location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type Formatter struct {
	Locale   monday.Locale
	Location *time.Location
	Style    Style
}

func NewFormatter(locale, tz string, style Style) (Formatter, error) {
	l := monday.Locale(strings.ReplaceAll(locale, "-", "_"))
	if l == "" {
		l = DefaultLocale
	}
	if _, ok := longLayouts[l]; !ok {
		return Formatter{}, fmt.Errorf("unsupported locale %q", locale)
	}
	loc := time.UTC
	if tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return Formatter{}, fmt.Errorf("invalid time zone %q: %w", tz, err)
		}
	}
	switch style {
	case "":
		style = StyleLong
	case StyleLong, StyleNumeric:
	default:
		return Formatter{}, fmt.Errorf("unsupported date style %q", style)
	}
	return Formatter{Locale: l, Location: loc, Style: style}, nil
}

// Format returns raw as a locale date and time, or InvalidDate when raw
// cannot be parsed. It never fails.
func (f Formatter) Format(raw string) string {
	t, ok := f.parse(raw)
	if !ok {
		return InvalidDate
	}
	return monday.Format(t.In(f.location()), f.layout(), f.locale())
}

func (f Formatter) parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, f.location()); err == nil {
			return t, true
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (f Formatter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

func (f Formatter) locale() monday.Locale {
	if f.Locale == "" {
		return DefaultLocale
	}
	return f.Locale
}

func (f Formatter) layout() string {
	layouts := longLayouts
	if f.Style == StyleNumeric {
		layouts = numericLayouts
	}
	if layout, ok := layouts[f.locale()]; ok {
		return layout
	}
	return layouts[DefaultLocale]
}
