// Package article holds the article preview model: the catalogues of
// selectable rendering parameters, the applied state and the way that state
// is turned into a styled terminal rendering.
package article

import (
	"strconv"
	"strings"
)

// Option is one selectable catalogue entry. Options are passed around by
// value and never modified.
type Option struct {
	Title     string
	Value     string
	ClassName string
}

// Catalogue is an ordered list of options. The first entry is the default.
type Catalogue []Option

// Default returns the first option.
func (c Catalogue) Default() Option {
	if len(c) == 0 {
		return Option{}
	}
	return c[0]
}

// Index returns the position of the option with the given value, or -1.
func (c Catalogue) Index(value string) int {
	for i, opt := range c {
		if strings.EqualFold(opt.Value, value) {
			return i
		}
	}
	return -1
}

// Lookup finds an option by value or title.
func (c Catalogue) Lookup(key string) (Option, bool) {
	key = strings.TrimSpace(key)
	for _, opt := range c {
		if strings.EqualFold(opt.Value, key) || strings.EqualFold(opt.Title, key) {
			return opt, true
		}
	}
	return Option{}, false
}

// Values returns option values in catalogue order.
func (c Catalogue) Values() []string {
	out := make([]string, len(c))
	for i, opt := range c {
		out[i] = opt.Value
	}
	return out
}

var FontFamilies = Catalogue{
	{Title: "Open Sans", Value: "Open Sans", ClassName: "open-sans"},
	{Title: "Ubuntu", Value: "Ubuntu", ClassName: "ubuntu"},
	{Title: "Cormorant Garamond", Value: "Cormorant Garamond", ClassName: "cormorant-garamond"},
	{Title: "Days One", Value: "Days One", ClassName: "days-one"},
	{Title: "Merriweather", Value: "Merriweather", ClassName: "merriweather"},
}

var FontSizes = Catalogue{
	{Title: "18px", Value: "18px", ClassName: "font-size-18"},
	{Title: "25px", Value: "25px", ClassName: "font-size-25"},
	{Title: "38px", Value: "38px", ClassName: "font-size-38"},
}

var FontColors = Catalogue{
	{Title: "Черный", Value: "#000000", ClassName: "font-black"},
	{Title: "Белый", Value: "#FFFFFF", ClassName: "font-white"},
	{Title: "Серый", Value: "#C4C4C4", ClassName: "font-gray"},
	{Title: "Розовый", Value: "#FEAFE8", ClassName: "font-pink"},
	{Title: "Ярко-розовый", Value: "#FD24AF", ClassName: "font-fuchsia"},
	{Title: "Жёлтый", Value: "#FFC802", ClassName: "font-yellow"},
	{Title: "Зелёный", Value: "#80D994", ClassName: "font-green"},
	{Title: "Голубой", Value: "#6FC1FD", ClassName: "font-blue"},
	{Title: "Фиолетовый", Value: "#5F00FF", ClassName: "font-purple"},
}

var BackgroundColors = Catalogue{
	{Title: "Белый", Value: "#FFFFFF", ClassName: "bg-white"},
	{Title: "Черный", Value: "#000000", ClassName: "bg-black"},
	{Title: "Серый", Value: "#C4C4C4", ClassName: "bg-gray"},
	{Title: "Розовый", Value: "#FEAFE8", ClassName: "bg-pink"},
	{Title: "Ярко-розовый", Value: "#FD24AF", ClassName: "bg-fuchsia"},
	{Title: "Жёлтый", Value: "#FFC802", ClassName: "bg-yellow"},
	{Title: "Зелёный", Value: "#80D994", ClassName: "bg-green"},
	{Title: "Голубой", Value: "#6FC1FD", ClassName: "bg-blue"},
	{Title: "Фиолетовый", Value: "#5F00FF", ClassName: "bg-purple"},
}

var ContentWidths = Catalogue{
	{Title: "Широкий", Value: "1394px", ClassName: "width-wide"},
	{Title: "Узкий", Value: "948px", ClassName: "width-narrow"},
}

// parsePixels reads values like "25px".
func parsePixels(value string) (int, bool) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(value)), "px")
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
