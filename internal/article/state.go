package article

// State is the set of parameters the article is rendered with.
type State struct {
	FontFamily      Option
	FontSize        Option
	FontColor       Option
	BackgroundColor Option
	ContentWidth    Option
}

// DefaultState builds the state from the first entry of every catalogue.
func DefaultState() State {
	return State{
		FontFamily:      FontFamilies.Default(),
		FontSize:        FontSizes.Default(),
		FontColor:       FontColors.Default(),
		BackgroundColor: BackgroundColors.Default(),
		ContentWidth:    ContentWidths.Default(),
	}
}

// Defaults are configured default values, matched by value or title.
// Empty or unknown entries keep the catalogue default.
type Defaults struct {
	FontFamily      string
	FontSize        string
	FontColor       string
	BackgroundColor string
	ContentWidth    string
}

// StateFrom builds a state from configured defaults.
func StateFrom(d Defaults) State {
	s := DefaultState()
	if opt, ok := FontFamilies.Lookup(d.FontFamily); ok {
		s.FontFamily = opt
	}
	if opt, ok := FontSizes.Lookup(d.FontSize); ok {
		s.FontSize = opt
	}
	if opt, ok := FontColors.Lookup(d.FontColor); ok {
		s.FontColor = opt
	}
	if opt, ok := BackgroundColors.Lookup(d.BackgroundColor); ok {
		s.BackgroundColor = opt
	}
	if opt, ok := ContentWidths.Lookup(d.ContentWidth); ok {
		s.ContentWidth = opt
	}
	return s
}

// Fields returns option titles keyed by field name for structured logs.
func (s State) Fields() map[string]any {
	return map[string]any{
		"font_family":      s.FontFamily.Title,
		"font_size":        s.FontSize.Title,
		"font_color":       s.FontColor.Title,
		"background_color": s.BackgroundColor.Title,
		"content_width":    s.ContentWidth.Title,
	}
}
