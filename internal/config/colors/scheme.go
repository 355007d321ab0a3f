package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset" json:"preset"`

	// Primary accent color (header, cursor, toggle-all marker)
	Accent string `yaml:"accent" json:"accent"`

	// Row colors
	Done     string `yaml:"done" json:"done"`         // completed titles and checkmarks
	Edit     string `yaml:"edit" json:"edit"`         // the row being edited
	Selected string `yaml:"selected" json:"selected"` // background of the cursor row

	// Text colors
	Title  string `yaml:"title" json:"title"`
	Subtle string `yaml:"subtle" json:"subtle"` // placeholder text and footer
	Normal string `yaml:"normal" json:"normal"`

	ErrorFg string `yaml:"error_fg" json:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	c.MergeFrom(*GetPreset(c.Preset), false)
	if c.Preset == "" {
		c.Preset = "default"
	}
}

// MergeFrom copies colors from other. With override set, every non-empty
// value in other wins; otherwise only empty fields are filled.
func (c *ColorScheme) MergeFrom(other ColorScheme, override bool) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Accent, other.Accent},
		{&c.Done, other.Done},
		{&c.Edit, other.Edit},
		{&c.Selected, other.Selected},
		{&c.Title, other.Title},
		{&c.Subtle, other.Subtle},
		{&c.Normal, other.Normal},
		{&c.ErrorFg, other.ErrorFg},
	}
	for _, p := range pairs {
		if p.src == "" {
			continue
		}
		if override || *p.dst == "" {
			*p.dst = p.src
		}
	}
}
