package invoicing

// Template selects a named set of layout constants controlling PDF
// typography and spacing
type Template string

const (
	TemplateClassic Template = "classic"
	TemplateModern  Template = "modern"
	TemplateMinimal Template = "minimal"
)

// DefaultTemplate is used when no template is requested
const DefaultTemplate = TemplateClassic

// IsValid checks if the template is a known variant
func (t Template) IsValid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateMinimal:
		return true
	}
	return false
}

// String returns the template name
func (t Template) String() string {
	return string(t)
}

// ParseTemplate resolves a template name, falling back to classic for
// unknown or empty names
func ParseTemplate(name string) Template {
	t := Template(name)
	if !t.IsValid() {
		return DefaultTemplate
	}
	return t
}

// TemplateConfig is the closed set of layout constants a template
// defines. All values are in points.
type TemplateConfig struct {
	HeaderFontSize float64
	TitleFontSize  float64
	BodyFontSize   float64
	Spacing        float64
}

var templateConfigs = map[Template]TemplateConfig{
	TemplateClassic: {HeaderFontSize: 20, TitleFontSize: 28, BodyFontSize: 12, Spacing: 20},
	TemplateModern:  {HeaderFontSize: 16, TitleFontSize: 32, BodyFontSize: 11, Spacing: 16},
	TemplateMinimal: {HeaderFontSize: 14, TitleFontSize: 20, BodyFontSize: 10, Spacing: 12},
}

// Config returns the layout constants for the template. Unknown
// templates resolve to the classic constants.
func (t Template) Config() TemplateConfig {
	if cfg, ok := templateConfigs[t]; ok {
		return cfg
	}
	return templateConfigs[TemplateClassic]
}
