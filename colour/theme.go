package colour

// LineStyle describes how a line is drawn.
type LineStyle struct {
	Colour    Colour  `yaml:"colour"`
	Thickness float64 `yaml:"thickness"`
}

// BoxStyle describes how a filled box is drawn. A nil border means no
// border is drawn.
type BoxStyle struct {
	Fill   Colour     `yaml:"fill"`
	Border *LineStyle `yaml:"border,omitempty"`
}

// EntityStyle describes how an entity's boxes and label are drawn.
type EntityStyle struct {
	TextBox    BoxStyle `yaml:"text_box"`
	DateBox    BoxStyle `yaml:"date_box"`
	TextColour Colour   `yaml:"text_colour"`
}

// HeadingStyle describes how decade and year headings are drawn.
type HeadingStyle struct {
	Box        BoxStyle `yaml:"box"`
	TextColour Colour   `yaml:"text_colour"`
}

// BackgroundPair holds the two colours the decade stripes alternate
// between, century by century.
type BackgroundPair struct {
	A Colour `yaml:"a"`
	B Colour `yaml:"b"`
}

// Theme holds every colour the timeline needs.
type Theme struct {
	Background   BackgroundPair `yaml:"background"`
	DividingLine LineStyle      `yaml:"dividing_line"`
	Entity       EntityStyle    `yaml:"entity"`
	Heading      HeadingStyle   `yaml:"heading"`
}

// DefaultTheme returns the stock timeline colours.
func DefaultTheme() Theme {
	return Theme{
		Background: BackgroundPair{
			A: MustHex("#ffffff"),
			B: MustHex("#e8f8ff"),
		},
		DividingLine: LineStyle{
			Colour:    FromRGB(0, 0, 0),
			Thickness: 0.5,
		},
		Entity: EntityStyle{
			TextBox:    BoxStyle{Fill: MustHex("#e6e5ea")},
			DateBox:    BoxStyle{Fill: MustHex("#86d695")},
			TextColour: FromRGB(0, 0, 0),
		},
		Heading: HeadingStyle{
			Box:        BoxStyle{Fill: MustHex("#0000aa")},
			TextColour: MustHex("#ffffff"),
		},
	}
}
