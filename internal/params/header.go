package params

// StandardHeader is the record for the "Standard Header" type.
type StandardHeader struct {
	BackgroundColor string
	TextColor       string
	Height          string
}

func (StandardHeader) TypeName() string { return "Standard Header" }

func (h *StandardHeader) slots() []*string {
	return []*string{&h.BackgroundColor, &h.TextColor, &h.Height}
}

// HeroHeader is the record for the "Hero Header" type.
type HeroHeader struct {
	BackgroundImage string
	OverlayColor    string
	HeroHeight      string
}

func (HeroHeader) TypeName() string { return "Hero Header" }

func (h *HeroHeader) slots() []*string {
	return []*string{&h.BackgroundImage, &h.OverlayColor, &h.HeroHeight}
}

// TransparentHeader is the record for the "Transparent Header" type.
type TransparentHeader struct {
	TextColor     string
	ScrollBgColor string
}

func (TransparentHeader) TypeName() string { return "Transparent Header" }

func (h *TransparentHeader) slots() []*string {
	return []*string{&h.TextColor, &h.ScrollBgColor}
}

// StickyHeader is the record for the "Sticky Header" type.
type StickyHeader struct {
	BackgroundColor string
	Shadow          string
}

func (StickyHeader) TypeName() string { return "Sticky Header" }

func (h *StickyHeader) slots() []*string {
	return []*string{&h.BackgroundColor, &h.Shadow}
}

// MinimalHeader is the record for the "Minimal Header" type.
type MinimalHeader struct {
	BackgroundColor string
	Padding         string
}

func (MinimalHeader) TypeName() string { return "Minimal Header" }

func (h *MinimalHeader) slots() []*string {
	return []*string{&h.BackgroundColor, &h.Padding}
}

var headerSchema = Schema{
	Kind:        KindHeader,
	DefaultType: "Standard Header",
	Types: []TypeSchema{
		{
			Name: "Standard Header",
			Fields: []Field{
				text("backgroundColor", "Background Color", "e.g., #ffffff, rgb(255,255,255)"),
				text("textColor", "Text Color", "e.g., #000000, rgb(0,0,0)"),
				text("height", "Header Height", "e.g., 80px, 6rem"),
			},
			build: func() Options { return &StandardHeader{} },
		},
		{
			Name: "Hero Header",
			Fields: []Field{
				text("backgroundImage", "Background Image URL", "https://example.com/hero-bg.jpg"),
				text("overlayColor", "Overlay Color", "e.g., rgba(0,0,0,0.5)"),
				text("heroHeight", "Hero Height", "e.g., 500px, 100vh"),
			},
			build: func() Options { return &HeroHeader{} },
		},
		{
			Name: "Transparent Header",
			Fields: []Field{
				text("textColor", "Text Color", "e.g., #ffffff"),
				text("scrollBgColor", "Scroll Background Color", "Color when scrolled (e.g., #ffffff)"),
			},
			build: func() Options { return &TransparentHeader{} },
		},
		{
			Name: "Sticky Header",
			Fields: []Field{
				text("backgroundColor", "Background Color", "e.g., #ffffff"),
				text("shadow", "Shadow/Border", "e.g., 0 2px 10px rgba(0,0,0,0.1)"),
			},
			build: func() Options { return &StickyHeader{} },
		},
		{
			Name: "Minimal Header",
			Fields: []Field{
				text("backgroundColor", "Background Color", "e.g., transparent"),
				text("padding", "Padding", "e.g., 1rem 2rem"),
			},
			build: func() Options { return &MinimalHeader{} },
		},
	},
}
