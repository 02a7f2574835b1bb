package params

// StandardFooter is the record for the "Standard Footer" type.
type StandardFooter struct {
	BackgroundColor string
	TextColor       string
	CopyrightText   string
}

func (StandardFooter) TypeName() string { return "Standard Footer" }

func (f *StandardFooter) slots() []*string {
	return []*string{&f.BackgroundColor, &f.TextColor, &f.CopyrightText}
}

// MultiColumnFooter is the record for the "Multi-Column Footer" type.
type MultiColumnFooter struct {
	ColumnCount     string
	BackgroundColor string
	SocialLinks     string
}

func (MultiColumnFooter) TypeName() string { return "Multi-Column Footer" }

func (f *MultiColumnFooter) slots() []*string {
	return []*string{&f.ColumnCount, &f.BackgroundColor, &f.SocialLinks}
}

// MinimalFooter is the record for the "Minimal Footer" type.
type MinimalFooter struct {
	BackgroundColor string
	Padding         string
	FooterText      string
}

func (MinimalFooter) TypeName() string { return "Minimal Footer" }

func (f *MinimalFooter) slots() []*string {
	return []*string{&f.BackgroundColor, &f.Padding, &f.FooterText}
}

// NewsletterFooter is the record for the "Newsletter Footer" type.
type NewsletterFooter struct {
	NewsletterHeading string
	PlaceholderText   string
	ButtonText        string
	BackgroundColor   string
}

func (NewsletterFooter) TypeName() string { return "Newsletter Footer" }

func (f *NewsletterFooter) slots() []*string {
	return []*string{&f.NewsletterHeading, &f.PlaceholderText, &f.ButtonText, &f.BackgroundColor}
}

// StickyFooter is the record for the "Sticky Footer" type.
type StickyFooter struct {
	BackgroundColor string
	Height          string
	ContentType     string
}

func (StickyFooter) TypeName() string { return "Sticky Footer" }

func (f *StickyFooter) slots() []*string {
	return []*string{&f.BackgroundColor, &f.Height, &f.ContentType}
}

var footerSchema = Schema{
	Kind:        KindFooter,
	DefaultType: "Standard Footer",
	Types: []TypeSchema{
		{
			Name: "Standard Footer",
			Fields: []Field{
				text("backgroundColor", "Background Color", "e.g., #1a1a1a"),
				text("textColor", "Text Color", "e.g., #ffffff"),
				text("copyrightText", "Copyright Text", "e.g., © 2024 Your Company. All rights reserved."),
			},
			build: func() Options { return &StandardFooter{} },
		},
		{
			Name: "Multi-Column Footer",
			Fields: []Field{
				choice("columnCount", "Number of Columns", "3", "2", "3", "4", "5"),
				text("backgroundColor", "Background Color", "e.g., #1a1a1a"),
				choice("socialLinks", "Include Social Links", "yes", "yes", "no"),
			},
			build: func() Options { return &MultiColumnFooter{} },
		},
		{
			Name: "Minimal Footer",
			Fields: []Field{
				text("backgroundColor", "Background Color", "e.g., #f5f5f5"),
				text("padding", "Padding", "e.g., 2rem 1rem"),
				text("footerText", "Footer Text", "e.g., © 2024 Your Company"),
			},
			build: func() Options { return &MinimalFooter{} },
		},
		{
			Name: "Newsletter Footer",
			Fields: []Field{
				text("newsletterHeading", "Newsletter Heading", "e.g., Subscribe to Our Newsletter"),
				text("placeholderText", "Placeholder Text", "e.g., Enter your email"),
				text("buttonText", "Button Text", "e.g., Subscribe"),
				text("backgroundColor", "Background Color", "e.g., #1a1a1a"),
			},
			build: func() Options { return &NewsletterFooter{} },
		},
		{
			Name: "Sticky Footer",
			Fields: []Field{
				text("backgroundColor", "Background Color", "e.g., #1a1a1a"),
				text("height", "Height", "e.g., 60px"),
				choice("contentType", "Content Type", "links", "links", "text", "mixed"),
			},
			build: func() Options { return &StickyFooter{} },
		},
	},
}
