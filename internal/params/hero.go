package params

// StandardHero is the record for the "Standard Hero" type.
type StandardHero struct {
	BackgroundColor string
	Heading         string
	Subheading      string
	CTAText         string
}

func (StandardHero) TypeName() string { return "Standard Hero" }

func (h *StandardHero) slots() []*string {
	return []*string{&h.BackgroundColor, &h.Heading, &h.Subheading, &h.CTAText}
}

// FullWidthImageHero is the record for the "Full-Width Image Hero" type.
type FullWidthImageHero struct {
	BackgroundImage string
	OverlayOpacity  string
	TextAlignment   string
}

func (FullWidthImageHero) TypeName() string { return "Full-Width Image Hero" }

func (h *FullWidthImageHero) slots() []*string {
	return []*string{&h.BackgroundImage, &h.OverlayOpacity, &h.TextAlignment}
}

// VideoBackgroundHero is the record for the "Video Background Hero" type.
type VideoBackgroundHero struct {
	VideoURL      string
	FallbackImage string
	Autoplay      string
}

func (VideoBackgroundHero) TypeName() string { return "Video Background Hero" }

func (h *VideoBackgroundHero) slots() []*string {
	return []*string{&h.VideoURL, &h.FallbackImage, &h.Autoplay}
}

// AnimatedHero is the record for the "Animated/Interactive Hero" type.
type AnimatedHero struct {
	AnimationType   string
	BackgroundColor string
}

func (AnimatedHero) TypeName() string { return "Animated/Interactive Hero" }

func (h *AnimatedHero) slots() []*string {
	return []*string{&h.AnimationType, &h.BackgroundColor}
}

// SplitLayoutHero is the record for the "Split Layout Hero" type.
type SplitLayoutHero struct {
	LeftContent  string
	RightContent string
}

func (SplitLayoutHero) TypeName() string { return "Split Layout Hero" }

func (h *SplitLayoutHero) slots() []*string {
	return []*string{&h.LeftContent, &h.RightContent}
}

var heroSchema = Schema{
	Kind:        KindHeroSection,
	DefaultType: "Standard Hero",
	Types: []TypeSchema{
		{
			Name: "Standard Hero",
			Fields: []Field{
				text("backgroundColor", "Background Color", "e.g., #f0f0f0"),
				text("heading", "Heading Text", "e.g., Welcome to Our Website"),
				text("subheading", "Subheading Text", "e.g., Discover amazing features"),
				text("ctaText", "CTA Button Text", "e.g., Get Started"),
			},
			build: func() Options { return &StandardHero{} },
		},
		{
			Name: "Full-Width Image Hero",
			Fields: []Field{
				text("backgroundImage", "Background Image URL", "https://example.com/hero-image.jpg"),
				text("overlayOpacity", "Overlay Opacity", "e.g., 0.5 (0-1)"),
				choice("textAlignment", "Text Alignment", "center", "left", "center", "right"),
			},
			build: func() Options { return &FullWidthImageHero{} },
		},
		{
			Name: "Video Background Hero",
			Fields: []Field{
				text("videoUrl", "Video URL", "https://example.com/hero-video.mp4"),
				text("fallbackImage", "Fallback Image URL", "Fallback image if video doesn't load"),
				choice("autoplay", "Autoplay", "true", "true", "false"),
			},
			build: func() Options { return &VideoBackgroundHero{} },
		},
		{
			Name: "Animated/Interactive Hero",
			Fields: []Field{
				choice("animationType", "Animation Type", "fade-in", "fade-in", "slide-up", "zoom-in", "parallax"),
				text("backgroundColor", "Background Color", "e.g., #ffffff"),
			},
			build: func() Options { return &AnimatedHero{} },
		},
		{
			Name: "Split Layout Hero",
			Fields: []Field{
				choice("leftContent", "Left Content Type", "text", "text", "image", "form"),
				choice("rightContent", "Right Content Type", "image", "text", "image", "form"),
			},
			build: func() Options { return &SplitLayoutHero{} },
		},
	},
}
