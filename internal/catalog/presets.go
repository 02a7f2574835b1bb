package catalog

// Assignment picks a single variant for a component.
type Assignment struct {
	Component string
	Variant   string
}

// Section is an ordered list of assignments for one category.
type Section []Assignment

// Preset is a named, ready-made selection.
//
// A nil General, Basic or Advanced field means the preset does not define that
// part of the selection.
type Preset struct {
	Name     string
	General  *Assignment
	Basic    *Section
	Advanced *Section
}

var presets = []Preset{
	{
		Name:    "Startup Landing Page",
		General: &Assignment{Component: "Business & Professional", Variant: "SaaS product landing page with signup and pricing plans"},
		Basic: &Section{
			{Component: "Logo", Variant: "Combination logo (image + text)"},
			{Component: "Header", Variant: "Hero header"},
			{Component: "Hero Section", Variant: "Animated or interactive hero"},
			{Component: "Navigation Bar", Variant: "Sticky navigation"},
			{Component: "Call to Action (CTA)", Variant: "Buttons"},
		},
		Advanced: &Section{
			{Component: "Modal/Popup Windows", Variant: "Entry popups"},
			{Component: "SEO Markup", Variant: "Meta tags"},
		},
	},
	{
		Name:    "E-commerce Store",
		General: &Assignment{Component: "Commerce & Online Stores", Variant: "E-commerce store with product listings and checkout"},
		Basic: &Section{
			{Component: "Logo", Variant: "Image-logo"},
			{Component: "Header", Variant: "Mega menu"},
			{Component: "Search Bar", Variant: "Filtered search"},
			{Component: "Navigation Bar", Variant: "Mega menus"},
			{Component: "Sidebar", Variant: "Collapsible sidebar"},
		},
		Advanced: &Section{
			{Component: "Feature/Product Cards", Variant: "Interactive or hover-effect cards"},
			{Component: "Pagination/Infinite Scroll", Variant: "Load more button"},
			{Component: "User Profile/Account Section", Variant: "Dropdown menu profile"},
		},
	},
	{
		Name:    "Personal Portfolio",
		General: &Assignment{Component: "Personal Use", Variant: "Personal portfolio website"},
		Basic: &Section{
			{Component: "Logo", Variant: "Text-logo"},
			{Component: "Header", Variant: "Transparent"},
			{Component: "Hero Section", Variant: "Fullscreen hero"},
			{Component: "Navigation Bar", Variant: "Horizontal menu"},
			{Component: "Social Media Links", Variant: "Icon buttons"},
		},
		Advanced: &Section{
			{Component: "Micro-Interactions", Variant: "Scroll-triggered effects"},
			{Component: "SEO Markup", Variant: "Open Graph tags"},
		},
	},
}

// Presets returns the named presets in declared order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, preset := range presets {
		out[i] = preset.clone()
	}
	return out
}

// PresetNames lists the preset names in declared order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, preset := range presets {
		names[i] = preset.Name
	}
	return names
}

// LookupPreset finds a preset by exact name.
func LookupPreset(name string) (Preset, bool) {
	for _, preset := range presets {
		if preset.Name == name {
			return preset.clone(), true
		}
	}
	return Preset{}, false
}

// Section returns the preset's section for a category. The general assignment
// is reported as a one-element section. The boolean is false when the preset
// leaves the category undefined.
func (p Preset) Section(category Category) (Section, bool) {
	switch category {
	case General:
		if p.General == nil {
			return nil, false
		}
		return Section{*p.General}, true
	case Basic:
		if p.Basic == nil {
			return nil, false
		}
		return append(Section(nil), (*p.Basic)...), true
	case Advanced:
		if p.Advanced == nil {
			return nil, false
		}
		return append(Section(nil), (*p.Advanced)...), true
	default:
		return nil, false
	}
}

func (p Preset) clone() Preset {
	out := Preset{Name: p.Name}
	if p.General != nil {
		general := *p.General
		out.General = &general
	}
	if p.Basic != nil {
		basic := append(Section{}, (*p.Basic)...)
		out.Basic = &basic
	}
	if p.Advanced != nil {
		advanced := append(Section{}, (*p.Advanced)...)
		out.Advanced = &advanced
	}
	return out
}
