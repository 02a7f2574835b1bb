// Package catalog holds the static component catalog and the named presets.
//
// Every table here is read-only. Lookups hand out copies so callers can never
// mutate the process-wide data.
package catalog

import (
	"fmt"
	"strings"
)

// Category is the top-level grouping of the catalog.
type Category string

const (
	General  Category = "general"
	Basic    Category = "basic"
	Advanced Category = "advanced"
)

// Component is a named building block together with its selectable variants.
type Component struct {
	Name     string
	Variants []string
}

type categoryTable struct {
	category   Category
	title      string
	components []Component
}

var tables = []categoryTable{
	{
		category: General,
		title:    "General App/Webpage Setup",
		components: []Component{
			{Name: "Personal Use", Variants: []string{
				"Personal portfolio website",
				"Resume/CV website with downloadable PDF",
				"Personal blog with newsletter signup",
				"Artist/photographer portfolio with galleries",
				"Wedding or invitation website with RSVP form",
			}},
			{Name: "Business & Professional", Variants: []string{
				"Company profile website with about us, services, and contact page",
				"Landing page for a business/product",
				"SaaS product landing page with signup and pricing plans",
				"Consulting or freelancer services website",
				"Medical clinic website with doctor profiles and appointment booking",
				"Fitness/gym website with classes and membership plans",
				"Real estate listings website with property search",
				"Restaurant website with menu, online ordering, and reservations",
				"Travel or tourism website with guides, places, and booking",
				"Job board website with postings and applications",
			}},
			{Name: "Commerce & Online Stores", Variants: []string{
				"E-commerce store with product listings and checkout",
				"Marketplace website where users can post and sell items",
				"Portfolio + shop site for digital downloads",
				"Travel booking website (flights, hotels, packages)",
			}},
			{Name: "Events & Communities", Variants: []string{
				"Simple event website with schedule, speakers, and registration",
				"Non-profit or charity website with donation option",
				"Church/mosque/temple website with events and sermons",
				"Forum or community discussion site",
				"Sports team website with schedules, news, and results",
			}},
			{Name: "Media & Content", Variants: []string{
				"Blog website with categories and posts",
				"News or magazine-style website",
				"Podcast website with episode list and audio player",
				"Music band or DJ website with tracks and tour dates",
				"School/university website with courses and admissions info",
			}},
		},
	},
	{
		category: Basic,
		title:    "Basic Components",
		components: []Component{
			{Name: "Logo", Variants: []string{"Text-logo", "Image-logo", "Combination logo (image + text)"}},
			{Name: "Header", Variants: []string{"Classic", "Magazine-style", "Hero header", "Sticky/fixed", "Transparent", "Full-screen", "Hidden", "Mega menu", "Mobile-friendly", "Vertical"}},
			{Name: "Search Bar", Variants: []string{"Standard input with button", "Autocomplete suggestion", "Filtered search"}},
			{Name: "Hero Section", Variants: []string{"Static image", "Video background", "Carousel slider", "Animated or interactive hero", "Fullscreen hero"}},
			{Name: "Navigation Bar", Variants: []string{"Horizontal menu", "Vertical sidebar menu", "Dropdown menus", "Mega menus", "Hamburger menus", "Sticky navigation"}},
			{Name: "Breadcrumbs", Variants: []string{"Text breadcrumb trail", "Icon-based breadcrumbs", "Dynamic breadcrumbs"}},
			{Name: "Call to Action (CTA)", Variants: []string{"Buttons", "Banners", "Popups/Modals", "Inline text links"}},
			{Name: "Content Area", Variants: []string{"Single column", "Multi-column layouts", "Grid layouts", "Masonry layouts"}},
			{Name: "Slider", Variants: []string{"Image slider", "Content slider", "Fullwidth slider", "Thumbnail navigation slider"}},
			{Name: "Sidebar", Variants: []string{"Static sidebar", "Sticky or floating sidebar", "Collapsible sidebar"}},
			{Name: "Forms", Variants: []string{"Contact form", "Membership registration", "Feedback or survey", "Subscription form"}},
			{Name: "Blog Section", Variants: []string{"List view", "Grid view", "Single post view"}},
			{Name: "Social Media Links", Variants: []string{"Icon buttons", "Text links", "Floating social bar", "Footer social links"}},
		},
	},
	{
		category: Advanced,
		title:    "Advanced Features",
		components: []Component{
			{Name: "Notification/Alert Bar", Variants: []string{"Static banner", "Dismissible alert", "Animated scrolling ticker", "Sticky notification bar"}},
			{Name: "Loading/Preloader Screen", Variants: []string{"Spinner/progress bar", "Animated logo or graphic", "Skeleton screens"}},
			{Name: "Modal/Popup Windows", Variants: []string{"Entry popups", "Exit intent popups", "Lightboxes", "Form modals"}},
			{Name: "Chatbot/Live Chat Interface", Variants: []string{"Rule-based chatbots", "AI-powered conversational bots", "Live agent chat"}},
			{Name: "Feature/Product Cards", Variants: []string{"Static cards", "Interactive or hover-effect cards", "Flippable or expandable cards"}},
			{Name: "Pagination/Infinite Scroll", Variants: []string{"Numeric pagination", "Load more button", "Infinite scroll"}},
			{Name: "User Profile/Account Section", Variants: []string{"Dropdown menu profile", "Sidebar profile panel", "Full profile page"}},
			{Name: "Analytics and Tracking Scripts", Variants: []string{"Google Analytics/Tag Manager", "Heatmaps"}},
			{Name: "Accessibility Features", Variants: []string{"Keyboard navigation aids", "Screen reader support", "Contrast toggles", "Text resize controls"}},
			{Name: "SEO Markup", Variants: []string{"Meta tags", "Structured data (JSON-LD)", "Open Graph tags"}},
			{Name: "Progressive Web App (PWA) Features", Variants: []string{"Service worker caching", "App manifest configuration"}},
			{Name: "Micro-Interactions", Variants: []string{"Button animations", "Loading animations", "Scroll-triggered effects"}},
		},
	},
}

// Categories returns every category in declared order.
func Categories() []Category {
	out := make([]Category, len(tables))
	for i, table := range tables {
		out[i] = table.category
	}
	return out
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	candidate := Category(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := lookupTable(candidate); ok {
		return candidate, nil
	}
	return "", fmt.Errorf("unknown category %q (expected one of general, basic, advanced)", name)
}

// Title returns the human readable heading of a category.
func Title(category Category) string {
	table, ok := lookupTable(category)
	if !ok {
		return ""
	}
	return table.title
}

// Components lists the component names of a category in declared order.
func Components(category Category) []string {
	table, ok := lookupTable(category)
	if !ok {
		return nil
	}
	out := make([]string, len(table.components))
	for i, component := range table.components {
		out[i] = component.Name
	}
	return out
}

// Variants lists the variants of a component in declared order.
func Variants(category Category, component string) []string {
	entry, ok := lookupComponent(category, component)
	if !ok {
		return nil
	}
	return append([]string(nil), entry.Variants...)
}

// HasComponent reports whether the category declares the component.
func HasComponent(category Category, component string) bool {
	_, ok := lookupComponent(category, component)
	return ok
}

// HasVariant reports whether the variant belongs to the component.
func HasVariant(category Category, component, variant string) bool {
	entry, ok := lookupComponent(category, component)
	if !ok {
		return false
	}
	for _, candidate := range entry.Variants {
		if candidate == variant {
			return true
		}
	}
	return false
}

// DefaultVariant returns the variant a freshly checked component starts with.
func DefaultVariant(category Category, component string) (string, bool) {
	entry, ok := lookupComponent(category, component)
	if !ok || len(entry.Variants) == 0 {
		return "", false
	}
	return entry.Variants[0], true
}

// FindComponent returns the category declaring the component, if any.
func FindComponent(component string) (Category, bool) {
	for _, table := range tables {
		for _, entry := range table.components {
			if entry.Name == component {
				return table.category, true
			}
		}
	}
	return "", false
}

func lookupTable(category Category) (categoryTable, bool) {
	for _, table := range tables {
		if table.category == category {
			return table, true
		}
	}
	return categoryTable{}, false
}

func lookupComponent(category Category, component string) (Component, bool) {
	table, ok := lookupTable(category)
	if !ok {
		return Component{}, false
	}
	for _, entry := range table.components {
		if entry.Name == component {
			return entry, true
		}
	}
	return Component{}, false
}
