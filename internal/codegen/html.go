package codegen

import (
	"strings"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Generated Website</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: Arial, sans-serif; line-height: 1.6; }
        .container { max-width: 1200px; margin: 0 auto; padding: 0 20px; }
        .header { background: #333; color: white; padding: 1rem 0; }
        .hero { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 4rem 0; text-align: center; }
        .nav { background: #f4f4f4; padding: 1rem 0; }
        .nav ul { list-style: none; display: flex; gap: 2rem; }
        .content { padding: 2rem 0; }
        .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 2rem; margin: 2rem 0; }
        .card { border: 1px solid #ddd; border-radius: 8px; padding: 1.5rem; }
        .cta { background: #007bff; color: white; padding: 1rem 2rem; border: none; border-radius: 5px; cursor: pointer; }
        .footer { background: #333; color: white; padding: 2rem 0; text-align: center; }
    </style>
</head>
<body>
`

const htmlTail = `</body>
</html>`

// fragment renders the markup for one component from its lowercased variant.
type fragment func(variant string) string

func static(markup string) fragment {
	return func(string) string { return markup }
}

var htmlFragments = map[string]fragment{
	"Header": static(`    <header class="header">
        <div class="container">
            <h1>Your Website</h1>
        </div>
    </header>
`),
	"Navigation Bar": static(`    <nav class="nav">
        <div class="container">
            <ul>
                <li><a href="#home">Home</a></li>
                <li><a href="#about">About</a></li>
                <li><a href="#services">Services</a></li>
                <li><a href="#contact">Contact</a></li>
            </ul>
        </div>
    </nav>
`),
	"Hero Section": func(variant string) string {
		return `    <section class="hero">
        <div class="container">
            <h2>Welcome to Our Website</h2>
            <p>This is a ` + variant + `</p>
        </div>
    </section>
`
	},
	"Content Area": func(variant string) string {
		return `    <main class="content">
        <div class="container">
            <h2>Main Content</h2>
            <p>This is the main content area with ` + variant + `.</p>
        </div>
    </main>
`
	},
	"Feature/Product Cards": static(`    <section class="cards">
        <div class="container">
            <div class="cards">
                <div class="card">
                    <h3>Feature 1</h3>
                    <p>Description of feature 1</p>
                </div>
                <div class="card">
                    <h3>Feature 2</h3>
                    <p>Description of feature 2</p>
                </div>
                <div class="card">
                    <h3>Feature 3</h3>
                    <p>Description of feature 3</p>
                </div>
            </div>
        </div>
    </section>
`),
	"Call to Action (CTA)": static(`    <section class="cta-section" style="text-align: center; padding: 2rem 0;">
        <div class="container">
            <button class="cta">Get Started Today</button>
        </div>
    </section>
`),
}

func generateHTML(components []Component) string {
	var b strings.Builder
	b.WriteString(htmlHead)
	writeFragments(&b, htmlFragments, components)
	b.WriteString(htmlTail)
	return b.String()
}

func writeFragments(b *strings.Builder, fragments map[string]fragment, components []Component) {
	for _, component := range components {
		render, ok := fragments[component.Component]
		if !ok {
			continue
		}
		b.WriteString(render(strings.ToLower(component.Type)))
	}
}
