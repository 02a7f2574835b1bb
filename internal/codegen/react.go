package codegen

import (
	"strings"
)

const reactHead = `import React from 'react';
import './App.css';

function App() {
  return (
    <div className="App">
`

const reactTail = `    </div>
  );
}

export default App;`

var reactFragments = map[string]fragment{
	"Header": static(`      <header className="header">
        <div className="container">
          <h1>Your Website</h1>
        </div>
      </header>
`),
	"Navigation Bar": static(`      <nav className="nav">
        <div className="container">
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
		return `      <section className="hero">
        <div className="container">
          <h2>Welcome to Our Website</h2>
          <p>This is a ` + variant + `</p>
        </div>
      </section>
`
	},
	"Feature/Product Cards": static(`      <section className="cards">
        <div className="container">
          <div className="cards">
            {[1, 2, 3].map(i => (
              <div key={i} className="card">
                <h3>Feature {i}</h3>
                <p>Description of feature {i}</p>
              </div>
            ))}
          </div>
        </div>
      </section>
`),
}

func generateReact(components []Component) string {
	var b strings.Builder
	b.WriteString(reactHead)
	writeFragments(&b, reactFragments, components)
	b.WriteString(reactTail)
	return b.String()
}
