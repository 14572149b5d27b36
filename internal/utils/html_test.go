package utils

import (
	"testing"
)

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"<!DOCTYPE html><html><body>x</body></html>", true},
		{"  <div class=\"post\">texto</div>", true},
		{"<3 fusion energy", false},
		{"<p>Short paragraph</p>", true},
		{"<p class=\"lead\">Lead</p>", true},
		{"<placeholder> text goes here", false},
		{"<pre>go test ./...</pre> output", false},
		{"<param> is a keyword in the template DSL", false},
		{"<divination> and other rituals", false},
		{"Plain article text about fusion", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeHTML(tt.input); got != tt.expected {
			t.Errorf("LooksLikeHTML(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestHTMLToText(t *testing.T) {
	page := `<html><head><title>t</title><style>p{}</style></head>
<body>
  <nav>Home | About</nav>
  <article>
    <h1>Fusion   record</h1>
    <p>Scientists sustained plasma</p>
    <script>track()</script>
  </article>
  <footer>© 2025</footer>
</body></html>`

	expected := "Fusion record Scientists sustained plasma"
	if got := HTMLToText(page); got != expected {
		t.Errorf("HTMLToText() = %q, want %q", got, expected)
	}
}

func TestHTMLToTextSemArticle(t *testing.T) {
	page := `<html><body><header>menu</header><div><p>Only body</p><p>text</p></div></body></html>`

	if got := HTMLToText(page); got != "Only body text" {
		t.Errorf("HTMLToText() = %q", got)
	}
}
