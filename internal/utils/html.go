package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LooksLikeHTML é uma heurística barata para conteúdo vindo de páginas inteiras
func LooksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	lower := strings.ToLower(trimmed[:min(len(trimmed), 512)])
	if strings.Contains(lower, "<!doctype html") {
		return true
	}
	for _, tag := range []string{"html", "body", "article", "div", "p", "main", "section"} {
		if hasTag(lower, tag) {
			return true
		}
	}
	return false
}

// hasTag procura "<name" seguido de ">", "/" ou espaço, para que "<p" não
// case com "<pre" ou "<placeholder".
func hasTag(lower, name string) bool {
	open := "<" + name
	for i := 0; ; {
		idx := strings.Index(lower[i:], open)
		if idx < 0 {
			return false
		}
		end := i + idx + len(open)
		if end == len(lower) {
			return false
		}
		switch lower[end] {
		case '>', '/', ' ', '\t', '\n', '\r':
			return true
		}
		i = end
	}
}

// HTMLToText extrai o texto visível de um documento HTML, ignorando
// scripts, estilos e navegação. Em caso de erro devolve a entrada.
func HTMLToText(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("script, style, noscript, nav, header, footer, aside, form, iframe").Remove()

	root := doc.Find("article").First()
	if root.Length() == 0 {
		root = doc.Find("main").First()
	}
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	return strings.Join(strings.Fields(root.Text()), " ")
}
