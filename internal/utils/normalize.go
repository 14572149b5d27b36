package utils

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTitle aplica NFC e remove espaços das pontas. Só desfaz dois
// embrulhos comuns em respostas de modelo: "**título**" inteiro e um "# "
// inicial. O resto do texto é mantido como veio.
func NormalizeTitle(title string) string {
	normalized := strings.TrimSpace(norm.NFC.String(title))

	if rest, ok := strings.CutPrefix(normalized, "# "); ok {
		normalized = strings.TrimSpace(rest)
	}

	if len(normalized) >= 4 && strings.HasPrefix(normalized, "**") && strings.HasSuffix(normalized, "**") {
		inner := normalized[2 : len(normalized)-2]
		if !strings.Contains(inner, "**") {
			normalized = strings.TrimSpace(inner)
		}
	}

	return normalized
}

// TruncateRunes retorna os primeiros max caracteres (runas) de s
func TruncateRunes(s string, max int) string {
	if max < 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
