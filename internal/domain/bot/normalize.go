package bot

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decompõe e remove marcas diacríticas (NFD -> remove Mn -> NFC),
// de modo que "código", "Codigo" e "CÓDIGO" normalizem para "codigo".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza texto para o casamento lexical do roteador:
// minúsculas e sem acentos. É puramente léxico; não há stemming.
func Fold(s string) string {
	s = strings.ToLower(s)
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrada com bytes inválidos: casa sobre o texto em minúsculas mesmo.
		return s
	}
	return out
}
