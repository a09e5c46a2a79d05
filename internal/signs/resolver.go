package signs

import (
	"strings"
	"unicode"
)

// Character is one character of a token's reveal animation.
type Character struct {
	Char     rune `json:"char"`
	Revealed bool `json:"revealed"`
}

// Token is one whitespace-delimited unit of input, resolved against the
// dictionary.
type Token struct {
	Original   string      `json:"original"`
	Normalized string      `json:"normalized"`
	Sign       *Descriptor `json:"sign,omitempty"`
	Characters []Character `json:"characters"`
}

// HasSign reports whether the token resolved to a descriptor.
func (t Token) HasSign() bool {
	return t.Sign != nil
}

// Tokenize splits text into whitespace-delimited tokens, as typed.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Normalize lowercases a token and strips every non-word rune.
func Normalize(token string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(token) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve maps a normalized token to a descriptor. Exact matches win;
// otherwise the first declared key that contains the token, or that the
// token contains, is accepted. Empty tokens never match.
func (d *Dictionary) Resolve(normalized string) (*Descriptor, bool) {
	if normalized == "" {
		return nil, false
	}
	if desc, ok := d.entries[normalized]; ok {
		return &desc, true
	}
	for _, key := range d.keys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			desc := d.entries[key]
			return &desc, true
		}
	}
	return nil, false
}

// ResolveText tokenizes free text and resolves every token. Tokens without
// a match are returned unresolved; resolution never fails.
func (d *Dictionary) ResolveText(text string) []Token {
	raw := Tokenize(text)
	tokens := make([]Token, 0, len(raw))
	for _, original := range raw {
		normalized := Normalize(original)
		sign, _ := d.Resolve(normalized)

		chars := make([]Character, 0, len(original))
		for _, r := range original {
			chars = append(chars, Character{Char: r})
		}

		tokens = append(tokens, Token{
			Original:   original,
			Normalized: normalized,
			Sign:       sign,
			Characters: chars,
		})
	}
	return tokens
}
