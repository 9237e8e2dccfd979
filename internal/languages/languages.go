// Package languages attaches human-readable names to provider language codes.
package languages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Describe returns one entry per code, in order. Codes that are not valid
// BCP 47 tags (such as "auto") are named after themselves.
func Describe(codes []string) []Language {
	namer := display.English.Tags()
	out := make([]Language, 0, len(codes))
	for _, code := range codes {
		name := code
		if tag, err := language.Parse(code); err == nil {
			if n := namer.Name(tag); n != "" {
				name = n
			}
		}
		out = append(out, Language{Code: code, Name: name})
	}
	return out
}
