package program

import (
	"strings"
	"unicode"
)

// typeKeywords pairs a room type with its name keywords. Keywords cover
// English, Portuguese and Spanish synonyms. The slice order is the matching
// priority: entries are evaluated top-down and the first keyword hit wins.
var typeKeywords = []struct {
	Type     RoomType
	Keywords []string
}{
	{Circulation, []string{"hallway", "hall", "corridor", "corredor", "circulation", "entry", "foyer"}},
	{Bathroom, []string{"bathroom", "bath", "wc", "toilet", "lavabo", "powder", "restroom", "banheiro"}},
	{Kitchen, []string{"kitchen", "cozinha", "cocina", "kitchenette"}},
	{Bedroom, []string{"bedroom", "quarto", "suite", "dormitorio", "bed", "master"}},
	{Office, []string{"office", "study", "escritorio", "home office"}},
	{Living, []string{"living", "sala", "family room", "lounge", "sitting", "dining"}},
	{Utility, []string{"storage", "closet", "laundry", "utility", "pantry", "despensa", "lavanderia"}},
}

// Classify maps a free-text room name to a RoomType. Matching is
// case-insensitive and tolerant of punctuation: "W.C. 2" matches the
// bathroom keyword "wc". Names with no keyword hit return Unclassified.
// Classify is total and has no side effects.
func Classify(name string) RoomType {
	norm := normalize(name)
	compact := strings.ReplaceAll(norm, " ", "")

	for _, tk := range typeKeywords {
		for _, kw := range tk.Keywords {
			if strings.Contains(norm, kw) || strings.Contains(compact, strings.ReplaceAll(kw, " ", "")) {
				return tk.Type
			}
		}
	}
	return Unclassified
}

// normalize lowercases the name, maps punctuation to spaces and collapses
// runs of whitespace, so keyword matching sees a clean token stream.
func normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastSpace := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
