package esquery

// arabicStopwords are particles, prepositions, conjunctions and
// demonstratives too common to carry relevance.
var arabicStopwords = map[string]struct{}{
	"من": {}, "في": {}, "على": {}, "إلى": {}, "عن": {},
	"ما": {}, "إذ": {}, "أو": {}, "و": {}, "ثم": {},
	"أن": {}, "إن": {}, "كان": {}, "قد": {}, "لم": {},
	"لن": {}, "لا": {}, "هذه": {}, "هذا": {}, "ذلك": {},
	"الذي": {}, "التي": {}, "ال": {},
}

// IsStopword reports whether the term is in the stopword set.
func IsStopword(term string) bool {
	_, ok := arabicStopwords[term]
	return ok
}

func isArabic(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}

// Tokenize extracts query terms from raw text: maximal runs of
// Arabic-script code points, longer than two runes, not stopwords.
// Input order is preserved and duplicates are kept. Non-Arabic or
// entirely-stopword input yields an empty sequence; callers fall back
// to a match-all query.
func Tokenize(text string) []string {
	var terms []string
	var run []rune
	flush := func() {
		if len(run) > 2 {
			term := string(run)
			if !IsStopword(term) {
				terms = append(terms, term)
			}
		}
		run = run[:0]
	}
	for _, r := range text {
		if isArabic(r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()
	return terms
}
