package rawheader

import (
	"fmt"
	"strings"
)

// acceptLanguageBuilder accumulates a comma-separated list of language
// codes, dropping duplicates.
type acceptLanguageBuilder struct {
	b    strings.Builder
	seen map[string]bool
}

func (alb *acceptLanguageBuilder) addLanguageCode(language string) {
	if alb.seen[language] {
		return
	}
	if alb.b.Len() > 0 {
		alb.b.WriteByte(',')
	}
	alb.b.WriteString(language)
	if alb.seen == nil {
		alb.seen = make(map[string]bool)
	}
	alb.seen[language] = true
}

// baseLanguageCode returns the base subtag of a language code: the text
// before the first "-", or the whole code if there is none.
func baseLanguageCode(languageCode string) string {
	base, _, _ := strings.Cut(languageCode, "-")
	return strings.TrimSpace(base)
}

// ExpandLanguageList expands a comma-separated language preference list by
// inserting each base language after the last member of its family: for
// every listed language whose successor does not share its base subtag, the
// base subtag itself is appended. Duplicates are dropped, first-seen order
// is kept. For example, "en-US,fr" expands to "en-US,en,fr".
func ExpandLanguageList(languagePrefs string) string {
	if languagePrefs == "" {
		return ""
	}
	languages := strings.Split(languagePrefs, ",")
	for i := range languages {
		languages[i] = strings.TrimSpace(languages[i])
	}
	var builder acceptLanguageBuilder
	for i, language := range languages {
		builder.addLanguageCode(language)
		base := baseLanguageCode(language)
		// Look ahead: only emit the base code once the family is over.
		if i+1 >= len(languages) || baseLanguageCode(languages[i+1]) != base {
			builder.addLanguageCode(base)
		}
	}
	return builder.b.String()
}

// GenerateAcceptLanguageHeader attaches descending q-values to a
// comma-separated language list: the first language carries an implicit
// q=1.0 and is emitted bare, each following language gets a q-value 0.1
// lower, never going below 0.1. The input is expected to be a plain
// comma-separated list without weights, as stored in user preferences.
func GenerateAcceptLanguageHeader(rawLanguageList string) string {
	// q-values are tracked as integers ten times their actual size, to
	// avoid comparing floats.
	const qvalueDecrement10 = 1
	qvalue10 := 10
	b := &strings.Builder{}
	t := newStringTokenizer(rawLanguageList, ",")
	for t.next() {
		language := t.token
		if qvalue10 == 10 {
			// q=1.0 is implicit.
			b.WriteString(language)
		} else {
			fmt.Fprintf(b, ",%s;q=0.%d", language, qvalue10)
		}
		// It does not make sense to have q=0.
		if qvalue10 > qvalueDecrement10 {
			qvalue10 -= qvalueDecrement10
		}
	}
	return b.String()
}
