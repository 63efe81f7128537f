package esquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"non-arabic", "hello world 123", nil},
		{"single term", "الرحمة", []string{"الرحمة"}},
		{"short runs dropped", "من في لا", nil},
		{"stopwords dropped", "هذا ذلك الذي", nil},
		{"mixed", "حديث الرحمة", []string{"حديث", "الرحمة"}},
		{"latin separators", "حديثfooالرحمة", []string{"حديث", "الرحمة"}},
		{"order preserved", "الصلاة ثم الزكاة", []string{"الصلاة", "الزكاة"}},
		{"duplicates kept", "الرحمة الرحمة", []string{"الرحمة", "الرحمة"}},
		{"particles dropped", "ما هي أحكام الصيام", []string{"أحكام", "الصيام"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenizeProperties(t *testing.T) {
	inputs := []string{
		"حديث الرحمة والمغفرة",
		"قال رسول الله صلى الله عليه وسلم",
		"هذا الكتاب في الفقه",
		"abc من def الصبر",
	}

	for _, input := range inputs {
		for _, term := range Tokenize(input) {
			assert.Greater(t, len([]rune(term)), 2, "term %q too short", term)
			assert.False(t, IsStopword(term), "term %q is a stopword", term)
		}
	}
}
