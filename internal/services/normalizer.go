package services

import (
	"regexp"
	"strings"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// spaceClass is the Unicode whitespace set for use inside a character class.
// RE2's \s is ASCII-only and lacks \v, so separators such as U+00A0 are listed.
const spaceClass = `\s\v\x{1c}-\x{1f}\x{85}\p{Z}`

var (
	urlPattern        = regexp.MustCompile(`http[^` + spaceClass + `]+[` + spaceClass + `]`)
	markerPattern     = regexp.MustCompile(`RT|cc`)
	hashtagPattern    = regexp.MustCompile(`#[^` + spaceClass + `]+[` + spaceClass + `]*`)
	mentionPattern    = regexp.MustCompile(`@[^` + spaceClass + `]+`)
	isolatedPattern   = regexp.MustCompile(`[` + spaceClass + `]+[^a-z0-9` + spaceClass + `][` + spaceClass + `]+`)
	whitespacePattern = regexp.MustCompile(`[` + spaceClass + `]+`)
)

// Normalize turns raw résumé text into the lowercase, single-spaced ASCII form the
// classifiers match against. Splitting punctuation can expose a URL or marker token
// that the earlier steps would have removed, so the pass repeats until stable.
func Normalize(raw string) string {
	text := normalizePass(raw)
	for {
		next := normalizePass(text)
		if next == text {
			return text
		}
		text = next
	}
}

func normalizePass(text string) string {
	text = urlPattern.ReplaceAllString(text, " ")
	text = stripMarkers(text)
	text = hashtagPattern.ReplaceAllString(text, " ")
	text = mentionPattern.ReplaceAllString(text, " ")
	text = isolatedPattern.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, text)
	text = strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return ' '
		}
		return r
	}, text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(strings.ToLower(text))
}

// stripMarkers removes the retweet and carbon-copy markers "RT" and "cc" wherever
// they occur, including inside words, so "accept" becomes "a ept". The match is
// case-sensitive; a "CC" lowered by one pass is removed by the next.
func stripMarkers(text string) string {
	return markerPattern.ReplaceAllString(text, " ")
}
