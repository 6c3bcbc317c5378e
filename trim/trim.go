package trim

import (
	"strings"
	"unicode/utf8"
)

// Trim shortens text to at most maxLength runes, including the suffix.
//
// Text that already fits is returned unchanged. Otherwise the content is cut
// to leave room for the suffix, backed off to the last space when the cut
// lands inside a word, and stripped of trailing punctuation when requested.
// If the suffix alone does not leave room for content, the suffix clipped to
// maxLength runes is returned.
//
// A negative maxLength returns an *ArgumentError wrapping ErrInvalidArgument.
func Trim(text string, maxLength int, opts *Options) (string, error) {
	if maxLength < 0 {
		return "", errMaxLength()
	}
	return trimText(text, maxLength, opts.resolve()), nil
}

// MustTrim is like Trim but panics if the arguments are invalid.
func MustTrim(text string, maxLength int, opts *Options) string {
	out, err := Trim(text, maxLength, opts)
	if err != nil {
		panic("trim: " + err.Error())
	}
	return out
}

// trimText does the work for a validated maxLength.
func trimText(text string, maxLength int, s settings) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	suffix := []rune(s.suffix)
	contentLength := maxLength - len(suffix)
	if contentLength <= 0 {
		return string(suffix[:maxLength])
	}

	runes := []rune(text)
	candidate := runes[:contentLength]

	if s.preserveWholeWords && cutsWord(runes, contentLength) {
		// No space in the window means no whole word fits.
		candidate = candidate[:max(lastSpace(candidate), 0)]
	}

	content := string(candidate)
	if !s.preservePunctuation {
		content = strings.TrimRight(content, Punctuation)
	}

	return content + s.suffix
}

// cutsWord reports whether cutting runes at i splits a word, meaning the
// next rune exists and is not a space.
func cutsWord(runes []rune, i int) bool {
	return i < len(runes) && runes[i] != ' '
}

// lastSpace returns the index of the last ' ' in runes, or -1.
func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
