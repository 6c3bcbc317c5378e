package trim

// Smart trims text to maxLength runes with the default options.
// A negative maxLength returns an empty string.
func Smart(text string, maxLength int) string {
	if maxLength < 0 {
		return ""
	}
	return trimText(text, maxLength, defaultSettings())
}

// Hard trims text to maxLength runes without backing off to word
// boundaries. A negative maxLength returns an empty string.
func Hard(text string, maxLength int) string {
	if maxLength < 0 {
		return ""
	}
	s := defaultSettings()
	s.preserveWholeWords = false
	return trimText(text, maxLength, s)
}
