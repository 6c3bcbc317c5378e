package trim

// Trimmer trims text with a fixed configuration.
//
// Configure a Trimmer before sharing it; Trim does not modify the Trimmer
// and is safe for concurrent use.
type Trimmer struct {
	settings settings
}

// New creates a trimmer with the default options.
func New() *Trimmer {
	return &Trimmer{settings: defaultSettings()}
}

// NewWithOptions creates a trimmer from opts. Nil fields use the defaults.
func NewWithOptions(opts *Options) *Trimmer {
	return &Trimmer{settings: opts.resolve()}
}

// WithSuffix sets the suffix appended to trimmed text.
func (t *Trimmer) WithSuffix(suffix string) *Trimmer {
	t.settings.suffix = suffix
	return t
}

// WithWholeWords sets whether cuts back off to the preceding space.
func (t *Trimmer) WithWholeWords(preserve bool) *Trimmer {
	t.settings.preserveWholeWords = preserve
	return t
}

// WithPunctuation sets whether trailing punctuation is kept.
func (t *Trimmer) WithPunctuation(preserve bool) *Trimmer {
	t.settings.preservePunctuation = preserve
	return t
}

// Trim shortens text to at most maxLength runes. See the package-level Trim.
func (t *Trimmer) Trim(text string, maxLength int) (string, error) {
	if maxLength < 0 {
		return "", errMaxLength()
	}
	return trimText(text, maxLength, t.settings), nil
}

// Suffix returns the trimmer's suffix.
func (t *Trimmer) Suffix() string {
	return t.settings.suffix
}

// PreservesWholeWords reports whether the trimmer avoids splitting words.
func (t *Trimmer) PreservesWholeWords() bool {
	return t.settings.preserveWholeWords
}

// PreservesPunctuation reports whether the trimmer keeps trailing punctuation.
func (t *Trimmer) PreservesPunctuation() bool {
	return t.settings.preservePunctuation
}

// Options returns the trimmer's configuration with every field set.
func (t *Trimmer) Options() Options {
	return t.settings.options()
}
