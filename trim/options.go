package trim

// DefaultSuffix is appended to trimmed text when no suffix is configured.
const DefaultSuffix = "..."

// Punctuation is the set of trailing characters removed when punctuation
// is not preserved.
const Punctuation = `.,!?;:'")]}`

// Options controls how text is trimmed.
// Nil fields use the defaults; each field is resolved independently.
type Options struct {
	// Suffix is appended when the text is shortened.
	// Default: "..."
	Suffix *string `json:"suffix,omitempty" yaml:"suffix,omitempty" toml:"suffix,omitempty" jsonschema:"description=Appended when the text is shortened,default=..."`

	// PreserveWholeWords backs the cut off to the preceding space instead of
	// splitting a word.
	// Default: true
	PreserveWholeWords *bool `json:"preserve_whole_words,omitempty" yaml:"preserve_whole_words,omitempty" toml:"preserve_whole_words,omitempty" jsonschema:"description=Cut at the preceding space instead of splitting a word,default=true"`

	// PreservePunctuation keeps trailing punctuation on the trimmed content.
	// When false the trailing run of Punctuation is dropped before the suffix.
	// Default: true
	PreservePunctuation *bool `json:"preserve_punctuation,omitempty" yaml:"preserve_punctuation,omitempty" toml:"preserve_punctuation,omitempty" jsonschema:"description=Keep trailing punctuation before the suffix,default=true"`
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	return Options{
		Suffix:              String(DefaultSuffix),
		PreserveWholeWords:  Bool(true),
		PreservePunctuation: Bool(true),
	}
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// settings is a fully resolved Options.
type settings struct {
	suffix              string
	preserveWholeWords  bool
	preservePunctuation bool
}

func defaultSettings() settings {
	return settings{
		suffix:              DefaultSuffix,
		preserveWholeWords:  true,
		preservePunctuation: true,
	}
}

// resolve merges o over the defaults. A nil receiver yields the defaults.
func (o *Options) resolve() settings {
	s := defaultSettings()
	if o == nil {
		return s
	}
	if o.Suffix != nil {
		s.suffix = *o.Suffix
	}
	if o.PreserveWholeWords != nil {
		s.preserveWholeWords = *o.PreserveWholeWords
	}
	if o.PreservePunctuation != nil {
		s.preservePunctuation = *o.PreservePunctuation
	}
	return s
}

func (s settings) options() Options {
	return Options{
		Suffix:              String(s.suffix),
		PreserveWholeWords:  Bool(s.preserveWholeWords),
		PreservePunctuation: Bool(s.preservePunctuation),
	}
}
