// Package trim shortens text to a maximum length for display.
//
// Trimming prefers word boundaries and can strip trailing punctuation
// before appending a suffix. Lengths are counted in runes (Unicode code
// points), not bytes.
//
// # Basic Usage
//
// Trim with the defaults ("..." suffix, whole words, punctuation kept):
//
//	out, err := trim.Trim("This is a long sentence that needs to be trimmed", 20, nil)
//	// out == "This is a long..."
//
// Override individual options. Unset fields keep their defaults:
//
//	out, err := trim.Trim(text, 19, &trim.Options{PreserveWholeWords: trim.Bool(false)})
//
// # Trimmer
//
// A Trimmer holds a fixed configuration and can be shared across goroutines
// once configured:
//
//	tr := trim.New().WithSuffix(" [more]").WithPunctuation(false)
//	out, err := tr.Trim(text, 40)
//
// # Untyped Input
//
// TrimValue accepts values decoded from JSON, YAML or TOML and applies the
// same argument checks a dynamically typed caller would expect:
//
//	out, err := trim.TrimValue(payload["text"], payload["max_length"], nil)
//
// # Options Documents
//
// DecodeOptions reads an options record from JSON, YAML or TOML, and
// OptionsSchema describes that record as JSON Schema.
//
// # Unicode
//
// Runes are the unit of length. Emoji built from several code points (skin
// tone modifiers, ZWJ sequences) can be split like any other run of runes.
package trim
