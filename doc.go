// Package smarttrim shortens text for display without splitting words.
//
// The work happens in the trim subpackage:
//
//   - trim.Trim: cut text to a rune budget, appending a suffix
//   - trim.Trimmer: reusable, concurrency-safe configuration
//   - trim.TrimValue: the same operation for untyped decoded values
//   - trim.DecodeOptions / trim.OptionsSchema: options as JSON, YAML or TOML
//
// # Quick Start
//
//	import "github.com/randalmurphal/smarttrim/trim"
//	out, err := trim.Trim("This is a long sentence that needs to be trimmed", 20, nil)
//	// out == "This is a long..."
//
// Options are resolved field by field; anything left nil keeps its default:
//
//	out, err := trim.Trim(text, 22, &trim.Options{PreservePunctuation: trim.Bool(false)})
package smarttrim
