package trim

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	text  string
	limit int
	opts  *Options
}

// sampleInputs generates a deterministic corpus of sentences and options.
func sampleInputs(t *testing.T, n int) []sample {
	t.Helper()

	faker := gofakeit.New(42)
	suffixes := []string{"...", "", " →", " [more]", "... read more"}

	inputs := make([]sample, n)
	for i := range inputs {
		text := faker.Sentence(faker.Number(1, 20))
		if faker.Bool() {
			text += faker.RandomString([]string{"!", "?!", "...", `")`, " ,"})
		}
		inputs[i].text = text
		inputs[i].limit = faker.Number(0, utf8.RuneCountInString(text)+5)
		inputs[i].opts = &Options{
			Suffix:              String(suffixes[faker.Number(0, len(suffixes)-1)]),
			PreserveWholeWords:  Bool(faker.Bool()),
			PreservePunctuation: Bool(faker.Bool()),
		}
	}
	return inputs
}

func TestTrim_Properties(t *testing.T) {
	for _, in := range sampleInputs(t, 500) {
		got, err := Trim(in.text, in.limit, in.opts)
		require.NoError(t, err)

		// Length bound.
		assert.LessOrEqual(t, utf8.RuneCountInString(got), in.limit, "text=%q max=%d", in.text, in.limit)

		// Determinism.
		again, _ := Trim(in.text, in.limit, in.opts)
		assert.Equal(t, got, again)

		if utf8.RuneCountInString(in.text) <= in.limit {
			assert.Equal(t, in.text, got, "no-op path must return input")
			continue
		}

		// Suffix presence, or a prefix of it when it does not fit.
		suffix := *in.opts.Suffix
		assert.True(t,
			strings.HasSuffix(got, suffix) || strings.HasPrefix(suffix, got),
			"text=%q max=%d suffix=%q got=%q", in.text, in.limit, suffix, got)

		// The content is always a prefix of the input.
		content := strings.TrimSuffix(got, suffix)
		if strings.HasSuffix(got, suffix) {
			assert.True(t, strings.HasPrefix(in.text, content), "content %q not a prefix of %q", content, in.text)
		}
	}
}

func TestTrim_WholeWordsNeverSplit(t *testing.T) {
	faker := gofakeit.New(7)

	for range 200 {
		text := faker.Sentence(faker.Number(2, 15))
		if utf8.RuneCountInString(text) < 4 {
			continue
		}
		limit := faker.Number(4, utf8.RuneCountInString(text))

		got, err := Trim(text, limit, &Options{Suffix: String("")})
		require.NoError(t, err)
		if got == "" || got == text {
			continue
		}

		// The cut must end where the input has a space or ends.
		rest := []rune(text)[utf8.RuneCountInString(got):]
		assert.True(t, len(rest) == 0 || rest[0] == ' ', "text=%q max=%d got=%q", text, limit, got)
	}
}

func TestTrim_StrippedContentHasNoTrailingPunctuation(t *testing.T) {
	faker := gofakeit.New(99)

	for range 200 {
		text := faker.Sentence(faker.Number(2, 15))
		if utf8.RuneCountInString(text) < 4 {
			continue
		}
		limit := faker.Number(4, utf8.RuneCountInString(text))

		got, err := Trim(text, limit, &Options{PreservePunctuation: Bool(false)})
		require.NoError(t, err)
		if utf8.RuneCountInString(text) <= limit {
			continue
		}

		content := strings.TrimSuffix(got, DefaultSuffix)
		if content == "" {
			continue
		}
		last, _ := utf8.DecodeLastRuneInString(content)
		assert.NotContains(t, Punctuation, string(last), "text=%q max=%d got=%q", text, limit, got)
	}
}
