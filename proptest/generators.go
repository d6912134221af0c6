package proptest

import (
	"fmt"
	"shelf/internal/inventory"
	"strings"

	"pgregory.net/rapid"
)

var (
	iterDirGen    = rapid.StringMatching(`[a-z]{8}`)
	isbnGen       = rapid.StringMatching(`97[89]-[0-9]{1,3}`)
	titleGen      = rapid.StringMatching(`[\p{L}\p{N}][\p{L}\p{N} '.,:-]{0,30}`)
	authorGen     = rapid.StringMatching(`[\p{L}][\p{L} .'-]{0,20}`)
	shortQueryGen = rapid.StringMatching(`[a-z]{1,5}`)
)

func statusGen() *rapid.Generator[inventory.Status] {
	return rapid.SampledFrom([]inventory.Status{inventory.StatusAvailable, inventory.StatusIssued})
}

// statusSpellingGen yields stored spellings that load as a valid status.
func statusSpellingGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		s := string(statusGen().Draw(t, "status"))
		switch rapid.IntRange(0, 2).Draw(t, "case") {
		case 1:
			return strings.ToUpper(s)
		case 2:
			return strings.ToUpper(s[:1]) + s[1:]
		}
		return s
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("   \n\t"),
		rapid.Just("[[[["),
		rapid.Just("]]]]"),
		rapid.Just("{"),
		rapid.Just(`[{"title": "unclosed"`),
		rapid.Just(`[{"title": "x",}]`),
		rapid.Just(`{"title": "x", "author": "y", "isbn": "1", "status": "available"}`),
		rapid.Just(`null`),
		rapid.Just(`"just a string"`),
		rapid.Just(`[1, 2, 3]`),
		rapid.Just(`[{"title": 'single quotes'}]`),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

// nonListJSONGen yields well-formed JSON documents whose top level is not
// an array.
func nonListJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`null`),
		rapid.Just(` null `),
		rapid.Just(`true`),
		rapid.Just(`{}`),
		rapid.Just(`{"title": "Dune", "author": "Frank Herbert", "isbn": "978-1", "status": "available"}`),
		rapid.StringMatching(`-?[1-9][0-9]{0,6}`),
		rapid.Custom(func(t *rapid.T) string {
			return fmt.Sprintf("%q", titleGen.Draw(t, "text"))
		}),
	)
}

func missingFieldsGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`[{"author": "a", "isbn": "1", "status": "available"}]`),
		rapid.Just(`[{"title": "t", "isbn": "1", "status": "available"}]`),
		rapid.Just(`[{"title": "t", "author": "a", "status": "available"}]`),
		rapid.Just(`[{"title": "t", "author": "a", "isbn": "1"}]`),
		rapid.Just(`[{}]`),
		rapid.Just(`[null]`),
		rapid.Just(`[{"title": "t", "author": "a", "isbn": "1", "status": "available"}, {"title": "u"}]`),
	)
}

func extraFieldsGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		extraField := rapid.SampledFrom([]string{
			"year",
			"publisher",
			"Title",
			"isbn13",
			"randomField123",
		}).Draw(t, "fieldName")
		extraValue := rapid.SampledFrom([]string{
			`"string_value"`,
			"123",
			"true",
			"[1, 2, 3]",
			`{"nested": "value"}`,
		}).Draw(t, "fieldValue")

		return fmt.Sprintf(`[
    {
        "title": "Dune",
        "author": "Frank Herbert",
        "isbn": "978-1",
        "status": "available",
        %q: %s
    }
]
`, extraField, extraValue)
	})
}

func invalidValuesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`[{"title": 1, "author": "a", "isbn": "1", "status": "available"}]`),
		rapid.Just(`[{"title": "t", "author": ["a"], "isbn": "1", "status": "available"}]`),
		rapid.Just(`[{"title": "t", "author": "a", "isbn": null, "status": "available"}]`),
		rapid.Just(`[{"title": "t", "author": "a", "isbn": "", "status": "available"}]`),
		rapid.Just(`[{"title": "t", "author": "a", "isbn": "1", "status": "lost"}]`),
		rapid.Just(`[{"title": "t", "author": "a", "isbn": "1", "status": true}]`),
	)
}
