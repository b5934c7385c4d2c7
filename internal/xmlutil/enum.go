package xmlutil

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PascalCase converts a snake_case wire token such as "past_due" into the
// PascalCase form used for Go constant names ("PastDue").
func PascalCase(token string) string {
	words := strings.FieldsFunc(token, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	// A Caser is stateful, so one is made per call.
	caser := cases.Title(language.Und)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, "")
}

// ParseEnum looks token up in names after converting it to PascalCase. The
// comparison ignores case.
func ParseEnum[T any](token string, names map[string]T) (T, error) {
	want := PascalCase(strings.TrimSpace(token))
	for name, v := range names {
		if strings.EqualFold(name, want) {
			return v, nil
		}
	}
	var zero T
	return zero, errors.Errorf("unable to parse %q as %T", token, zero)
}
