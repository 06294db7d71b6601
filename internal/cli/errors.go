package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HardenedIot/console/internal/forms"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

// validationError reports client-side form failures. These block the
// network call entirely and never mix with server errors.
type validationError struct {
	fields forms.Errors
}

func (e validationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.fields[k]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func errValidation(fields forms.Errors) error {
	return validationError{fields: fields}
}
