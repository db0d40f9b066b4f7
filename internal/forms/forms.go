// Package forms wraps the post and comment input forms and their
// validation rules.
package forms

import (
	"strconv"
	"strings"
)

// TextRequiredError is the user-facing message shown when the text field
// is submitted empty or blank.
const TextRequiredError = "Text is required and must not be blank."

// GroupInvalidError is shown when the submitted group reference does not
// name an existing group.
const GroupInvalidError = "Select a valid group."

// PostForm carries the fields of the post create/edit form.
type PostForm struct {
	Text    string
	GroupID *uint
	Image   string
	Errors  map[string]string
}

// Validate applies the one custom rule beyond field definitions: text must
// not be empty or blank. Returns true when the form is valid.
func (f *PostForm) Validate() bool {
	f.Errors = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = TextRequiredError
	}
	return len(f.Errors) == 0
}

// CleanText returns the text as it will be stored: surrounding whitespace
// trimmed, content otherwise untouched. Escaping happens at render time.
func (f *PostForm) CleanText() string {
	return strings.TrimSpace(f.Text)
}

// CommentForm carries the single field of the comment form.
type CommentForm struct {
	Text   string
	Errors map[string]string
}

// Validate rejects empty/blank comment text with the fixed message
func (f *CommentForm) Validate() bool {
	f.Errors = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = TextRequiredError
	}
	return len(f.Errors) == 0
}

// CleanText returns the stored form of the comment text
func (f *CommentForm) CleanText() string {
	return strings.TrimSpace(f.Text)
}

// ParseGroupID converts the raw group form value into an optional group
// reference. An empty value means no group; a malformed value is treated
// the same way.
func ParseGroupID(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}
