package models

import "testing"

func TestPostString(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "short text stays whole",
			text:     "hello",
			expected: "hello",
		},
		{
			name:     "exactly fifteen runes",
			text:     "123456789012345",
			expected: "123456789012345",
		},
		{
			name:     "long text truncated to fifteen runes",
			text:     "a rather long post body that keeps going",
			expected: "a rather long p",
		},
		{
			name:     "multibyte runes counted as runes",
			text:     "привет мир и вселенная",
			expected: "привет мир и вс",
		},
		{
			name:     "empty text",
			text:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Post{Text: tt.text}
			if got := p.String(); got != tt.expected {
				t.Errorf("Post.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCommentString(t *testing.T) {
	c := Comment{Text: "a comment that is definitely too long"}
	if got := c.String(); got != "a comment that " {
		t.Errorf("Comment.String() = %q, want %q", got, "a comment that ")
	}
}

func TestGroupString(t *testing.T) {
	g := Group{Title: "Gophers", Slug: "gophers"}
	if got := g.String(); got != "Gophers" {
		t.Errorf("Group.String() = %q, want %q", got, "Gophers")
	}
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{
			name:     "both names",
			user:     User{Username: "ann", FirstName: "Ann", LastName: "Lee"},
			expected: "Ann Lee",
		},
		{
			name:     "first name only",
			user:     User{Username: "ann", FirstName: "Ann"},
			expected: "Ann",
		},
		{
			name:     "no names falls back to username",
			user:     User{Username: "ann"},
			expected: "ann",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.FullName(); got != tt.expected {
				t.Errorf("FullName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
