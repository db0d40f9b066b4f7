package forms

import "testing"

func TestPostFormValidate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantValid bool
	}{
		{
			name:      "normal text",
			text:      "a real post",
			wantValid: true,
		},
		{
			name:      "empty text",
			text:      "",
			wantValid: false,
		},
		{
			name:      "whitespace only",
			text:      "   \n\t  ",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &PostForm{Text: tt.text}
			if got := f.Validate(); got != tt.wantValid {
				t.Errorf("Validate() = %v, want %v", got, tt.wantValid)
			}
			if !tt.wantValid && f.Errors["text"] != TextRequiredError {
				t.Errorf("expected fixed validation message, got %q", f.Errors["text"])
			}
		})
	}
}

func TestCommentFormValidate(t *testing.T) {
	f := &CommentForm{Text: ""}
	if f.Validate() {
		t.Error("blank comment should be invalid")
	}
	if f.Errors["text"] != TextRequiredError {
		t.Errorf("expected fixed validation message, got %q", f.Errors["text"])
	}

	f = &CommentForm{Text: "looks good"}
	if !f.Validate() {
		t.Errorf("valid comment rejected: %v", f.Errors)
	}
}

func TestCleanTextKeepsContent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "trims whitespace", text: "  padded  \n", want: "padded"},
		{name: "keeps ampersands", text: "Tom & Jerry", want: "Tom & Jerry"},
		{name: "keeps angle brackets", text: "1 < 2 && 3 > 2", want: "1 < 2 && 3 > 2"},
		{name: "keeps markup characters", text: `<b>bold claim</b>`, want: `<b>bold claim</b>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &PostForm{Text: tt.text}
			if got := f.CleanText(); got != tt.want {
				t.Errorf("CleanText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseGroupID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *uint
	}{
		{name: "empty", raw: "", want: nil},
		{name: "malformed", raw: "abc", want: nil},
		{name: "zero", raw: "0", want: nil},
		{name: "valid", raw: "7", want: uintPtr(7)},
		{name: "padded", raw: " 7 ", want: uintPtr(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseGroupID(tt.raw)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseGroupID(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ParseGroupID(%q) = %d, want %d", tt.raw, *got, *tt.want)
			}
		})
	}
}

func uintPtr(v uint) *uint {
	return &v
}
