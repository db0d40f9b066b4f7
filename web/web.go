// Package web holds the embedded HTML templates and their helper funcs.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded static assets rooted at static/.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Templates parses the embedded template set with the helper funcs
// installed.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html"))
}

// userContent is the sanitizer applied to stored post and comment text
// when it is emitted as HTML. Text is stored raw; the UGC policy escapes
// plain text and strips dangerous markup at render time.
var userContent = bluemonday.UGCPolicy()

// Funcs returns the template helpers: the current year for the footer,
// form widget renderers that attach a CSS class to the field, and the
// user-content renderer.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"currentYear": func() int {
			return time.Now().Year()
		},
		"textarea": textareaWidget,
		"input":    inputWidget,
		"userText": userTextHTML,
	}
}

// userTextHTML renders stored user text as sanitized HTML. The result is
// already escaped by the policy, so templates must not escape it again.
func userTextHTML(text string) template.HTML {
	return template.HTML(userContent.Sanitize(text))
}

func textareaWidget(name, value, class string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<textarea name=%q class=%q cols="40" rows="10">%s</textarea>`,
		name, class, template.HTMLEscapeString(value),
	))
}

func inputWidget(kind, name, value, class string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<input type=%q name=%q value=%q class=%q>`,
		kind, name, template.HTMLEscapeString(value), class,
	))
}
