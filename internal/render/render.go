// Package render draws the catalog browser as plain text.
package render

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"

	"github.com/myrjola/dharohar/internal/catalog"
	"github.com/myrjola/dharohar/internal/errors"
	"github.com/myrjola/dharohar/internal/models"
)

//go:embed templates
var templateFiles embed.FS

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

var templates = template.Must(template.New("").Funcs(funcs).ParseFS(templateFiles, "templates/*.tmpl"))

// Text writes each view to w.
//
// Writes are serialized so output from the search debouncer doesn't interleave with other output. Write errors
// don't stop the session. The first one is kept and reported by [Text.Err].
type Text struct {
	w     io.Writer
	clear bool

	mu  sync.Mutex
	err error
}

// Option configures a Text renderer.
type Option func(*Text)

// WithClearScreen clears the terminal before each view change.
func WithClearScreen() Option {
	return func(t *Text) {
		t.clear = true
	}
}

func NewText(w io.Writer, opts ...Option) *Text {
	t := &Text{w: w} //nolint:exhaustruct // zero values are fine.
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ShowView separates the new view from the previous output.
func (t *Text) ShowView(_, to models.View) {
	if t.clear {
		t.write(clearScreen)
		return
	}
	t.write(fmt.Sprintf("\n----- %s -----\n", strings.ToUpper(string(to))))
}

// RenderHome lists the states with their monument count hints.
func (t *Text) RenderHome(states []models.State) {
	t.execute("home", states)
}

type stateData struct {
	State   catalog.ViewState
	Visible []models.Monument
}

// RenderState shows the current state and the visible monuments, or a notice when nothing matches.
func (t *Text) RenderState(vs catalog.ViewState, visible []models.Monument) {
	t.execute("state", stateData{State: vs, Visible: visible})
}

// RenderMonument shows the monument detail page. Empty optional fields are replaced by fallback text.
func (t *Text) RenderMonument(monument models.Monument) {
	t.execute("monument", monument)
}

// Message writes a free-form line such as help text or an error for the user.
func (t *Text) Message(format string, args ...any) {
	t.write(fmt.Sprintf(format, args...) + "\n")
}

// Err returns the first write error.
func (t *Text) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Text) execute(name string, data any) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		t.setErr(errors.Wrap(err, "execute template"))
		return
	}
	t.write(sb.String())
}

func (t *Text) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := io.WriteString(t.w, s); err != nil && t.err == nil {
		t.err = errors.Wrap(err, "write output")
	}
}

func (t *Text) setErr(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err == nil {
		t.err = err
	}
}
