package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components read as
// straight-line markup.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// raw writes markup verbatim.
func (hw *htmlWriter) raw(markup string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, markup)
}

// rawf writes formatted markup; arguments must be pre-escaped.
func (hw *htmlWriter) rawf(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

// text writes HTML-escaped content.
func (hw *htmlWriter) text(content string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, templ.EscapeString(content))
}

// element writes an escaped string wrapped in a tag with optional class.
func (hw *htmlWriter) element(tag, class, content string) {
	if class == "" {
		hw.rawf("<%s>", tag)
	} else {
		hw.rawf(`<%s class="%s">`, tag, templ.EscapeString(class))
	}
	hw.text(content)
	hw.rawf("</%s>", tag)
}
