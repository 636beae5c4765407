// Package htmltable turns an HTML markup stream into an ordered
// sequence of table rows using the streaming tokenizer from
// golang.org/x/net/html. It knows nothing about satellites: cells are
// plain strings, and anchor hrefs ride along as pseudo-cells so detail
// URLs travel next to the visible text they decorate.
package htmltable

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/satlist/satlist"
)

// state tracks where in the table structure the tokenizer currently is.
type state int

const (
	stateIdle state = iota
	stateInRow
	stateInCell
)

// DefaultSeparator joins the text nodes of one cell.
const DefaultSeparator = " "

// Tokenizer accumulates table rows across one or more documents fed to
// it. Instances are cheap, scoped to a single retrieval, and not safe
// for concurrent use.
type Tokenizer struct {
	sep   string
	state state
	cell  []string
	row   satlist.Row
	rows  []satlist.Row
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithSeparator sets the string joining text nodes within one cell.
// Defaults to DefaultSeparator.
func WithSeparator(sep string) Option {
	return func(t *Tokenizer) {
		t.sep = sep
	}
}

// New creates a Tokenizer.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{sep: DefaultSeparator}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Feed tokenizes one document and appends its rows to the accumulated
// set. Every <tr> becomes one row; every <td> and <th> inside it one
// cell. An <a href> opened anywhere inside a row appends the href as a
// pseudo-cell at the position where the anchor opened. Malformed or
// unclosed markup never fails: an in-progress row is flushed at end of
// input and unknown tags are ignored.
func (t *Tokenizer) Feed(doc string) {
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// End of input or malformed markup; flush and stop.
			t.flushRow()
			return
		case html.StartTagToken, html.SelfClosingTagToken:
			t.startTag(z.Token())
		case html.EndTagToken:
			t.endTag(z.Token())
		case html.TextToken:
			if t.state == stateInCell {
				if text := strings.TrimSpace(string(z.Text())); text != "" {
					t.cell = append(t.cell, text)
				}
			}
		}
	}
}

// Rows returns all rows accumulated since the last Reset.
func (t *Tokenizer) Rows() []satlist.Row {
	return t.rows
}

// Reset discards accumulated rows and in-progress buffers.
func (t *Tokenizer) Reset() {
	t.state = stateIdle
	t.cell = nil
	t.row = nil
	t.rows = nil
}

func (t *Tokenizer) startTag(tok html.Token) {
	switch tok.Data {
	case "tr":
		// A new row implicitly closes an unterminated one.
		t.flushRow()
		t.state = stateInRow
	case "td", "th":
		if t.state == stateIdle {
			return
		}
		t.flushCell()
		t.state = stateInCell
	case "a":
		if t.state == stateIdle {
			return
		}
		for _, a := range tok.Attr {
			if a.Key == "href" {
				t.row = append(t.row, a.Val)
				break
			}
		}
	}
}

func (t *Tokenizer) endTag(tok html.Token) {
	switch tok.Data {
	case "td", "th":
		if t.state == stateInCell {
			t.flushCell()
			t.state = stateInRow
		}
	case "tr":
		t.flushRow()
	}
}

// flushCell joins the buffered text nodes into one cell on the current
// row.
func (t *Tokenizer) flushCell() {
	if t.state != stateInCell {
		return
	}
	t.row = append(t.row, strings.TrimSpace(strings.Join(t.cell, t.sep)))
	t.cell = nil
}

// flushRow appends the current row, even when empty, so the row
// sequence reflects every <tr> in document order.
func (t *Tokenizer) flushRow() {
	t.flushCell()
	if t.state == stateIdle {
		return
	}
	t.rows = append(t.rows, t.row)
	t.row = nil
	t.cell = nil
	t.state = stateIdle
}
