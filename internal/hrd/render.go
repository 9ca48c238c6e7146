package hrd

import (
	"github.com/ytget/hr-diagram/internal/locale"
	"github.com/ytget/hr-diagram/internal/model"
)

// TraceMode mirrors how a trace is drawn
type TraceMode string

const (
	ModeLines       TraceMode = "lines"
	ModeMarkersText TraceMode = "markers+text"
)

// Text positions
const (
	TextTopCenter = "top center"
)

// Marker describes the glyph used for point traces
type Marker struct {
	Size   int
	Symbol string
	Color  string
}

// Trace is one named series on a figure
type Trace struct {
	Name         string
	Mode         TraceMode
	X            []float64
	Y            []float64
	Text         []string
	TextPosition string
	Marker       Marker
}

// Figure is the full description of one chart
type Figure struct {
	Metallicity model.Metallicity
	Title       string
	XAxisTitle  string
	YAxisTitle  string
	LegendTitle string
	ShowLegend  bool
	XReversed   bool
	Traces      []Trace
}

// Message is a user-facing notice; Key and Args are resolved by locale
type Message struct {
	Level model.MessageLevel
	Key   string
	Args  []any
}

// Text resolves the message in the given localization
func (m Message) Text(l *locale.Localization) string {
	return l.Format(m.Key, m.Args...)
}

// Element is either a message or a figure, in display order
type Element struct {
	Message *Message
	Figure  *Figure
}

// IsFigure reports whether the element holds a chart
func (e Element) IsFigure() bool {
	return e.Figure != nil
}

// Output is the render description of one pass
type Output struct {
	PassID   string
	Elements []Element
}

// Figures returns the charts of the pass in display order
func (o Output) Figures() []*Figure {
	var figs []*Figure
	for _, e := range o.Elements {
		if e.Figure != nil {
			figs = append(figs, e.Figure)
		}
	}
	return figs
}

// Messages returns the notices of the pass in display order
func (o Output) Messages() []Message {
	var msgs []Message
	for _, e := range o.Elements {
		if e.Message != nil {
			msgs = append(msgs, *e.Message)
		}
	}
	return msgs
}

// HasErrors reports whether any message is an error
func (o Output) HasErrors() bool {
	for _, m := range o.Messages() {
		if m.Level == model.LevelError {
			return true
		}
	}
	return false
}

// IsEmpty reports the not-ready state: nothing to show at all
func (o Output) IsEmpty() bool {
	return len(o.Elements) == 0
}

func messageElement(level model.MessageLevel, key string, args ...any) Element {
	return Element{Message: &Message{Level: level, Key: key, Args: args}}
}
