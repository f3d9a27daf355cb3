// Package statusicon renders the icon for a resource lifecycle status, either
// as an HTML element for web dashboards or as a styled glyph for terminals.
//
// Icons inherit the color and size of their surroundings, except error icons
// which are always drawn in DangerColor. The title of every icon is the
// status label, so unknown statuses show up as "Other".
package statusicon

import (
	"html/template"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/katistix/statusicon/pkg/status"
)

// Props are the inputs of a status icon.
type Props struct {
	// Status is the raw status string; unrecognized values render as unknown.
	Status string
	// Spin animates the icon.
	Spin bool
	// TestID is forwarded verbatim as the data-test-id attribute.
	TestID string
}

// Element is one rendered status icon.
type Element struct {
	Icon      status.Icon
	Title     string
	ClassName string
	TestID    string
	// Color is empty when the icon inherits its container color.
	Color string
}

// Render resolves the icon and label for p.Status.
func Render(p Props) Element {
	icon := status.IconFor(p.Status)
	el := Element{
		Icon:      icon,
		Title:     status.LabelFor(p.Status).String(),
		ClassName: classNames(BaseClass, spinClass(p.Spin)),
		TestID:    p.TestID,
	}
	if icon.FixedDanger() {
		el.Color = DangerColor
	}
	return el
}

// Spinning reports whether the element carries the spin class.
func (e Element) Spinning() bool {
	return hasClass(e.ClassName, SpinClass)
}

var iconTemplate = template.Must(template.New("icon").Parse(
	`<span role="img" class="{{.Class}}" title="{{.Title}}" aria-label="{{.Title}}"` +
		`{{if .TestID}} data-test-id="{{.TestID}}"{{end}}` +
		` style="display:inline-block;width:1em;height:1em;font-size:1em;line-height:1;color:{{.Color}}">{{.Glyph}}</span>`,
))

// HTML returns the element as a single span.
func (e Element) HTML() template.HTML {
	color := e.Color
	if color == "" {
		color = "currentColor"
	}

	var b strings.Builder
	err := iconTemplate.Execute(&b, struct {
		Class, Title, TestID, Color, Glyph string
	}{e.ClassName, e.Title, e.TestID, color, glyph(e.Icon)})
	if err != nil {
		return template.HTML(template.HTMLEscapeString(glyph(e.Icon)))
	}
	return template.HTML(b.String())
}

// View renders the glyph with the default lipgloss renderer. frame selects the
// rotation frame of a spinning icon and is ignored otherwise.
func (e Element) View(frame int) string {
	return e.ViewWith(lipgloss.DefaultRenderer(), frame)
}

// ViewWith is View with an explicit renderer.
func (e Element) ViewWith(r *lipgloss.Renderer, frame int) string {
	g := glyph(e.Icon)
	if e.Spinning() {
		frames := glyphFrames(e.Icon)
		if frame < 0 {
			frame = -frame
		}
		g = frames[frame%len(frames)]
	}

	style := r.NewStyle()
	if e.Color != "" {
		style = style.Foreground(lipgloss.Color(e.Color))
	}
	return style.Render(g)
}

// Spinner returns a bubbles spinner cycling through the element's rotation
// frames, or a single static frame when the element does not spin.
func (e Element) Spinner() spinner.Spinner {
	frames := []string{glyph(e.Icon)}
	if e.Spinning() {
		frames = glyphFrames(e.Icon)
	}
	return spinner.Spinner{Frames: frames, FPS: time.Second / 8}
}
