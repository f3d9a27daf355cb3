package statusicon

import "strings"

// DangerColor is the design token used for error icons.
const DangerColor = "#c9190b"

// SpinClass is the CSS class that animates a spinning icon.
const SpinClass = "fa-spin"

// BaseClass is set on every rendered icon.
const BaseClass = "status-icon"

// classNames joins the non-empty classes with a single space.
func classNames(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

func spinClass(spin bool) string {
	if spin {
		return SpinClass
	}
	return ""
}

func hasClass(className, class string) bool {
	for _, c := range strings.Fields(className) {
		if c == class {
			return true
		}
	}
	return false
}
