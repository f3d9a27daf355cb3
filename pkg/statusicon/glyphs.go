package statusicon

import "github.com/katistix/statusicon/pkg/status"

// glyphFrames returns the characters drawn for an icon. The first frame is
// the static glyph; any further frames are used while spinning.
func glyphFrames(icon status.Icon) []string {
	switch icon {
	case status.IconOff:
		return []string{"⏻"}
	case status.IconInProgress:
		return []string{"◴", "◷", "◶", "◵"}
	case status.IconSyncAlt:
		return []string{"⇄", "⇅"}
	case status.IconPaused:
		return []string{"⏸"}
	case status.IconRedExclamationCircle:
		return []string{"❢"}
	default:
		return []string{"?"}
	}
}

func glyph(icon status.Icon) string {
	return glyphFrames(icon)[0]
}
