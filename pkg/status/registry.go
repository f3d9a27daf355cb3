package status

// Icon identifies a glyph from the icon set.
type Icon int

const (
	IconUnknown Icon = iota
	IconOff
	IconInProgress
	IconSyncAlt
	IconPaused
	IconRedExclamationCircle
)

func (i Icon) String() string {
	switch i {
	case IconOff:
		return "off"
	case IconInProgress:
		return "in-progress"
	case IconSyncAlt:
		return "sync-alt"
	case IconPaused:
		return "paused"
	case IconRedExclamationCircle:
		return "red-exclamation-circle"
	default:
		return "unknown"
	}
}

// FixedDanger reports whether the icon is always drawn in the danger color
// instead of inheriting the color of its container.
func (i Icon) FixedDanger() bool {
	return i == IconRedExclamationCircle
}

// Label is the human readable text shown next to, or as the title of, an icon.
type Label string

const (
	LabelStarting Label = "Starting"
	LabelError    Label = "Error"
	LabelOther    Label = "Other"
	LabelDeleting Label = "Deleting"
)

func (l Label) String() string { return string(l) }

// Icon returns the icon bound to s.
func (s Status) Icon() Icon {
	switch s {
	case Stopped:
		return IconOff
	case Migrating, Provisioning, Starting, Stopping, Terminating, WaitingForVolumeBinding:
		return IconInProgress
	case Running:
		return IconSyncAlt
	case Paused:
		return IconPaused
	case CrashLoopBackOff, FailedUnschedulable, ErrorUnschedulable, ErrImagePull,
		ImagePullBackOff, ErrorPvcNotFound, ErrorDataVolumeNotFound, DataVolumeError:
		return IconRedExclamationCircle
	default:
		return IconUnknown
	}
}

// Label returns the display label bound to s.
func (s Status) Label() Label {
	switch s {
	case Provisioning, Starting, WaitingForVolumeBinding:
		return LabelStarting
	case Terminating:
		return LabelDeleting
	case CrashLoopBackOff, FailedUnschedulable, ErrorUnschedulable, ErrImagePull,
		ImagePullBackOff, ErrorPvcNotFound, ErrorDataVolumeNotFound, DataVolumeError:
		return LabelError
	case Stopped, Migrating, Running, Paused, Stopping:
		return Label(s.String())
	default:
		return LabelOther
	}
}

// IconFor returns the icon for a raw status string, IconUnknown when the
// string is not a known status.
func IconFor(s string) Icon {
	return Parse(s).Icon()
}

// LabelFor returns the label for a raw status string, LabelOther when the
// string is not a known status.
func LabelFor(s string) Label {
	return Parse(s).Label()
}
