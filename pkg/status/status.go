// Package status holds the closed set of resource lifecycle phases shown on
// dashboards, and their icon and label bindings.
package status

// Status is a lifecycle phase of a pod or virtual machine.
type Status int

const (
	Unknown Status = iota
	Stopped
	Migrating
	Provisioning
	Starting
	Running
	Paused
	Stopping
	Terminating
	CrashLoopBackOff
	FailedUnschedulable
	ErrorUnschedulable
	ErrImagePull
	ImagePullBackOff
	ErrorPvcNotFound
	ErrorDataVolumeNotFound
	DataVolumeError
	WaitingForVolumeBinding
)

var names = [...]string{
	"Unknown", "Stopped", "Migrating", "Provisioning", "Starting", "Running", "Paused", "Stopping", "Terminating",
	"CrashLoopBackOff", "FailedUnschedulable", "ErrorUnschedulable", "ErrImagePull", "ImagePullBackOff",
	"ErrorPvcNotFound", "ErrorDataVolumeNotFound", "DataVolumeError", "WaitingForVolumeBinding",
}

var byName = func() map[string]Status {
	m := make(map[string]Status, len(names))
	for i, n := range names {
		m[n] = Status(i)
	}
	return m
}()

func (s Status) String() string {
	if s < 0 || int(s) >= len(names) {
		return names[Unknown]
	}
	return names[s]
}

// All returns every known status in declaration order, Unknown last.
func All() []Status {
	all := make([]Status, 0, len(names))
	for i := 1; i < len(names); i++ {
		all = append(all, Status(i))
	}
	return append(all, Unknown)
}

// Parse converts a raw status string. Matching is exact: different casing or
// surrounding whitespace yields Unknown.
func Parse(s string) Status {
	st, _ := ParseKnown(s)
	return st
}

// ParseKnown is like Parse but also reports whether s named a known status.
func ParseKnown(s string) (Status, bool) {
	st, ok := byName[s]
	if !ok {
		return Unknown, false
	}
	return st, true
}

// IsError reports whether s is one of the error conditions.
func (s Status) IsError() bool {
	switch s {
	case CrashLoopBackOff, FailedUnschedulable, ErrorUnschedulable, ErrImagePull,
		ImagePullBackOff, ErrorPvcNotFound, ErrorDataVolumeNotFound, DataVolumeError:
		return true
	default:
		return false
	}
}
