package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindings(t *testing.T) {
	tests := []struct {
		status string
		icon   Icon
		label  Label
	}{
		{"Stopped", IconOff, "Stopped"},
		{"Migrating", IconInProgress, "Migrating"},
		{"Provisioning", IconInProgress, LabelStarting},
		{"Starting", IconInProgress, LabelStarting},
		{"Running", IconSyncAlt, "Running"},
		{"Paused", IconPaused, "Paused"},
		{"Stopping", IconInProgress, "Stopping"},
		{"Terminating", IconInProgress, LabelDeleting},
		{"WaitingForVolumeBinding", IconInProgress, LabelStarting},
		{"Unknown", IconUnknown, LabelOther},
		{"CrashLoopBackOff", IconRedExclamationCircle, LabelError},
		{"FailedUnschedulable", IconRedExclamationCircle, LabelError},
		{"ErrorUnschedulable", IconRedExclamationCircle, LabelError},
		{"ErrImagePull", IconRedExclamationCircle, LabelError},
		{"ImagePullBackOff", IconRedExclamationCircle, LabelError},
		{"ErrorPvcNotFound", IconRedExclamationCircle, LabelError},
		{"ErrorDataVolumeNotFound", IconRedExclamationCircle, LabelError},
		{"DataVolumeError", IconRedExclamationCircle, LabelError},
	}
	require.Len(t, tests, len(All()), "every known status must have a case")

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.icon, IconFor(tt.status))
			assert.Equal(t, tt.label, LabelFor(tt.status))
		})
	}
}

func TestUnrecognized(t *testing.T) {
	for _, s := range []string{"Bogus", "", "running", " Running", "Running\n", "CRASHLOOPBACKOFF"} {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, Unknown, Parse(s))
			assert.Equal(t, IconUnknown, IconFor(s))
			assert.Equal(t, LabelOther, LabelFor(s))

			_, ok := ParseKnown(s)
			assert.False(t, ok)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, st := range All() {
		got, ok := ParseKnown(st.String())
		assert.True(t, ok, st.String())
		assert.Equal(t, st, got)
	}
}

func TestAllUnknownLast(t *testing.T) {
	all := All()
	assert.Equal(t, Stopped, all[0])
	assert.Equal(t, Unknown, all[len(all)-1])
}

func TestOutOfRangeString(t *testing.T) {
	assert.Equal(t, "Unknown", Status(-1).String())
	assert.Equal(t, "Unknown", Status(1000).String())
	assert.Equal(t, IconUnknown, Status(1000).Icon())
	assert.Equal(t, LabelOther, Status(1000).Label())
}

func TestErrorsAreDanger(t *testing.T) {
	for _, st := range All() {
		assert.Equal(t, st.IsError(), st.Icon().FixedDanger(), st.String())
		assert.Equal(t, st.IsError(), st.Label() == LabelError, st.String())
	}
}
