package status

import (
	corev1 "k8s.io/api/core/v1"
)

// FromPod derives the dashboard status of a pod from its deletion timestamp,
// container waiting reasons, scheduling condition and phase, in that order.
func FromPod(pod *corev1.Pod) Status {
	if pod == nil {
		return Unknown
	}
	if pod.DeletionTimestamp != nil {
		return Terminating
	}

	statuses := append(append([]corev1.ContainerStatus{}, pod.Status.InitContainerStatuses...), pod.Status.ContainerStatuses...)
	for _, cs := range statuses {
		if cs.State.Waiting == nil {
			continue
		}
		switch st := Parse(cs.State.Waiting.Reason); st {
		case CrashLoopBackOff, ImagePullBackOff, ErrImagePull:
			return st
		}
	}

	for _, cond := range pod.Status.Conditions {
		if cond.Type == corev1.PodScheduled && cond.Status == corev1.ConditionFalse && cond.Reason == corev1.PodReasonUnschedulable {
			return FailedUnschedulable
		}
	}

	switch pod.Status.Phase {
	case corev1.PodPending:
		return Starting
	case corev1.PodRunning:
		return Running
	case corev1.PodSucceeded, corev1.PodFailed:
		return Stopped
	default:
		return Unknown
	}
}
