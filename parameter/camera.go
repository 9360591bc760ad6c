package parameter

// Camera tracking
const (
	// CameraPointerScale maps pointer X [-1,1] to the camera target X
	CameraPointerScale = 2.0

	// CameraLerpFactor is the per-tick approach rate toward the target
	CameraLerpFactor = 0.1
)
