package renderer

// The default vertical field of view in radians.
const DefaultFOV float32 = 1.05

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Vertical field of view in radians. Defaults to DefaultFOV when unset.
	FOV float32

	// Number of CPU tracers to attach. Defaults to the number of usable
	// cores when unset. The renderer never attaches more tracers than
	// there are frame rows.
	NumTracers int
}
