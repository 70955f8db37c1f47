package raytracer

var (
	RayLogging = false // set to true to record every ray cast by scene rendering
	// Compile time check that spheres are world objects
	_ Object = (*Sphere)(nil)
)
