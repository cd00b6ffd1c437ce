package parameter

// HTTP surface defaults
const (
	APIPort         = "3000"
	APIReadTimeout  = 10 // seconds
	APIWriteTimeout = 10 // seconds
	APIAppName      = "Floorplan Service"
)
