package extra

// Ping is linked alongside sample to exercise multi package linkables.
func Ping() string {
	return "pong"
}
