package errorutils

// Try panics on a non-nil error. Meant for main wiring, never for pipeline code.
func Try(err error) {
	if err != nil {
		panic(err)
	}
}

func Must[T any](v T, err error) T {
	Try(err)
	return v
}
