package domain

// Options tune a single composition.
type Options struct {
	// Enhanced allows a bonus sentence to be appended.
	Enhanced bool `json:"enhanced"`
	// Count drives periodic quote inclusion (every count divisible by 3).
	Count int `json:"count"`
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() Options {
	return Options{Enhanced: true, Count: 0}
}
