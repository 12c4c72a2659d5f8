package config

import "time"

// WatchConfig configures hot reload of the resource and knowledge files
// by the watch command.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// GetDebounce returns the debounce window as a duration.
func (w WatchConfig) GetDebounce() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d < 0 {
		return 500 * time.Millisecond
	}
	return d
}
