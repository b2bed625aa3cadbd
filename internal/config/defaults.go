package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// setDefaults sets all default values before the file and env layers
// are applied.
func setDefaults(v *viper.Viper) {
	v.SetDefault("no_header", false)
	v.SetDefault("comments", false)
	v.SetDefault("workers", defaultWorkers())
	v.SetDefault("queue_scale", DefaultQueueScale)
	v.SetDefault("debug", false)
}

// defaultWorkers is the host's CPU count (spec §5's default W), never
// less than 1.
func defaultWorkers() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// DefaultQueueScale mirrors dispatch.DefaultQueueScale (spec §5's B=10).
const DefaultQueueScale = 10
