package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/uptime-industries/bcm2835-hal/internal/agent"
	"github.com/uptime-industries/bcm2835-hal/pkg/bcm2835"
	"github.com/uptime-industries/bcm2835-hal/pkg/edgewatch"
)

const envPrefix = "BCMD"

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "unix:///tmp/bcmd.sock")
	v.SetDefault("metrics_addr", ":9667")
	v.SetDefault("debug", false)

	v.SetDefault("gpio_chip", edgewatch.DefaultChip)
	v.SetDefault("watch_pins", []int{})
	v.SetDefault("watch_debounce", time.Duration(0))

	v.SetDefault("status_led.enabled", false)
	v.SetDefault("status_led.pin", 0)
	v.SetDefault("status_led.pattern", "slow")

	v.SetDefault("hal.ranges_path", bcm2835.DeviceTreeRangesPath)
	v.SetDefault("hal.mem_path", bcm2835.MemDevicePath)
	v.SetDefault("hal.gpiomem_path", bcm2835.GPIOMemDevicePath)
	v.SetDefault("hal.access", string(bcm2835.AccessAuto))
	// a wedged peripheral must not block the daemon forever
	v.SetDefault("hal.transfer_timeout", 100*time.Millisecond)
}

// loadConfig reads the optional config file and BCMD_* environment overrides, e.g.
// BCMD_HAL_ACCESS=gpio or BCMD_WATCH_PINS=4,17
func loadConfig(path string) (agent.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("bcmd")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/bcmd")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return agent.Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg agent.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return agent.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
