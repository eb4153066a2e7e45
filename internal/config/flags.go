package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagTickRate = flag.Int("tick-rate", 0, "Simulation tick rate in Hz")
	flagRole     = flag.String("role", "", "Local net role (authority, autonomous_proxy, simulated_proxy)")
	flagMaintain = flag.Bool("maintain-orientation", false, "Keep turning toward the last input direction")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTickRate > 0 {
		cfg.Simulation.TickRateHz = *flagTickRate
	}
	if *flagRole != "" {
		cfg.Simulation.LocalRole = *flagRole
	}
	if *flagMaintain {
		cfg.Movement.MaintainLastInputOrientation = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
