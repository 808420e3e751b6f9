package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagLight      = flag.String("light", "", "Light kind: point, spot, directional")
	flagShading    = flag.String("shading", "", "Shading kind: phong, oren_nayar, toon, toon_specular")
	flagFreeze     = flag.Bool("freeze", false, "Start with the simulation frozen")
	flagSeed       = flag.Int64("seed", 0, "Target placement seed (0 = time-based)")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config dir")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagLight != "" {
		cfg.Lighting.LightKind = *flagLight
	}
	if *flagShading != "" {
		cfg.Lighting.ShadingKind = *flagShading
	}
	if *flagFreeze {
		cfg.Game.StartFrozen = true
	}
	if *flagSeed != 0 {
		cfg.Game.Seed = *flagSeed
	}
}
