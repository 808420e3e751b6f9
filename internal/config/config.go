// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Lighting LightingConfig `yaml:"lighting"`
	Game     GameConfig     `yaml:"game"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LightingConfig selects the shader pipeline and describes the light.
type LightingConfig struct {
	LightKind     string      `yaml:"light_kind"`   // point, spot, directional
	ShadingKind   string      `yaml:"shading_kind"` // phong, oren_nayar, toon, toon_specular
	Roughness     float32     `yaml:"roughness"`
	Light         LightConfig `yaml:"light"`
	ConeWideDeg   float32     `yaml:"cone_wide_deg"`
	ConeNarrowDeg float32     `yaml:"cone_narrow_deg"`
}

// LightConfig is the light source. Position has no w; it follows the kind.
type LightConfig struct {
	Position      [3]float32 `yaml:"position"`
	Ambient       [4]float32 `yaml:"ambient"`
	Diffuse       [4]float32 `yaml:"diffuse"`
	Specular      [4]float32 `yaml:"specular"`
	Attenuation   [3]float32 `yaml:"attenuation"`
	SpotDirection [3]float32 `yaml:"spot_direction"`
	SpotCutoffDeg float32    `yaml:"spot_cutoff_deg"`
	SpotExponent  float32    `yaml:"spot_exponent"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	Targets          int     `yaml:"targets"`
	Border           int     `yaml:"border"`
	TurnPeriod       int     `yaml:"turn_period"`
	AirshipSpeed     float32 `yaml:"airship_speed"`
	AirshipHeight    float32 `yaml:"airship_height"`
	FallSpeed        float32 `yaml:"fall_speed"`
	ProjectileRadius float32 `yaml:"projectile_radius"`
	TargetRadius     float32 `yaml:"target_radius"`
	FollowHeight     float32 `yaml:"follow_height"`
	FollowDistance   float32 `yaml:"follow_distance"`
	Seed             int64   `yaml:"seed"` // 0 picks a time-based seed
	ActionCooldown   int     `yaml:"action_cooldown"`
	StartFrozen      bool    `yaml:"start_frozen"`
}

// DataConfig holds asset locations and the object table.
type DataConfig struct {
	Dir       string                  `yaml:"dir"`        // asset root, empty for builtins only
	ShaderDir string                  `yaml:"shader_dir"` // overrides the embedded shaders
	Objects   map[string]ObjectConfig `yaml:"objects"`
}

// ObjectConfig names the mesh and texture of one drawable object.
type ObjectConfig struct {
	Mesh    string `yaml:"mesh"` // OBJ path under Dir, or builtin:cube / builtin:plane
	Texture string `yaml:"texture"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Object names every scene must provide.
const (
	ObjectFloor      = "floor"
	ObjectTree       = "tree"
	ObjectAirship    = "airship"
	ObjectProjectile = "projectile"
	ObjectTarget     = "target"
)

// RequiredObjects lists the object names the game draws.
var RequiredObjects = []string{ObjectFloor, ObjectTree, ObjectAirship, ObjectProjectile, ObjectTarget}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         900,
			Height:        900,
			Fullscreen:    false,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Lighting: LightingConfig{
			LightKind:   "point",
			ShadingKind: "phong",
			Roughness:   0.6,
			Light: LightConfig{
				Position:      [3]float32{10, 10, 10},
				Ambient:       [4]float32{0.2, 0.2, 0.2, 1},
				Diffuse:       [4]float32{2, 2, 2, 2},
				Specular:      [4]float32{1, 1, 1, 1},
				Attenuation:   [3]float32{0.5, 0.001, 0.0001},
				SpotDirection: [3]float32{0, -1, 0},
				SpotCutoffDeg: 40,
				SpotExponent:  1,
			},
			ConeWideDeg:   40,
			ConeNarrowDeg: 20,
		},
		Game: GameConfig{
			Targets:          5,
			Border:           20,
			TurnPeriod:       650,
			AirshipSpeed:     0.1,
			AirshipHeight:    5,
			FallSpeed:        0.065,
			ProjectileRadius: 0.25,
			TargetRadius:     0.5,
			FollowHeight:     2,
			FollowDistance:   6,
			Seed:             0,
			ActionCooldown:   15,
			StartFrozen:      false,
		},
		Data: DataConfig{
			Dir:       "",
			ShaderDir: "",
			// With a data dir these can name real assets, e.g.
			// floor.obj + bus2.png and 12150_Christmas_Tree_V2_L2.obj + tree.jpg.
			Objects: map[string]ObjectConfig{
				ObjectFloor:      {Mesh: "builtin:plane"},
				ObjectTree:       {Mesh: "builtin:cube"},
				ObjectAirship:    {Mesh: "builtin:cube"},
				ObjectProjectile: {Mesh: "builtin:cube"},
				ObjectTarget:     {Mesh: "builtin:cube"},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
