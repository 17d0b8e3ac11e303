package config

import "time"

// PhysicsConfig is the root config for physics.yaml.
// All rates are per tick; the simulation is coupled to the frame rate.
type PhysicsConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Physics    PhysicsSettings  `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Teleporter TeleporterConfig `yaml:"teleporter"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Camera     CameraConfig     `yaml:"camera"`
	UI         UIConfig         `yaml:"ui"`
	Session    SessionConfig    `yaml:"session"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity          float64 `yaml:"gravity"`
	LandingTolerance float64 `yaml:"landingTolerance"`
	SideThreshold    float64 `yaml:"sideThreshold"`
	GroundProbe      float64 `yaml:"groundProbe"`
	FallMargin       float64 `yaml:"fallMargin"` // below screen height before the player respawns
}

type PlayerConfig struct {
	Speed             float64 `yaml:"speed"`
	JumpPower         float64 `yaml:"jumpPower"`
	Friction          float64 `yaml:"friction"` // velX multiplier with no horizontal input
	InvulnerableTicks int     `yaml:"invulnerableTicks"`
}

type EnemyConfig struct {
	Lookahead   float64 `yaml:"lookahead"`
	ProbeWidth  float64 `yaml:"probeWidth"`
	ProbeHeight float64 `yaml:"probeHeight"`
	FallMargin  float64 `yaml:"fallMargin"`
	ResetY      float64 `yaml:"resetY"`
}

type PlatformConfig struct {
	FallAcceleration float64 `yaml:"fallAcceleration"`
}

type TeleporterConfig struct {
	Cooldown int `yaml:"cooldown"`
}

type ScoringConfig struct {
	CollectibleReward int `yaml:"collectibleReward"`
	LevelBonus        int `yaml:"levelBonus"`
}

type CameraConfig struct {
	Smoothing        float64 `yaml:"smoothing"`
	VisibilityMargin float64 `yaml:"visibilityMargin"`
}

type UIConfig struct {
	MessageDuration time.Duration `yaml:"messageDuration"`
}

type SessionConfig struct {
	MaxLevel int `yaml:"maxLevel"`
}

// WorldHeight returns the height used for out-of-bounds checks
func (c *PhysicsConfig) WorldHeight() float64 {
	return float64(c.Display.ScreenHeight)
}

// DefaultPhysicsConfig returns the tuning the game ships with
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  1000,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:          0.6,
			LandingTolerance: 5,
			SideThreshold:    10,
			GroundProbe:      1,
			FallMargin:       200,
		},
		Player: PlayerConfig{
			Speed:             6,
			JumpPower:         15,
			Friction:          0.8,
			InvulnerableTicks: 120,
		},
		Enemy: EnemyConfig{
			Lookahead:   10,
			ProbeWidth:  10,
			ProbeHeight: 20,
			FallMargin:  100,
			ResetY:      200,
		},
		Platforms:  PlatformConfig{FallAcceleration: 0.5},
		Teleporter: TeleporterConfig{Cooldown: 60},
		Scoring:    ScoringConfig{CollectibleReward: 150, LevelBonus: 500},
		Camera:     CameraConfig{Smoothing: 0.1, VisibilityMargin: 100},
		UI:         UIConfig{MessageDuration: 3 * time.Second},
		Session:    SessionConfig{MaxLevel: 5},
	}
}
