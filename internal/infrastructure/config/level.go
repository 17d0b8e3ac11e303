package config

// LevelConfig is the root config for levels/level<N>.yaml.
// Level data is read-only once loaded.
type LevelConfig struct {
	Number int    `yaml:"number"`
	Name   string `yaml:"name"`
	Trick  string `yaml:"trick,omitempty"` // message shown when the level starts

	Spawn PositionConfig `yaml:"spawn"`
	Goal  RectConfig     `yaml:"goal"`

	Platforms             []RectConfig                 `yaml:"platforms"`
	MovingPlatforms       []MovingPlatformConfig       `yaml:"movingPlatforms"`
	FallingPlatforms      []FallingPlatformConfig      `yaml:"fallingPlatforms"`
	DisappearingPlatforms []DisappearingPlatformConfig `yaml:"disappearingPlatforms"`

	Enemies      []EnemySpawnConfig  `yaml:"enemies"`
	Spikes       []SpikeConfig       `yaml:"spikes"`
	Chasers      []ChaserConfig      `yaml:"chasers"`
	Collectibles []CollectibleConfig `yaml:"collectibles"`
	Teleporters  []TeleporterSpawn   `yaml:"teleporters"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type MovingPlatformConfig struct {
	RectConfig `yaml:",inline"`
	MoveX      float64 `yaml:"moveX,omitempty"`
	MoveY      float64 `yaml:"moveY,omitempty"`
	Speed      float64 `yaml:"speed"`
}

type FallingPlatformConfig struct {
	RectConfig `yaml:",inline"`
	FallDelay  int `yaml:"fallDelay"`
}

type DisappearingPlatformConfig struct {
	RectConfig `yaml:",inline"`
	MaxTimer   int `yaml:"maxTimer"`
}

type EnemySpawnConfig struct {
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"`
	Patrol float64 `yaml:"patrol,omitempty"`
}

type SpikeConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

type ChaserConfig struct {
	RectConfig `yaml:",inline"`
	Type       string  `yaml:"type"`
	Speed      float64 `yaml:"speed"`
}

type CollectibleConfig struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type TeleporterSpawn struct {
	RectConfig `yaml:",inline"`
	Target     PositionConfig `yaml:"target"`
	Color      string         `yaml:"color"`
}
