package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec unmarshals a prefab YAML file into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type AnimationDefSpec struct {
	Name       string  `yaml:"name"`
	Row        int     `yaml:"row"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FrameTime  float64 `yaml:"frame_time"`
	Loop       bool    `yaml:"loop"`
}

type AnimationSpec struct {
	Sheet     string             `yaml:"sheet"`
	StageRows bool               `yaml:"stage_rows"`
	Defs      []AnimationDefSpec `yaml:"defs"`
}

type HitboxSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Damage  int     `yaml:"damage"`
	Anim    string  `yaml:"anim"`
	Frames  []int   `yaml:"frames"`
}

type HurtboxSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type PlayerSpec struct {
	Name           string  `yaml:"name"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpStrength   float64 `yaml:"jump_strength"`
	CoyoteTime     float64 `yaml:"coyote_time"`
	JumpBufferTime float64 `yaml:"jump_buffer_time"`
	DashSpeed      float64 `yaml:"dash_speed"`
	DashDuration   float64 `yaml:"dash_duration"`
	DashCooldown   float64 `yaml:"dash_cooldown"`
	Health         int     `yaml:"health"`
	InvulnWindow   float64 `yaml:"invuln_window"`
	BlockedDamage  int     `yaml:"blocked_damage"`

	Animation AnimationSpec `yaml:"animation"`
	Hitboxes  []HitboxSpec  `yaml:"hitboxes"`
	Hurtboxes []HurtboxSpec `yaml:"hurtboxes"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EnemySpec covers the drifting enemy kinds (ghost, crow, sword ghost).
// Health and damage are configuration inputs, not hardcoded constants; the
// same named enemy is tuned differently across levels.
type EnemySpec struct {
	Name          string  `yaml:"name"`
	Kind          string  `yaml:"kind"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpeedScale    float64 `yaml:"speed_scale"` // multiplies the difficulty enemy-speed knob
	Flying        bool    `yaml:"flying"`
	Bob           bool    `yaml:"bob"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	BobRate       float64 `yaml:"bob_rate"`
	Health        int     `yaml:"health"`
	ContactDamage int     `yaml:"contact_damage"`
	BlockedDamage int     `yaml:"blocked_damage"`
	HitPoints     int     `yaml:"hit_points"`
	KillBonus     int     `yaml:"kill_bonus"`
	InvulnWindow  float64 `yaml:"invuln_window"`

	Animation AnimationSpec `yaml:"animation"`
	Hurtboxes []HurtboxSpec `yaml:"hurtboxes"`
}

func LoadEnemySpec(filename string) (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BossSpec struct {
	Name           string  `yaml:"name"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         int     `yaml:"health"`
	MoveSpeed      float64 `yaml:"move_speed"`
	SwoopSpeed     float64 `yaml:"swoop_speed"`
	HoverY         float64 `yaml:"hover_y"`
	Phase1Interval float64 `yaml:"phase1_interval"`
	Phase2Interval float64 `yaml:"phase2_interval"`
	Script         string  `yaml:"script"`

	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileDamage int     `yaml:"projectile_damage"`
	VolleySize       int     `yaml:"volley_size"`
	SummonCount      int     `yaml:"summon_count"`

	ContactDamage int     `yaml:"contact_damage"`
	BlockedDamage int     `yaml:"blocked_damage"`
	HitPoints     int     `yaml:"hit_points"`
	KillBonus     int     `yaml:"kill_bonus"`
	InvulnWindow  float64 `yaml:"invuln_window"`

	Animation AnimationSpec `yaml:"animation"`
	Hurtboxes []HurtboxSpec `yaml:"hurtboxes"`
}

func LoadBossSpec() (*BossSpec, error) {
	spec, err := LoadSpec[BossSpec]("boss.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlatformSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Moving    bool    `yaml:"moving"`
	Amplitude float64 `yaml:"amplitude"`
	Speed     float64 `yaml:"speed"`
}

type SegmentSpec struct {
	Name string  `yaml:"name"`
	EndX float64 `yaml:"end_x"`
	Boss bool    `yaml:"boss"`
}

type PickupSpec struct {
	Kind     string  `yaml:"kind"` // "speed" or "damage"
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Duration float64 `yaml:"duration"`
}

type LevelSpec struct {
	Name         string  `yaml:"name"`
	Width        float64 `yaml:"width"`
	FloorY       float64 `yaml:"floor_y"`
	FixedScreenX float64 `yaml:"fixed_screen_x"`
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`

	Platforms []PlatformSpec `yaml:"platforms"`
	Segments  []SegmentSpec  `yaml:"segments"`
	Pickups   []PickupSpec   `yaml:"pickups"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
