package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/platformer/controller"
	"gopkg.in/yaml.v3"
)

// LoadSpec decodes filename on top of defaults, so omitted keys keep their
// default values.
func LoadSpec[T any](filename string, defaults T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return defaults, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec(filename, data, defaults)
}

// DecodeSpec is LoadSpec for bytes already in hand.
func DecodeSpec[T any](filename string, data []byte, defaults T) (T, error) {
	spec := defaults
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return defaults, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type HitZoneSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type PlayerSpec struct {
	Name string `yaml:"name"`

	Health                int `yaml:"health"`
	MeleeDamage           int `yaml:"melee_damage"`
	RangedDamage          int `yaml:"ranged_damage"`
	ImpactFrames          int `yaml:"impact_frames"`
	TimeBetweenShots      int `yaml:"time_between_shots"`
	InvulnerabilityFrames int `yaml:"invulnerability_frames"`

	WalkSpeed        float64 `yaml:"walk_speed"`
	WalkAcceleration float64 `yaml:"walk_acceleration"`

	JumpPower            float64 `yaml:"jump_power"`
	WallJumpPower        float64 `yaml:"wall_jump_power"`
	WallJumpPushBack     float64 `yaml:"wall_jump_push_back"`
	MaxFallSpeed         float64 `yaml:"max_fall_speed"`
	Gravity              float64 `yaml:"gravity"`
	JumpNotHeldModifier  float64 `yaml:"jump_not_held_modifier"`
	HalfGravityVelocity  float64 `yaml:"half_gravity_velocity"`
	MaxWallSlideVelocity float64 `yaml:"max_wall_slide_velocity"`

	NumDashes         int     `yaml:"num_dashes"`
	DashVelocity      float64 `yaml:"dash_velocity"`
	DashStartPause    int     `yaml:"dash_start_pause"`
	DashFrames        int     `yaml:"dash_frames"`
	TimeBetweenDashes int     `yaml:"time_between_dashes"`

	CoyoteTime         int     `yaml:"coyote_time"`
	InputBufferFrames  int     `yaml:"input_buffer_frames"`
	DistanceToWallJump float64 `yaml:"distance_to_wall_jump"`
	StickDeadZone      float64 `yaml:"stick_dead_zone"`
	GroundProbeDelay   int     `yaml:"ground_probe_delay"`
	ColliderOffset     float64 `yaml:"collider_offset"`

	Collider      ColliderSpec  `yaml:"collider"`
	MeleeLifetime time.Duration `yaml:"melee_lifetime"`
	HitZone       HitZoneSpec   `yaml:"hit_zone"`
	Color         YAMLColor     `yaml:"color"`
}

// DefaultPlayerSpec mirrors controller.DefaultConfig.
func DefaultPlayerSpec() PlayerSpec {
	c := controller.DefaultConfig()
	return PlayerSpec{
		Name:                  "player",
		Health:                c.Health,
		MeleeDamage:           c.MeleeDamage,
		RangedDamage:          c.RangedDamage,
		ImpactFrames:          c.ImpactFrames,
		TimeBetweenShots:      c.TimeBetweenShots,
		InvulnerabilityFrames: c.InvulnerabilityFrames,
		WalkSpeed:             c.WalkSpeed,
		WalkAcceleration:      c.WalkAcceleration,
		JumpPower:             c.JumpPower,
		WallJumpPower:         c.WallJumpPower,
		WallJumpPushBack:      c.WallJumpPushBack,
		MaxFallSpeed:          c.MaxFallSpeed,
		Gravity:               c.Gravity,
		JumpNotHeldModifier:   c.JumpNotHeldModifier,
		HalfGravityVelocity:   c.HalfGravityVelocity,
		MaxWallSlideVelocity:  c.MaxWallSlideVelocity,
		NumDashes:             c.NumDashes,
		DashVelocity:          c.DashVelocity,
		DashStartPause:        c.DashStartPause,
		DashFrames:            c.DashFrames,
		TimeBetweenDashes:     c.TimeBetweenDashes,
		CoyoteTime:            c.CoyoteTime,
		InputBufferFrames:     c.InputBufferFrames,
		DistanceToWallJump:    c.DistanceToWallJump,
		StickDeadZone:         c.StickDeadZone,
		GroundProbeDelay:      c.GroundProbeDelay,
		ColliderOffset:        c.ColliderOffset,
		Collider:              ColliderSpec{Width: c.ColliderWidth, Height: c.ColliderHeight},
		MeleeLifetime:         c.MeleeLifetime,
		HitZone:               HitZoneSpec{Width: 1.2, Height: 1.0, OffsetX: 0.9},
		Color:                 YAMLColor{Color: color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}},
	}
}

// ControllerConfig maps the player prefab onto the controller tuning.
func (s PlayerSpec) ControllerConfig() controller.Config {
	return controller.Config{
		Health:                s.Health,
		MeleeDamage:           s.MeleeDamage,
		RangedDamage:          s.RangedDamage,
		ImpactFrames:          s.ImpactFrames,
		TimeBetweenShots:      s.TimeBetweenShots,
		InvulnerabilityFrames: s.InvulnerabilityFrames,
		WalkSpeed:             s.WalkSpeed,
		WalkAcceleration:      s.WalkAcceleration,
		JumpPower:             s.JumpPower,
		WallJumpPower:         s.WallJumpPower,
		WallJumpPushBack:      s.WallJumpPushBack,
		MaxFallSpeed:          s.MaxFallSpeed,
		Gravity:               s.Gravity,
		JumpNotHeldModifier:   s.JumpNotHeldModifier,
		HalfGravityVelocity:   s.HalfGravityVelocity,
		MaxWallSlideVelocity:  s.MaxWallSlideVelocity,
		NumDashes:             s.NumDashes,
		DashVelocity:          s.DashVelocity,
		DashStartPause:        s.DashStartPause,
		DashFrames:            s.DashFrames,
		TimeBetweenDashes:     s.TimeBetweenDashes,
		CoyoteTime:            s.CoyoteTime,
		InputBufferFrames:     s.InputBufferFrames,
		DistanceToWallJump:    s.DistanceToWallJump,
		StickDeadZone:         s.StickDeadZone,
		GroundProbeDelay:      s.GroundProbeDelay,
		ColliderOffset:        s.ColliderOffset,
		ColliderWidth:         s.Collider.Width,
		ColliderHeight:        s.Collider.Height,
		MeleeLifetime:         s.MeleeLifetime,
	}
}

func LoadPlayerSpec() (PlayerSpec, error) {
	return LoadSpec(PlayerFile, DefaultPlayerSpec())
}

type EnemySpec struct {
	Name          string       `yaml:"name"`
	MoveSpeed     float64      `yaml:"move_speed"`
	Gravity       float64      `yaml:"gravity"`
	MaxFallSpeed  float64      `yaml:"max_fall_speed"`
	ContactDamage int          `yaml:"contact_damage"`
	Health        int          `yaml:"health"`
	Script        string       `yaml:"script"`
	Collider      ColliderSpec `yaml:"collider"`
	Color         YAMLColor    `yaml:"color"`
}

func DefaultEnemySpec() EnemySpec {
	return EnemySpec{
		Name:          "enemy",
		MoveSpeed:     2,
		Gravity:       1,
		MaxFallSpeed:  20,
		ContactDamage: 1,
		Health:        3,
		Script:        "patrol.tengo",
		Collider:      ColliderSpec{Width: 0.9, Height: 0.9},
		Color:         YAMLColor{Color: color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}},
	}
}

func LoadEnemySpec() (EnemySpec, error) {
	return LoadSpec(EnemyFile, DefaultEnemySpec())
}

type ProjectileSpec struct {
	Speed          float64      `yaml:"speed"`
	LifetimeFrames int          `yaml:"lifetime_frames"`
	Collider       ColliderSpec `yaml:"collider"`
	Color          YAMLColor    `yaml:"color"`
}

func DefaultProjectileSpec() ProjectileSpec {
	return ProjectileSpec{
		Speed:          20,
		LifetimeFrames: 120,
		Collider:       ColliderSpec{Width: 0.4, Height: 0.2},
		Color:          YAMLColor{Color: color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}},
	}
}

func LoadProjectileSpec() (ProjectileSpec, error) {
	return LoadSpec(ProjectileFile, DefaultProjectileSpec())
}

// ParticleSpec styles the short-lived effects spawned by the controller and
// by dying enemies.
type ParticleSpec struct {
	LifetimeFrames int                  `yaml:"lifetime_frames"`
	Size           float64              `yaml:"size"`
	Colors         map[string]YAMLColor `yaml:"colors"`
}

func DefaultParticleSpec() ParticleSpec {
	return ParticleSpec{LifetimeFrames: 60, Size: 0.5}
}

// ColorFor returns the configured colour of an effect kind name.
func (s ParticleSpec) ColorFor(kind string) color.RGBA {
	return s.Colors[kind].ToRGBA(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func LoadParticleSpec() (ParticleSpec, error) {
	return LoadSpec(ParticleFile, DefaultParticleSpec())
}

type BackgroundSpec struct {
	Visible bool      `yaml:"visible"`
	Color   YAMLColor `yaml:"color"`
}

func DefaultBackgroundSpec() BackgroundSpec {
	return BackgroundSpec{
		Visible: true,
		Color:   YAMLColor{Color: color.RGBA{R: 0x19, G: 0x19, B: 0x70, A: 0xff}},
	}
}

func LoadBackgroundSpec() (BackgroundSpec, error) {
	return LoadSpec(BackgroundFile, DefaultBackgroundSpec())
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	if len(s) == 6 {
		s += "ff"
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %s: %w", value.Value, err)
	}
	c.Color = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

// ToRGBA converts to color.RGBA, using fallback when unset.
func (c YAMLColor) ToRGBA(fallback color.RGBA) color.RGBA {
	if c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}
