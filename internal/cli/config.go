package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/floatkit/pkg/errors"
	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/placement"
)

// =============================================================================
// Profile - TOML Scenario Files
// =============================================================================

// Profile describes a placement scenario loaded from a TOML file.
// All fields are optional; command-line flags override profile values.
//
// Example:
//
//	placement = "top"
//	offset = 8.0
//	middleware = ["flip", "shift"]
//
//	[anchor]
//	x = 380.0
//	width = 40.0
//	height = 20.0
//
//	[floating]
//	width = 60.0
//	height = 40.0
//
//	[boundary]
//	width = 800.0
//	height = 600.0
type Profile struct {
	Placement  string       `toml:"placement"`
	Strategy   string       `toml:"strategy"`
	Offset     *float64     `toml:"offset"`
	Padding    *float64     `toml:"padding"`
	Middleware []string     `toml:"middleware"`
	Anchor     *ProfileRect `toml:"anchor"`
	Floating   *ProfileRect `toml:"floating"`
	Boundary   *ProfileRect `toml:"boundary"`
}

// ProfileRect is a rectangle as it appears in a profile file.
type ProfileRect struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Rect converts the profile rectangle to a geometry rectangle.
func (p *ProfileRect) Rect() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// LoadProfile reads and validates a TOML profile from path.
func LoadProfile(path string) (*Profile, error) {
	var p Profile
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "load profile %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidProfile,
			"profile %s: unknown key %q", path, undecoded[0].String())
	}
	if err := p.validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "profile %s", path)
	}
	return &p, nil
}

// parseProfile decodes a profile from TOML source text.
// Used by tests and anywhere the profile does not live on disk.
func parseProfile(data string) (*Profile, error) {
	var p Profile
	if _, err := toml.Decode(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "decode profile")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// validate checks that all profile values are individually well-formed.
func (p *Profile) validate() error {
	if p.Placement != "" {
		if _, err := placement.Parse(p.Placement); err != nil {
			return err
		}
	}
	if p.Strategy != "" {
		if _, err := placement.ParseStrategy(p.Strategy); err != nil {
			return err
		}
	}
	if _, err := parseMiddleware(p.Middleware); err != nil {
		return err
	}
	for _, r := range []*ProfileRect{p.Anchor, p.Floating, p.Boundary} {
		if r != nil && (r.Width < 0 || r.Height < 0) {
			return errors.New(errors.ErrCodeInvalidRect, "negative size %gx%g", r.Width, r.Height)
		}
	}
	return nil
}

// Options converts the profile into placement options, starting from base.
// Only fields present in the profile override base.
func (p *Profile) Options(base placement.Options) (placement.Options, error) {
	opts := base
	if p.Placement != "" {
		pl, err := placement.Parse(p.Placement)
		if err != nil {
			return placement.Options{}, err
		}
		opts.Placement = pl
	}
	if p.Strategy != "" {
		st, err := placement.ParseStrategy(p.Strategy)
		if err != nil {
			return placement.Options{}, err
		}
		opts.Strategy = st
	}
	if p.Offset != nil {
		opts.Offset = *p.Offset
	}
	if p.Padding != nil {
		opts.Padding = *p.Padding
	}
	if p.Middleware != nil {
		mws, err := parseMiddleware(p.Middleware)
		if err != nil {
			return placement.Options{}, err
		}
		opts.Middleware = mws
	}
	return opts, nil
}
