package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/floatkit/pkg/errors"
	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/placement"
)

// parseRect parses a rectangle from "x,y,width,height" form.
// Whitespace around components is ignored. Width and height must be
// non-negative.
func parseRect(s string) (geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidRect, "rect %q: want x,y,width,height", s)
	}

	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Rect{}, errors.Wrap(errors.ErrCodeInvalidRect, err, "rect %q: component %d", s, i+1)
		}
		vals[i] = v
	}

	r := geom.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if r.Width < 0 || r.Height < 0 {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidRect, "rect %q: negative size", s)
	}
	return r, nil
}

// parseSize parses a size from "WIDTHxHEIGHT" form (e.g., "120x40").
func parseSize(s string) (w, h float64, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidRect, "size %q: want WIDTHxHEIGHT", s)
	}
	w, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidRect, err, "size %q: width", s)
	}
	h, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidRect, err, "size %q: height", s)
	}
	if w < 0 || h < 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidRect, "size %q: negative size", s)
	}
	return w, h, nil
}

// parseMiddleware converts middleware names into the corresponding pipeline.
// Recognized names are "flip" and "shift"; order is preserved.
func parseMiddleware(names []string) ([]placement.Middleware, error) {
	mws := make([]placement.Middleware, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "flip":
			mws = append(mws, placement.Flip{})
		case "shift":
			mws = append(mws, placement.Shift{})
		case "":
			continue
		default:
			return nil, errors.New(errors.ErrCodeInvalidMiddleware, "unknown middleware %q (want flip or shift)", name)
		}
	}
	return mws, nil
}
