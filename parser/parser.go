// SPDX-License-Identifier: MIT

// Package parser decodes the JSON produced by the sketching front end into a
// geom.Graph.
//
// The accepted document is
//
//	{
//	  "canvasWidth": 600, "canvasHeight": 400, "descriptor": "...",
//	  "curves": [{
//	    "pts":    [{"x": 10, "y": 20}, ...],
//	    "interX": [knot, ...], "interY": [...], "maxima": [...], "minima": [...],
//	    "colorIdx": 0
//	  }]
//	}
//
// where a knot is {"x", "y", "symbol"?, "xSymbol"?, "ySymbol"?} and a symbol
// is {"x", "y", "text", "bindCurveIdx"?, "category"?, "catIndex"?}.
//
// Parse never panics on hostile input. Malformed JSON yields a *SyntaxError,
// schema violations a *ValidationError carrying the offending path.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cast"

	"github.com/katalvlaran/graphcheck/classify"
	"github.com/katalvlaran/graphcheck/geom"
)

// MaxCanvas is the largest accepted canvas width or height.
const MaxCanvas = 5000

// Parse decodes data into a Graph.
func Parse(data []byte) (*geom.Graph, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, syntaxError(err, dec.InputOffset(), len(data))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &SyntaxError{Offset: dec.InputOffset(), Err: errors.New("trailing data after top-level value")}
	}

	return decodeGraph(root)
}

func syntaxError(err error, offset int64, size int) error {
	var se *json.SyntaxError
	switch {
	case errors.As(err, &se):
		return &SyntaxError{Offset: se.Offset, Err: err}
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &SyntaxError{Offset: int64(size), Err: io.ErrUnexpectedEOF}
	default:
		return &SyntaxError{Offset: offset, Err: err}
	}
}

func decodeGraph(v any) (*geom.Graph, error) {
	root, err := object(v, "$")
	if err != nil {
		return nil, err
	}

	g := &geom.Graph{}
	if g.CanvasWidth, err = canvasSide(root, "canvasWidth"); err != nil {
		return nil, err
	}
	if g.CanvasHeight, err = canvasSide(root, "canvasHeight"); err != nil {
		return nil, err
	}
	if d, ok := root["descriptor"]; ok && d != nil {
		if g.Descriptor, err = str(d, "descriptor"); err != nil {
			return nil, err
		}
	}

	raw, err := requiredArray(root, "", "curves")
	if err != nil {
		return nil, err
	}
	g.Curves = make([]*geom.Curve, 0, len(raw))
	for i, rc := range raw {
		c, err := decodeCurve(rc, index("curves", i))
		if err != nil {
			return nil, err
		}
		g.Curves = append(g.Curves, c)
	}

	return g, nil
}

func canvasSide(root map[string]any, key string) (float64, error) {
	v, err := required(root, "", key)
	if err != nil {
		return 0, err
	}
	n, err := number(v, key)
	if err != nil {
		return 0, err
	}
	if !(n > 0) || n > MaxCanvas {
		return 0, outOfRange(key, "must be in (0, %d], got %v", MaxCanvas, n)
	}

	return n, nil
}

func decodeCurve(v any, path string) (*geom.Curve, error) {
	m, err := object(v, path)
	if err != nil {
		return nil, err
	}

	rawPts, err := requiredArray(m, path, "pts")
	if err != nil {
		return nil, err
	}
	if len(rawPts) == 0 {
		return nil, outOfRange(join(path, "pts"), "curve has no points")
	}
	pts := make([]geom.Point, len(rawPts))
	for i, rp := range rawPts {
		if pts[i], err = decodePoint(rp, index(join(path, "pts"), i)); err != nil {
			return nil, err
		}
	}

	var k geom.CurveKnots
	for _, f := range []struct {
		key string
		dst *[]geom.Knot
	}{
		{"interX", &k.InterX},
		{"interY", &k.InterY},
		{"maxima", &k.Maxima},
		{"minima", &k.Minima},
	} {
		if *f.dst, err = decodeKnots(m, path, f.key); err != nil {
			return nil, err
		}
	}

	color := 0
	if cv, ok := m["colorIdx"]; ok && cv != nil {
		p := join(path, "colorIdx")
		if color, err = integer(cv, p); err != nil {
			return nil, err
		}
		if !classify.Channel(color).Valid() {
			return nil, outOfRange(p, "must be in [0, %d), got %d", classify.NumChannels, color)
		}
	}

	return geom.NewCurve(pts, k, color)
}

func decodeKnots(m map[string]any, path, key string) ([]geom.Knot, error) {
	raw, err := requiredArray(m, path, key)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Knot, len(raw))
	for i, rk := range raw {
		if out[i], err = decodeKnot(rk, index(join(path, key), i)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func decodeKnot(v any, path string) (geom.Knot, error) {
	var k geom.Knot
	p, err := decodePoint(v, path)
	if err != nil {
		return k, err
	}
	k.Point = p

	m := v.(map[string]any) // checked by decodePoint
	for _, f := range []struct {
		key string
		dst **geom.Symbol
	}{
		{"symbol", &k.Symbol},
		{"xSymbol", &k.XSymbol},
		{"ySymbol", &k.YSymbol},
	} {
		sv, ok := m[f.key]
		if !ok || sv == nil {
			continue
		}
		if *f.dst, err = decodeSymbol(sv, join(path, f.key)); err != nil {
			return k, err
		}
	}

	return k, nil
}

func decodeSymbol(v any, path string) (*geom.Symbol, error) {
	p, err := decodePoint(v, path)
	if err != nil {
		return nil, err
	}
	m := v.(map[string]any)

	s := &geom.Symbol{Point: p}
	tv, err := required(m, path, "text")
	if err != nil {
		return nil, err
	}
	if s.Text, err = str(tv, join(path, "text")); err != nil {
		return nil, err
	}
	if s.Text == "" {
		return nil, outOfRange(join(path, "text"), "label text is empty")
	}

	if cv, ok := m["category"]; ok && cv != nil {
		if s.Category, err = str(cv, join(path, "category")); err != nil {
			return nil, err
		}
	}
	if s.BindCurveIdx, err = optionalInt(m, path, "bindCurveIdx"); err != nil {
		return nil, err
	}
	if s.CatIndex, err = optionalInt(m, path, "catIndex"); err != nil {
		return nil, err
	}

	return s, nil
}

func decodePoint(v any, path string) (geom.Point, error) {
	m, err := object(v, path)
	if err != nil {
		return geom.Point{}, err
	}
	var p geom.Point
	for _, f := range []struct {
		key string
		dst *float64
	}{{"x", &p.X}, {"y", &p.Y}} {
		raw, err := required(m, path, f.key)
		if err != nil {
			return p, err
		}
		if *f.dst, err = number(raw, join(path, f.key)); err != nil {
			return p, err
		}
	}

	return p, nil
}

func optionalInt(m map[string]any, path, key string) (*int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	n, err := integer(v, join(path, key))
	if err != nil {
		return nil, err
	}

	return &n, nil
}

////////////////////////////////////////////////////////////////////////////////
// Typed accessors. Each reports a ValidationError naming path.
////////////////////////////////////////////////////////////////////////////////

func required(m map[string]any, path, key string) (any, error) {
	v, ok := m[key]
	if !ok {
		return nil, &ValidationError{Kind: MissingKey, Path: join(path, key), Msg: "required key is missing"}
	}

	return v, nil
}

func requiredArray(m map[string]any, path, key string) ([]any, error) {
	v, err := required(m, path, key)
	if err != nil {
		return nil, err
	}
	a, ok := v.([]any)
	if !ok {
		return nil, wrongType(join(path, key), "array", v)
	}

	return a, nil
}

func object(v any, path string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, wrongType(path, "object", v)
	}

	return m, nil
}

func str(v any, path string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", wrongType(path, "string", v)
	}

	return s, nil
}

func number(v any, path string) (float64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, wrongType(path, "number", v)
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) {
		return 0, outOfRange(path, "number %s does not fit a float64", n)
	}

	return f, nil
}

func integer(v any, path string) (int, error) {
	f, err := number(v, path)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, wrongType(path, "integer", v)
	}
	if math.Abs(f) > math.MaxInt32 {
		return 0, outOfRange(path, "integer %v is too large", f)
	}

	return cast.ToIntE(f)
}

func wrongType(path, want string, got any) error {
	return &ValidationError{Kind: WrongType, Path: path, Msg: fmt.Sprintf("want %s, got %s", want, typeName(got))}
}

func outOfRange(path, format string, args ...any) error {
	return &ValidationError{Kind: OutOfRange, Path: path, Msg: fmt.Sprintf(format, args...)}
}

func typeName(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return "integer"
		}
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
