package testing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/luboganev/circular-progress-view/pkg/rendering"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `yaml:"op"`
	Params map[string]any `yaml:"params,omitempty"`
}

// String formats the op with its parameters in key order.
func (o DisplayOp) String() string {
	if len(o.Params) == 0 {
		return o.Op
	}
	parts := make([]string, 0, len(o.Params))
	for _, k := range sortedKeys(o.Params) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, o.Params[k]))
	}
	return o.Op + "(" + strings.Join(parts, " ") + ")"
}

// SerializingCanvas implements rendering.Canvas and records ops as DisplayOp.
type SerializingCanvas struct {
	ops  []DisplayOp
	size rendering.Size
}

// NewSerializingCanvas returns an empty canvas reporting size.
func NewSerializingCanvas(size rendering.Size) *SerializingCanvas {
	return &SerializingCanvas{size: size}
}

// Ops returns the operations recorded so far.
func (c *SerializingCanvas) Ops() []DisplayOp {
	return c.ops
}

func (c *SerializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *SerializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *SerializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *SerializingCanvas) Rotate(radians float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "rotate",
		Params: sortedMap("radians", round2(radians)),
	})
}

func (c *SerializingCanvas) Clear(color rendering.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *SerializingCanvas) DrawArc(oval rendering.Rect, startAngle, sweepAngle float64, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawArc",
		Params: sortedMap(
			"oval", serializeRect(oval),
			"start", round2(startAngle),
			"sweep", round2(sweepAngle),
			"paint", serializePaint(paint),
		),
	})
}

func (c *SerializingCanvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	commands := 0
	if path != nil {
		commands = len(path.Commands)
	}
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: sortedMap("commands", commands, "paint", serializePaint(paint)),
	})
}

func (c *SerializingCanvas) Size() rendering.Size {
	return c.size
}

// Capture runs draw against a fresh serializing canvas and returns the ops.
func Capture(size rendering.Size, draw func(rendering.Canvas)) []DisplayOp {
	canvas := NewSerializingCanvas(size)
	draw(canvas)
	return canvas.ops
}

// SerializeDisplayList replays a DisplayList through a serializing canvas.
func SerializeDisplayList(dl *rendering.DisplayList) []DisplayOp {
	canvas := NewSerializingCanvas(dl.Size())
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r rendering.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializePaint(p rendering.Paint) map[string]any {
	m := sortedMap(
		"style", p.Style.String(),
		"strokeWidth", round2(p.StrokeWidth),
		"cap", p.StrokeCap.String(),
	)
	if p.Gradient == nil {
		m["color"] = serializeColor(p.Color)
		return m
	}
	stops := p.Gradient.Stops()
	serialized := make([]map[string]any, len(stops))
	for i, s := range stops {
		serialized[i] = sortedMap("position", round4(s.Position), "color", serializeColor(s.Color))
	}
	m["gradient"] = "sweep"
	m["stops"] = serialized
	return m
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
