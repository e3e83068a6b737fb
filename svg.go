package bezpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToSVG serializes the path as SVG path data using relative commands
// and the shortest decimal representation that round-trips to five
// fractional digits, the same minimal-diff format the teacher's
// Elements() walk produced when it still fed debugging output.
func (p *Path) ToSVG() string {
	var b strings.Builder
	writePathSVG(&b, p)
	return b.String()
}

func writePathSVG(b *strings.Builder, p *Path) {
	if p.SegmentCount() == 0 {
		return
	}
	segs := p.Segments()
	fmt.Fprintf(b, "M%s,%s", formatSVGNumber(segs[0].Anchor.X), formatSVGNumber(segs[0].Anchor.Y))

	n := len(segs)
	last := n
	if !p.closed {
		last = n - 1
	}
	for i := 0; i < last; i++ {
		from := segs[i]
		to := segs[(i+1)%n]
		dx, dy := to.Anchor.X-from.Anchor.X, to.Anchor.Y-from.Anchor.Y
		if !from.HasHandleOut() && !to.HasHandleIn() {
			fmt.Fprintf(b, "l%s,%s", formatSVGNumber(dx), formatSVGNumber(dy))
			continue
		}
		h1, h2 := from.HandleOut, to.HandleIn
		fmt.Fprintf(b, "c%s,%s %s,%s %s,%s",
			formatSVGNumber(h1.X), formatSVGNumber(h1.Y),
			formatSVGNumber(dx+h2.X), formatSVGNumber(dy+h2.Y),
			formatSVGNumber(dx), formatSVGNumber(dy))
	}
	if p.closed {
		b.WriteString("z")
	}
}

// ToSVG serializes every child contour, space-separated, matching the
// " M..." subpath convention a CompoundPath of a shell and its holes
// produces under this package's S1-style golden scenarios.
func (cp *CompoundPath) ToSVG() string {
	parts := make([]string, 0, len(cp.children))
	for _, c := range cp.children {
		parts = append(parts, c.ToSVG())
	}
	return strings.Join(parts, " ")
}

// formatSVGNumber renders v with up to 5 fractional digits, stripping
// trailing zeros and a bare trailing decimal point, matching paper.js
// style minimal-digit SVG export.
func formatSVGNumber(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', 5, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// FromSVG parses SVG path data (M/L/C/Q/A/Z, absolute and relative,
// with implicit command repetition) into a PathItem: a single Path
// for one subpath, or a CompoundPath when the data contains more than
// one M/m command.
func FromSVG(data string) (PathItem, error) {
	toks, err := tokenizeSVGPath(data)
	if err != nil {
		return nil, newGeometryError("FromSVG", ErrInputInvalid, err.Error())
	}

	var paths []*Path
	var cur *Path
	var curPt, subpathStart Point
	var lastCmd byte

	i := 0
	for i < len(toks) {
		var cmd byte
		if toks[i].isN {
			// A bare coordinate group repeats the previous command
			// (moveto repeats as lineto, per SVG's path grammar).
			cmd = lastCmd
		} else {
			cmd = toks[i].cmd
			i++
		}
		switch cmd {
		case 'M', 'm':
			x, y, n := readSVGPoint(toks, i)
			i += n
			if cmd == 'm' && cur != nil {
				x, y = curPt.X+x, curPt.Y+y
			}
			cur = NewPath()
			cur.MoveTo(x, y)
			curPt = Point{X: x, Y: y}
			subpathStart = curPt
			paths = append(paths, cur)
			lastCmd = byteLower(cmd, 'l') // bare coordinates after M continue as lineto

		case 'L', 'l':
			x, y, n := readSVGPoint(toks, i)
			i += n
			if cmd == 'l' {
				x, y = curPt.X+x, curPt.Y+y
			}
			cur.LineTo(x, y)
			curPt = Point{X: x, Y: y}
			lastCmd = cmd

		case 'H', 'h':
			v, n := readSVGNumber(toks, i)
			i += n
			x := v
			if cmd == 'h' {
				x = curPt.X + v
			}
			cur.LineTo(x, curPt.Y)
			curPt.X = x
			lastCmd = cmd

		case 'V', 'v':
			v, n := readSVGNumber(toks, i)
			i += n
			y := v
			if cmd == 'v' {
				y = curPt.Y + v
			}
			cur.LineTo(curPt.X, y)
			curPt.Y = y
			lastCmd = cmd

		case 'C', 'c':
			pts, n := readSVGPoints(toks, i, 3)
			i += n
			if cmd == 'c' {
				for k := range pts {
					pts[k].X += curPt.X
					pts[k].Y += curPt.Y
				}
			}
			cur.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			curPt = pts[2]
			lastCmd = cmd

		case 'Q', 'q':
			pts, n := readSVGPoints(toks, i, 2)
			i += n
			if cmd == 'q' {
				for k := range pts {
					pts[k].X += curPt.X
					pts[k].Y += curPt.Y
				}
			}
			cur.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
			curPt = pts[1]
			lastCmd = cmd

		case 'A', 'a':
			args, n := readSVGNumbers(toks, i, 7)
			i += n
			end := Point{X: args[5], Y: args[6]}
			if cmd == 'a' {
				end = Point{X: curPt.X + args[5], Y: curPt.Y + args[6]}
			}
			appendArcAsCubics(cur, curPt, end, args[0], args[1], args[2], args[3] != 0, args[4] != 0)
			curPt = end
			lastCmd = cmd

		case 'Z', 'z':
			cur.Close()
			curPt = subpathStart
			lastCmd = cmd

		default:
			return nil, newGeometryError("FromSVG", ErrInputInvalid, fmt.Sprintf("unsupported command %q", cmd))
		}
	}

	if len(paths) == 0 {
		return nil, newGeometryError("FromSVG", ErrInputInvalid, "no subpaths found")
	}
	if len(paths) == 1 {
		return paths[0], nil
	}
	return NewCompoundPathFromPaths(paths...), nil
}

func byteLower(cmd byte, repeat byte) byte {
	if cmd >= 'a' {
		return repeat
	}
	return repeat - ('a' - 'A')
}

// svgToken is either a command letter (num == false) or a numeric
// argument belonging to the preceding command.
type svgToken struct {
	cmd byte
	num float64
	isN bool
}

func tokenizeSVGPath(data string) ([]svgToken, error) {
	var toks []svgToken
	i, n := 0, len(data)
	for i < n {
		c := data[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isSVGCommandLetter(c):
			toks = append(toks, svgToken{cmd: c})
			i++
		case c == '-' || c == '.' || (c >= '0' && c <= '9') || c == '+':
			j := i + 1
			for j < n && (data[j] == '.' || (data[j] >= '0' && data[j] <= '9') ||
				data[j] == 'e' || data[j] == 'E' ||
				((data[j] == '-' || data[j] == '+') && (data[j-1] == 'e' || data[j-1] == 'E'))) {
				j++
			}
			v, err := strconv.ParseFloat(data[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q: %w", data[i:j], err)
			}
			toks = append(toks, svgToken{num: v, isN: true})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q at %d", c, i)
		}
	}
	return toks, nil
}

func isSVGCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Q', 'q', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func readSVGNumber(toks []svgToken, i int) (float64, int) {
	if i < len(toks) && toks[i].isN {
		return toks[i].num, 1
	}
	return 0, 0
}

func readSVGPoint(toks []svgToken, i int) (float64, float64, int) {
	x, _ := readSVGNumber(toks, i)
	y, _ := readSVGNumber(toks, i+1)
	return x, y, 2
}

func readSVGNumbers(toks []svgToken, i, count int) ([]float64, int) {
	out := make([]float64, count)
	for k := 0; k < count; k++ {
		out[k], _ = readSVGNumber(toks, i+k)
	}
	return out, count
}

func readSVGPoints(toks []svgToken, i, count int) ([]Point, int) {
	pts := make([]Point, count)
	for k := 0; k < count; k++ {
		x, _ := readSVGNumber(toks, i+2*k)
		y, _ := readSVGNumber(toks, i+2*k+1)
		pts[k] = Point{X: x, Y: y}
	}
	return pts, count * 2
}

// appendArcAsCubics converts an SVG elliptical arc from start to end
// into one or more cubic Bezier segments appended to p, using the
// standard endpoint-to-center parameterization (SVG 1.1 appendix F.6)
// followed by the kappa-based cubic approximation per quarter-turn
// span.
func appendArcAsCubics(p *Path, start, end Point, rx, ry, rotationDeg float64, largeArc, sweep bool) {
	if rx == 0 || ry == 0 || start.IsClose(end, GeometricEpsilon) {
		p.LineTo(end.X, end.Y)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	phi := rotationDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2, dy2 := (start.X-end.X)/2, (start.Y-end.Y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx, ry = rx*scale, ry*scale
	}

	sign := -1.0
	if largeArc != sweep {
		sign = 1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den > 0 && num > 0 {
		coef = sign * math.Sqrt(num/den)
	}
	cxp := coef * (rx * y1p / ry)
	cyp := coef * (-ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(Clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	segCount := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if segCount < 1 {
		segCount = 1
	}
	step := dTheta / float64(segCount)
	kappa := 4.0 / 3.0 * math.Tan(step/4)

	t := theta1
	for s := 0; s < segCount; s++ {
		t2 := t + step
		p1 := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, t)
		p2 := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, t2)
		d1 := ellipseDeriv(rx, ry, cosPhi, sinPhi, t)
		d2 := ellipseDeriv(rx, ry, cosPhi, sinPhi, t2)

		c1 := Point{X: p1.X + kappa*d1.X, Y: p1.Y + kappa*d1.Y}
		c2 := Point{X: p2.X - kappa*d2.X, Y: p2.Y - kappa*d2.Y}
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
		t = t2
	}
}

func ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, theta float64) Point {
	x, y := rx*math.Cos(theta), ry*math.Sin(theta)
	return Point{X: cx + cosPhi*x - sinPhi*y, Y: cy + sinPhi*x + cosPhi*y}
}

func ellipseDeriv(rx, ry, cosPhi, sinPhi, theta float64) Point {
	x, y := -rx*math.Sin(theta), ry*math.Cos(theta)
	return Point{X: cosPhi*x - sinPhi*y, Y: sinPhi*x + cosPhi*y}
}
