// Package svgpath parses SVG path data into absolute drawing commands.
//
// The extraction pipeline carries path data verbatim and never needs its
// geometry; this package exists for consumers that do, like the preview
// rasterizer. It covers the command set shape assets are authored with
// (M, L, H, V, C, S, Q, T, Z, absolute and relative). Elliptical arcs are
// outside the asset grammar and are rejected.
package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/patternlab/shapegen"
)

var (
	// ErrBadData reports input that does not scan as SVG path data.
	ErrBadData = errors.New("svgpath: malformed path data")

	// ErrUnsupported reports a command outside the asset grammar.
	ErrUnsupported = errors.New("svgpath: unsupported command")
)

// Op is a drawing command opcode.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// String returns the SVG command letter for the opcode.
func (op Op) String() string {
	switch op {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case QuadTo:
		return "Q"
	case CubeTo:
		return "C"
	case Close:
		return "Z"
	}
	return "?"
}

// Command is one drawing command with absolute coordinates. End is the pen
// position after the command; QuadTo uses P1 as its control point, CubeTo
// uses P1 and P2. Close carries the subpath start point in End.
type Command struct {
	Op  Op
	P1  shapegen.Point
	P2  shapegen.Point
	End shapegen.Point
}

// cmdLens maps an uppercase command letter to the numbers it consumes.
var cmdLens = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
}

// Parse scans SVG path data into absolute drawing commands. Relative
// commands are resolved against the running pen position, shorthand curve
// commands (S, T) against the reflected previous control point, and repeated
// coordinate sets reuse the previous command per the SVG rules.
func Parse(data string) ([]Command, error) {
	path := []byte(data)
	i := skipCommaWhitespace(path)
	if len(path) <= i {
		return nil, nil
	}
	if path[i] == ',' || path[i] < 'A' {
		return nil, fmt.Errorf("%w: path should start with a command", ErrBadData)
	}

	var (
		cmds  []Command
		f     [6]float64
		pen   shapegen.Point // position after the previous command
		start shapegen.Point // start of the current subpath
		cCtrl shapegen.Point // last cubic control point, for S
		qCtrl shapegen.Point // last quadratic control point, for T
	)
	prevCmd := byte('z')
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !startsNumber(path[i]) {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		upper := cmd
		if 'a' <= upper && upper <= 'z' {
			upper -= 'a' - 'A'
		}
		if upper == 'A' {
			return nil, fmt.Errorf("%w: elliptical arc %q at position %d", ErrUnsupported, cmd, i)
		}
		count, known := cmdLens[upper]
		if !known {
			return nil, fmt.Errorf("%w: unknown command %q at position %d", ErrBadData, cmd, i)
		}

		for j := 0; j < count; j++ {
			num, width := strconv.ParseFloat(path[i:])
			if width == 0 {
				if repeat && j == 0 && i < len(path) {
					return nil, fmt.Errorf("%w: unknown command %q at position %d", ErrBadData, path[i], i+1)
				}
				return nil, fmt.Errorf("%w: %d numbers should follow command %q at position %d", ErrBadData, count, cmd, i+1)
			}
			f[j] = num
			i += width
			i += skipCommaWhitespace(path[i:])
		}

		end := pen
		switch cmd {
		case 'M', 'm':
			end = shapegen.Pt(f[0], f[1])
			if cmd == 'm' {
				end = end.Add(pen)
				cmd = 'l'
			} else {
				cmd = 'L'
			}
			cmds = append(cmds, Command{Op: MoveTo, End: end})
			start = end
		case 'Z', 'z':
			end = start
			cmds = append(cmds, Command{Op: Close, End: end})
		case 'L', 'l':
			end = shapegen.Pt(f[0], f[1])
			if cmd == 'l' {
				end = end.Add(pen)
			}
			cmds = append(cmds, Command{Op: LineTo, End: end})
		case 'H', 'h':
			end = shapegen.Pt(f[0], pen.Y)
			if cmd == 'h' {
				end.X += pen.X
			}
			cmds = append(cmds, Command{Op: LineTo, End: end})
		case 'V', 'v':
			end = shapegen.Pt(pen.X, f[0])
			if cmd == 'v' {
				end.Y += pen.Y
			}
			cmds = append(cmds, Command{Op: LineTo, End: end})
		case 'C', 'c':
			cp1 := shapegen.Pt(f[0], f[1])
			cp2 := shapegen.Pt(f[2], f[3])
			end = shapegen.Pt(f[4], f[5])
			if cmd == 'c' {
				cp1 = cp1.Add(pen)
				cp2 = cp2.Add(pen)
				end = end.Add(pen)
			}
			cmds = append(cmds, Command{Op: CubeTo, P1: cp1, P2: cp2, End: end})
			cCtrl = cp2
		case 'S', 's':
			cp1 := pen
			cp2 := shapegen.Pt(f[0], f[1])
			end = shapegen.Pt(f[2], f[3])
			if cmd == 's' {
				cp2 = cp2.Add(pen)
				end = end.Add(pen)
			}
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = pen.Mul(2).Sub(cCtrl)
			}
			cmds = append(cmds, Command{Op: CubeTo, P1: cp1, P2: cp2, End: end})
			cCtrl = cp2
		case 'Q', 'q':
			cp := shapegen.Pt(f[0], f[1])
			end = shapegen.Pt(f[2], f[3])
			if cmd == 'q' {
				cp = cp.Add(pen)
				end = end.Add(pen)
			}
			cmds = append(cmds, Command{Op: QuadTo, P1: cp, End: end})
			qCtrl = cp
		case 'T', 't':
			cp := pen
			end = shapegen.Pt(f[0], f[1])
			if cmd == 't' {
				end = end.Add(pen)
			}
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = pen.Mul(2).Sub(qCtrl)
			}
			cmds = append(cmds, Command{Op: QuadTo, P1: cp, End: end})
			qCtrl = cp
		}
		prevCmd = cmd
		pen = end
	}
	return cmds, nil
}

// ParsePoints scans an SVG polygon point list ("x1,y1 x2,y2 ...") into
// points. An odd number of coordinates is malformed.
func ParsePoints(points string) ([]shapegen.Point, error) {
	data := []byte(points)
	var pts []shapegen.Point
	i := skipCommaWhitespace(data)
	for i < len(data) {
		x, width := strconv.ParseFloat(data[i:])
		if width == 0 {
			return nil, fmt.Errorf("%w: number expected at position %d", ErrBadData, i+1)
		}
		i += width
		i += skipCommaWhitespace(data[i:])

		y, width := strconv.ParseFloat(data[i:])
		if width == 0 {
			return nil, fmt.Errorf("%w: odd coordinate count at position %d", ErrBadData, i+1)
		}
		i += width
		i += skipCommaWhitespace(data[i:])

		pts = append(pts, shapegen.Pt(x, y))
	}
	return pts, nil
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func startsNumber(b byte) bool {
	return '0' <= b && b <= '9' || b == '.' || b == '-' || b == '+'
}
