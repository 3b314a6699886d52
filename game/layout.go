package game

import (
	"fmt"
	"sort"
	"strings"
)

// Layout is the static part of a maze: walls and starting positions. It is
// shared by every state of a game and never modified after parsing.
type Layout struct {
	Name        string
	Width       int
	Height      int
	text        string
	walls       Grid
	food        Grid
	capsules    []Position
	pacmanStart Position
	ghostStarts []Position
}

// ParseLayout reads a maze drawn with
//
//	% wall   . food   o capsule   P Pacman   G ghost
//
// The first line of text is the northern edge of the maze.
func ParseLayout(name, text string) (*Layout, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidLayout, name)
	}

	height := len(lines)
	width := len(lines[0])
	l := &Layout{
		Name:   name,
		Width:  width,
		Height: height,
		text:   strings.Join(lines, "\n"),
		walls:  NewGrid(width, height),
		food:   NewGrid(width, height),
	}

	pacmen := 0
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: %s row %d has width %d, expected %d", ErrInvalidLayout, name, row, len(line), width)
		}
		y := height - 1 - row
		for x, cell := range line {
			p := Position{X: x, Y: y}
			switch cell {
			case '%':
				l.walls.Set(p, true)
			case '.':
				l.food.Set(p, true)
			case 'o':
				l.capsules = append(l.capsules, p)
			case 'P':
				l.pacmanStart = p
				pacmen++
			case 'G':
				l.ghostStarts = append(l.ghostStarts, p)
			case ' ':
			default:
				return nil, fmt.Errorf("%w: %s has unknown cell %q at %v", ErrInvalidLayout, name, cell, p)
			}
		}
	}

	if pacmen != 1 {
		return nil, fmt.Errorf("%w: %s needs exactly one Pacman, found %d", ErrInvalidLayout, name, pacmen)
	}
	if len(l.ghostStarts) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one ghost", ErrInvalidLayout, name)
	}
	return l, nil
}

// Text returns the maze as parsed, starting positions included
func (l *Layout) Text() string {
	return l.text
}

// IsWall reports whether p is blocked; everything outside the maze is a wall
func (l *Layout) IsWall(p Position) bool {
	if !l.walls.Contains(p) {
		return true
	}
	return l.walls.At(p)
}

func (l *Layout) NumGhosts() int {
	return len(l.ghostStarts)
}

// LoadLayout returns one of the built-in mazes by name
func LoadLayout(name string) (*Layout, error) {
	text, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: no built-in layout named %q", ErrInvalidLayout, name)
	}
	return ParseLayout(name, text)
}

func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var layouts = map[string]string{
	"testClassic": `
%%%%%
% . %
%.G.%
% . %
%. .%
%   %
%  .%
%   %
%P .%
%%%%%
`,
	"smallClassic": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%
`,
	"trappedClassic": `
%%%%%%%%
%   P G%
%G%%%%%%
%....  %
%%%%%%%%
`,
	"minimaxClassic": `
%%%%%%%%%
%.P    G%
% %.%G%%%
%G    %%%
%%%%%%%%%
`,
}
