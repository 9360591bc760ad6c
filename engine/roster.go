package engine

import (
	"fmt"
	"strings"
)

// Direction names the side an enemy starts from
// Right-side enemies travel leftward and vice versa
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionRight {
		return "right"
	}
	return "left"
}

// ParseDirection accepts "left" or "right", case-insensitive
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	}
	return DirectionLeft, fmt.Errorf("invalid enemy direction %q", s)
}

// Size is the enemy block length
type Size int

const (
	SizeShort Size = iota
	SizeLong
)

func (s Size) String() string {
	if s == SizeLong {
		return "long"
	}
	return "short"
}

// ParseSize accepts "short" or "long", case-insensitive; empty means short
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "short":
		return SizeShort, nil
	case "long":
		return SizeLong, nil
	}
	return SizeShort, fmt.Errorf("invalid enemy size %q", s)
}

// EnemySpec is the immutable descriptor of one patrolling enemy
type EnemySpec struct {
	Direction Direction
	Size      Size
	Lane      float64 // Vertical offset in world units
	Speed     float64 // World units per tick, > 0
	Color     string
}

// Validate reports specs that cannot patrol
func (s EnemySpec) Validate() error {
	if s.Speed <= 0 {
		return fmt.Errorf("enemy speed must be positive, got %v", s.Speed)
	}
	if s.Color == "" {
		return fmt.Errorf("enemy color is empty")
	}
	return nil
}

// DefaultEnemyRoster returns a fresh copy of the fixed 13-enemy roster
func DefaultEnemyRoster() []EnemySpec {
	return []EnemySpec{
		{Direction: DirectionRight, Size: SizeLong, Lane: 0, Speed: 0.05, Color: "hotpink"},
		{Direction: DirectionRight, Size: SizeShort, Lane: 1, Speed: 0.01, Color: "hotpink"},
		{Direction: DirectionRight, Size: SizeLong, Lane: 3, Speed: 0.075, Color: "cyan"},
		{Direction: DirectionRight, Size: SizeShort, Lane: 4, Speed: 0.115, Color: "hotpink"},
		{Direction: DirectionRight, Size: SizeShort, Lane: 4.5, Speed: 0.155, Color: "orange"},
		{Direction: DirectionRight, Size: SizeShort, Lane: 3.5, Speed: 0.135, Color: "orange"},
		{Direction: DirectionLeft, Size: SizeLong, Lane: 1.5, Speed: 0.105, Color: "cyan"},
		{Direction: DirectionLeft, Size: SizeShort, Lane: 2.5, Speed: 0.085, Color: "hotpink"},
		{Direction: DirectionLeft, Size: SizeLong, Lane: 3.5, Speed: 0.02, Color: "cyan"},
		{Direction: DirectionLeft, Size: SizeShort, Lane: 5, Speed: 0.09, Color: "hotpink"},
		{Direction: DirectionLeft, Size: SizeShort, Lane: 1.25, Speed: 0.175, Color: "cyan"},
		{Direction: DirectionLeft, Size: SizeShort, Lane: 4, Speed: 0.145, Color: "orange"},
		{Direction: DirectionLeft, Size: SizeShort, Lane: 5, Speed: 0.165, Color: "orange"},
	}
}
