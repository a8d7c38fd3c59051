package snake

import (
	"github.com/vovakirdan/qsnake/internal/agent"
)

// encodeState converts the board into the agent's 11-flag perception. It is
// a pure function of the current snake segments and food position.
//
// Danger flags test the cell one step away against the whole body and the
// grid bounds; the tail counts even though it moves away next tick. Food
// direction flags compare coordinates strictly, so an aligned axis leaves
// both of its flags false. The distance flags are strict thresholds on the
// Manhattan distance and are cumulative, not mutually exclusive.
func (g *Game) encodeState() agent.State {
	head := g.snake[0]

	s := agent.State{
		DangerLeft:  g.blocked(head.add(Point{X: -1})),
		DangerRight: g.blocked(head.add(Point{X: 1})),
		DangerUp:    g.blocked(head.add(Point{Y: -1})),
		DangerDown:  g.blocked(head.add(Point{Y: 1})),

		FoodRight: head.X < g.food.X,
		FoodLeft:  head.X > g.food.X,
		FoodBelow: head.Y < g.food.Y,
		FoodAbove: head.Y > g.food.Y,
	}

	dist := manhattan(head, g.food)
	s.FoodNear = dist < g.cfg.Distance.Near
	s.FoodMedium = dist < g.cfg.Distance.Medium
	s.FoodFar = dist < g.cfg.Distance.Far

	return s
}

// blocked reports whether stepping into a cell would collide with the grid
// bounds or any snake segment.
func (g *Game) blocked(p Point) bool {
	return g.outOfBounds(p) || g.isSnakeAt(p)
}
