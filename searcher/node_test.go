package searcher

import (
	"pacman/game"
)

// treeNode is a hand-built game tree. Child i is reached by the i-th action of
// game.Directions followed by Stop.
type treeNode struct {
	value    float64
	win      bool
	lose     bool
	children []*treeNode
}

var treeActions = []game.Action{game.North, game.South, game.East, game.West, game.Stop}

func leaf(value float64) *treeNode {
	return &treeNode{value: value}
}

func branch(children ...*treeNode) *treeNode {
	return &treeNode{children: children}
}

// treeState walks a treeNode; agents take turns round robin
type treeState struct {
	node      *treeNode
	numAgents int
	calls     *int // LegalActions calls, shared by every successor
}

func newTreeState(root *treeNode, numAgents int) treeState {
	return treeState{node: root, numAgents: numAgents, calls: new(int)}
}

func (m treeState) LegalActions(agent int) []game.Action {
	*m.calls++
	return treeActions[:len(m.node.children)]
}

func (m treeState) Successor(agent int, action game.Action) (game.State, error) {
	for i, a := range treeActions[:len(m.node.children)] {
		if a == action {
			return treeState{node: m.node.children[i], numAgents: m.numAgents, calls: m.calls}, nil
		}
	}
	return nil, game.ErrInvalidAction
}

func (m treeState) NumAgents() int                  { return m.numAgents }
func (m treeState) IsWin() bool                     { return m.node.win }
func (m treeState) IsLose() bool                    { return m.node.lose }
func (m treeState) Score() float64                  { return m.node.value }
func (m treeState) PacmanPosition() game.Position   { return game.Position{} }
func (m treeState) GhostPositions() []game.Position { return nil }
func (m treeState) ScaredTimers() []int             { return nil }
func (m treeState) Food() game.Grid                 { return game.NewGrid(0, 0) }
func (m treeState) Capsules() []game.Position       { return nil }

// endlessState never ends; every agent always has the same number of moves.
// Its score is the number of moves played to reach it.
type endlessState struct {
	ply       int
	branching int
	numAgents int
}

func (m endlessState) LegalActions(agent int) []game.Action {
	return treeActions[:m.branching]
}

func (m endlessState) Successor(agent int, action game.Action) (game.State, error) {
	return endlessState{ply: m.ply + 1, branching: m.branching, numAgents: m.numAgents}, nil
}

func (m endlessState) NumAgents() int                  { return m.numAgents }
func (m endlessState) IsWin() bool                     { return false }
func (m endlessState) IsLose() bool                    { return false }
func (m endlessState) Score() float64                  { return float64(m.ply) }
func (m endlessState) PacmanPosition() game.Position   { return game.Position{} }
func (m endlessState) GhostPositions() []game.Position { return nil }
func (m endlessState) ScaredTimers() []int             { return nil }
func (m endlessState) Food() game.Grid                 { return game.NewGrid(0, 0) }
func (m endlessState) Capsules() []game.Position       { return nil }

// brokenState offers moves it then refuses to play
type brokenState struct {
	endlessState
}

func (m brokenState) Successor(agent int, action game.Action) (game.State, error) {
	return nil, game.ErrInvalidAction
}
