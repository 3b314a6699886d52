// meta/meta.go
package meta

// DefaultDepth is the number of full rounds searched before evaluating.
const DefaultDepth = 2

// DefaultLayout is the maze played when none is configured.
const DefaultLayout = "smallClassic"

// DefaultGames is the number of games played per experiment pairing.
const DefaultGames = 5

// MaxMoves caps the number of agent moves in one game.
const MaxMoves = 2000

// DefaultOutput is the directory experiment records are written under.
const DefaultOutput = "experiments"
