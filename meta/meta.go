// meta/meta.go
package meta

// BOARD_SIZE defines the side length of the standard board.
const BOARD_SIZE = 6

// SEARCH_DEPTH defines the default number of plies searched by the alpha-beta agent.
const SEARCH_DEPTH = 4

// CORNER_BONUS defines the score added to corner moves by the heuristic agent.
const CORNER_BONUS = 100

// WORKERS defines the default number of games a tournament plays in parallel.
const WORKERS = 4

// GAMES defines the default number of games per matchup.
const GAMES = 10
