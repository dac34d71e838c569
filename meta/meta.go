// meta/meta.go
package meta

// BOARD_ROWS defines the default number of board rows.
const BOARD_ROWS = 10

// BOARD_COLS defines the default number of board columns.
const BOARD_COLS = 10

// STARTING_SHIPS defines the ship lengths each player must place.
var STARTING_SHIPS = []int{3, 4, 5}

// NIM_PILES defines the default pile sizes for nim.
var NIM_PILES = []int{3, 4, 5}

// NIM_PLAYERS defines the default number of nim players.
const NIM_PLAYERS = 2
