package core

// Command is the discrete paddle instruction derived from one input reading.
// The zero value is Hold.
type Command int

const (
	Hold      Command = iota // Keep the paddle where it is
	MoveLeft                 // Shift the paddle one cell toward x = 0
	MoveRight                // Shift the paddle one cell toward x = width-1
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case Hold:
		return "Hold"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	default:
		return "Unknown"
	}
}

// Player identifies one of the two sides of the track.
// Player1 defends row 0, Player2 defends the far row.
type Player int

const (
	Player1 Player = iota
	Player2
)

// Players lists both players in index order.
var Players = [2]Player{Player1, Player2}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Index returns the array index for per-player state.
func (p Player) Index() int {
	return int(p)
}

// Number returns the 1-based player number used in logs and storage.
func (p Player) Number() int {
	return int(p) + 1
}

// String returns a short label ("P1", "P2").
func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Commands carries one command per player for a single tick.
type Commands [2]Command

// For returns the command for a player.
func (c Commands) For(p Player) Command {
	return c[p.Index()]
}
