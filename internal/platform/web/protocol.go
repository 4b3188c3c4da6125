package web

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Client -> Server message types
const (
	MsgJoin    = "j" // {"t":"j","n":"PlayerName"}
	MsgIntent  = "i" // {"t":"i","d":"ArrowLeft"}
	MsgRestart = "r" // {"t":"r"}
)

// Server -> Client message types
const (
	MsgWelcome  = "w" // Sent once per run, before its first state
	MsgState    = "s" // Board after a tick
	MsgGameOver = "o" // Run ended
	MsgError    = "e" // Request could not be served
)

// ClientMessage is the generic inbound message. Only the fields relevant to
// Type are set.
type ClientMessage struct {
	Type string `json:"t"`
	Name string `json:"n,omitempty"`
	Dir  string `json:"d,omitempty"`
}

// GridDTO describes the board so the client can size its canvas.
// {"c":20,"w":25,"h":25}
type GridDTO struct {
	CellSize int `json:"c"`
	Width    int `json:"w"` // In cells
	Height   int `json:"h"` // In cells
}

// CellDTO is a cell in pixel units. {"x":40,"y":20}
type CellDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WelcomeMsg announces a new run.
// {"t":"w","i":"<run id>","v":"snake","g":{...}}
type WelcomeMsg struct {
	Type    string  `json:"t"`
	RunID   string  `json:"i"`
	Variant string  `json:"v"`
	Grid    GridDTO `json:"g"`
}

// StateMsg is the per-tick board update.
// {"t":"s","b":[cells],"f":{cell},"p":3,"n":"ann","k":42}
type StateMsg struct {
	Type   string    `json:"t"`
	Body   []CellDTO `json:"b"`
	Food   *CellDTO  `json:"f,omitempty"` // Absent while no food is placed
	Score  int       `json:"p"`
	Player string    `json:"n"`
	Tick   uint64    `json:"k"`
}

// GameOverMsg is sent when the engine ends the run.
// r = end reason (wall, self, grid_exhausted), p = final score
// {"t":"o","r":"wall","p":7}
type GameOverMsg struct {
	Type   string `json:"t"`
	Reason string `json:"r"`
	Score  int    `json:"p"`
}

// ErrorMsg reports a rejected request. {"t":"e","m":"..."}
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// NewWelcomeMsg builds the welcome for a run on the given board.
func NewWelcomeMsg(runID, variant string, b core.Bounds) WelcomeMsg {
	return WelcomeMsg{
		Type:    MsgWelcome,
		RunID:   runID,
		Variant: variant,
		Grid: GridDTO{
			CellSize: b.CellSize,
			Width:    b.WidthCells,
			Height:   b.HeightCells,
		},
	}
}

// NewStateMsg converts a snapshot to its wire form.
func NewStateMsg(snap core.Snapshot) StateMsg {
	body := make([]CellDTO, len(snap.Body))
	for i, c := range snap.Body {
		body[i] = CellDTO{X: c.X, Y: c.Y}
	}
	msg := StateMsg{
		Type:   MsgState,
		Body:   body,
		Score:  snap.Score,
		Player: snap.Player,
		Tick:   snap.Tick,
	}
	if snap.HasFood {
		msg.Food = &CellDTO{X: snap.Food.X, Y: snap.Food.Y}
	}
	return msg
}

// NewGameOverMsg builds the game over message for a final snapshot.
func NewGameOverMsg(snap core.Snapshot) GameOverMsg {
	return GameOverMsg{
		Type:   MsgGameOver,
		Reason: string(snap.Reason),
		Score:  snap.Score,
	}
}

func newErrorMsg(text string) ErrorMsg {
	return ErrorMsg{Type: MsgError, Message: text}
}
