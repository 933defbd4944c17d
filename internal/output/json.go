// Package output writes finished game records.
package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/render"
)

// JSONGame represents a game record in JSON format.
type JSONGame struct {
	ID         string     `json:"id,omitempty"`
	White      string     `json:"white"`
	Black      string     `json:"black"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN,omitempty"`
	FinalFEN   string     `json:"finalFEN,omitempty"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Check      string `json:"check,omitempty"` // "check" or "checkmate"
}

// OutputGameJSON writes a single game record as indented JSON. When board
// is not nil its placement is reported as the final position.
func OutputGameJSON(w io.Writer, game *chess.Game, id string, board *chess.Board) error {
	jg := GameToJSON(game)
	jg.ID = id
	if board != nil {
		jg.FinalFEN = render.PlacementFEN(board)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(game *chess.Game) *JSONGame {
	jg := &JSONGame{
		White:      game.White,
		Black:      game.Black,
		Result:     game.Result,
		InitialFEN: game.StartFEN,
		PlyCount:   game.PlyCount(),
	}
	if jg.Result == "" {
		jg.Result = chess.ResultUnknown
	}
	jg.Moves = convertMoveList(game.Moves)
	return jg
}

// convertMoveList converts a move list to JSON format. Move numbers count
// full moves and are attached to White's half.
func convertMoveList(moves *chess.Move) []JSONMove {
	var result []JSONMove
	moveNum := 1
	for move := moves; move != nil; move = move.Next {
		jm := JSONMove{
			Color: colorName(move.Colour),
			From:  move.From.String(),
			To:    move.To.String(),
			Piece: pieceTypeName(move.Piece),
		}
		if move.Colour == chess.White {
			jm.MoveNumber = moveNum
		} else {
			moveNum++
		}
		if move.IsCapture() {
			jm.Captured = pieceTypeName(move.Captured)
		}
		switch move.CheckStatus {
		case chess.Check:
			jm.Check = "check"
		case chess.Checkmate:
			jm.Check = "checkmate"
		}
		result = append(result, jm)
	}
	return result
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
