package chess

import (
	"errors"
	"testing"

	pkgerrors "github.com/lgbarn/zonechess-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if got := b.Get(Sq(row, col)); got != nil {
				t.Errorf("Get(%v) = %v; want nil", Sq(row, col), got)
			}
		}
	}

	if got := b.Get(Sq(-1, 3)); got != nil {
		t.Errorf("Get(off board) = %v; want nil", got)
	}
	if !b.IsEmpty(Sq(8, 8)) {
		t.Error("IsEmpty(off board) = false; want true")
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewStandardBoard()

	tests := []struct {
		name   string
		square string
		kind   Kind
		colour Colour
	}{
		// White back rank
		{"white rook a1", "a1", Rook, White},
		{"white knight b1", "b1", Knight, White},
		{"white bishop c1", "c1", Bishop, White},
		{"white queen d1", "d1", Queen, White},
		{"white king e1", "e1", King, White},
		{"white bishop f1", "f1", Bishop, White},
		{"white knight g1", "g1", Knight, White},
		{"white rook h1", "h1", Rook, White},
		// Pawns
		{"white pawn a2", "a2", Pawn, White},
		{"white pawn h2", "h2", Pawn, White},
		{"black pawn a7", "a7", Pawn, Black},
		{"black pawn e7", "e7", Pawn, Black},
		// Black back rank
		{"black rook a8", "a8", Rook, Black},
		{"black queen d8", "d8", Queen, Black},
		{"black king e8", "e8", King, Black},
		{"black knight g8", "g8", Knight, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := ParseSquare(tt.square)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.square, err)
			}
			p := b.Get(sq)
			if p == nil {
				t.Fatalf("Get(%s) = nil; want %s %s", tt.square, tt.colour, tt.kind)
			}
			if p.Kind != tt.kind || p.Colour != tt.colour {
				t.Errorf("Get(%s) = %s %s; want %s %s", tt.square, p.Colour, p.Kind, tt.colour, tt.kind)
			}
			if p.Pos != sq {
				t.Errorf("Get(%s).Pos = %v; want %v", tt.square, p.Pos, sq)
			}
		})
	}

	t.Run("middle ranks empty", func(t *testing.T) {
		for row := 2; row < 6; row++ {
			for col := 0; col < BoardSize; col++ {
				if !b.IsEmpty(Sq(row, col)) {
					t.Errorf("IsEmpty(%v) = false; want true", Sq(row, col))
				}
			}
		}
	})

	t.Run("sixteen pieces per side", func(t *testing.T) {
		if n := len(b.Pieces(White)); n != 16 {
			t.Errorf("len(Pieces(White)) = %d; want 16", n)
		}
		if n := len(b.Pieces(Black)); n != 16 {
			t.Errorf("len(Pieces(Black)) = %d; want 16", n)
		}
	})

	if err := b.Verify(); err != nil {
		t.Errorf("Verify() = %v; want nil", err)
	}
}

func TestBoardMove(t *testing.T) {
	t.Run("quiet move", func(t *testing.T) {
		b := NewBoard()
		rook := NewPiece(Rook, White, Sq(7, 0))
		if err := b.Place(rook); err != nil {
			t.Fatal(err)
		}

		if captured := b.Move(Sq(7, 0), Sq(3, 0)); captured != nil {
			t.Errorf("Move() captured %v; want nil", captured)
		}
		if !b.IsEmpty(Sq(7, 0)) {
			t.Error("origin square still occupied after Move")
		}
		if b.Get(Sq(3, 0)) != rook {
			t.Error("destination square does not hold the moved rook")
		}
		if rook.Pos != Sq(3, 0) {
			t.Errorf("rook.Pos = %v; want %v", rook.Pos, Sq(3, 0))
		}
	})

	t.Run("capture returns victim", func(t *testing.T) {
		b := NewBoard()
		rook := NewPiece(Rook, White, Sq(7, 0))
		knight := NewPiece(Knight, Black, Sq(2, 0))
		for _, p := range []*Piece{rook, knight} {
			if err := b.Place(p); err != nil {
				t.Fatal(err)
			}
		}

		if captured := b.Move(Sq(7, 0), Sq(2, 0)); captured != knight {
			t.Errorf("Move() captured %v; want %v", captured, knight)
		}
		if b.Get(Sq(2, 0)) != rook {
			t.Error("destination square does not hold the capturing rook")
		}
		if len(b.Pieces(Black)) != 0 {
			t.Errorf("len(Pieces(Black)) = %d; want 0", len(b.Pieces(Black)))
		}
	})

	t.Run("empty origin is a no-op", func(t *testing.T) {
		b := NewBoard()
		if captured := b.Move(Sq(4, 4), Sq(3, 4)); captured != nil {
			t.Errorf("Move() captured %v; want nil", captured)
		}
	})
}

func TestBoardPlace_Occupied(t *testing.T) {
	b := NewBoard()
	if err := b.Place(NewPiece(Queen, White, Sq(4, 4))); err != nil {
		t.Fatal(err)
	}

	err := b.Place(NewPiece(Pawn, Black, Sq(4, 4)))
	if !errors.Is(err, pkgerrors.ErrInvariantViolation) {
		t.Errorf("Place(occupied) error = %v; want ErrInvariantViolation", err)
	}

	err = b.Place(NewPiece(Pawn, Black, Sq(9, 0)))
	if !errors.Is(err, pkgerrors.ErrInvariantViolation) {
		t.Errorf("Place(off board) error = %v; want ErrInvariantViolation", err)
	}
}

func TestBoardVerify(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *Board)
		wantErr bool
	}{
		{
			name: "two kings",
			setup: func(b *Board) {
				b.squares[0][4] = NewPiece(King, Black, Sq(0, 4))
				b.squares[7][4] = NewPiece(King, White, Sq(7, 4))
			},
		},
		{
			name: "missing black king",
			setup: func(b *Board) {
				b.squares[7][4] = NewPiece(King, White, Sq(7, 4))
			},
			wantErr: true,
		},
		{
			name: "extra white king",
			setup: func(b *Board) {
				b.squares[0][4] = NewPiece(King, Black, Sq(0, 4))
				b.squares[7][4] = NewPiece(King, White, Sq(7, 4))
				b.squares[5][5] = NewPiece(King, White, Sq(5, 5))
			},
			wantErr: true,
		},
		{
			name: "stale position",
			setup: func(b *Board) {
				b.squares[0][4] = NewPiece(King, Black, Sq(0, 4))
				b.squares[7][4] = NewPiece(King, White, Sq(7, 4))
				b.squares[3][3] = NewPiece(Rook, White, Sq(2, 2))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBoard()
			tt.setup(b)
			err := b.Verify()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Verify() error = %v; wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, pkgerrors.ErrInvariantViolation) {
				t.Errorf("Verify() error = %v; want ErrInvariantViolation", err)
			}
		})
	}
}

func TestPlayer(t *testing.T) {
	b := NewStandardBoard()
	white := NewPlayer("ned", White)
	white.AssignPieces(b)

	if len(white.Pieces) != 16 {
		t.Fatalf("len(Pieces) = %d; want 16", len(white.Pieces))
	}
	for _, p := range white.Pieces {
		if !white.Owns(p) {
			t.Errorf("Owns(%v) = false; want true", p)
		}
	}
	if white.Owns(b.Get(Sq(0, 0))) {
		t.Error("Owns(black rook) = true; want false")
	}
	if white.Owns(nil) {
		t.Error("Owns(nil) = true; want false")
	}

	victim := white.Pieces[3]
	if !white.Remove(victim) {
		t.Error("Remove(owned piece) = false; want true")
	}
	if white.Remove(victim) {
		t.Error("Remove(already removed) = true; want false")
	}
	if len(white.Pieces) != 15 {
		t.Errorf("len(Pieces) = %d; want 15", len(white.Pieces))
	}

	if got := white.String(); got != "ned" {
		t.Errorf("String() = %q; want %q", got, "ned")
	}
	if got := NewPlayer("", Black).String(); got != "Black" {
		t.Errorf("String() = %q; want %q", got, "Black")
	}
}

func TestPieceGlyph(t *testing.T) {
	tests := []struct {
		piece *Piece
		want  rune
	}{
		{NewPiece(Pawn, White, Sq(6, 0)), '♙'},
		{NewPiece(Pawn, Black, Sq(1, 0)), '♟'},
		{NewPiece(King, White, Sq(7, 4)), '♔'},
		{NewPiece(Knight, Black, Sq(0, 1)), '♞'},
	}

	for _, tt := range tests {
		if got := tt.piece.Glyph(); got != tt.want {
			t.Errorf("%v.Glyph() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}
