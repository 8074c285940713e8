package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/iamasit07/connect4-minimax/internal/domain"
	"github.com/iamasit07/connect4-minimax/internal/service/bot"
	"github.com/iamasit07/connect4-minimax/internal/service/game"
)

type scriptedBot struct {
	columns []int
}

func (s *scriptedBot) BestMove(context.Context, *domain.Board) (bot.SearchResult, error) {
	if len(s.columns) == 0 {
		return bot.SearchResult{Column: bot.NoColumn}, nil
	}
	col := s.columns[0]
	s.columns = s.columns[1:]
	return bot.SearchResult{Column: col}, nil
}

func newDriver(t *testing.T, first domain.PlayerID, botCols []int, input string) (*Driver, *bytes.Buffer) {
	t.Helper()
	session, err := game.NewGameSession(first, &scriptedBot{columns: botCols})
	if err != nil {
		t.Fatalf("NewGameSession: %v", err)
	}
	var out bytes.Buffer
	return NewDriver(session, strings.NewReader(input), &out), &out
}

func TestRunHumanWins(t *testing.T) {
	d, out := newDriver(t, domain.Human, []int{6, 6, 6}, "abc\n9\n0\n0\n0\n0\n")

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		`Invalid input "abc"`,
		`Invalid input "9": column out of range`,
		"AI plays column 6",
		"PLAYER WINS!",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunAIWinsWhenMovingFirst(t *testing.T) {
	d, out := newDriver(t, domain.AI, []int{3, 3, 3, 3}, "0\n1\n2\n")

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "AI WINS!") {
		t.Fatalf("expected AI win:\n%s", out.String())
	}
}

func TestRunRejectsFullColumnThenStopsOnEOF(t *testing.T) {
	d, out := newDriver(t, domain.Human, []int{0, 0, 0}, "0\n0\n0\n0\n")

	err := d.Run(context.Background())
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if !strings.Contains(out.String(), "Column 0 is full") {
		t.Fatalf("expected full column message:\n%s", out.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	d, _ := newDriver(t, domain.Human, nil, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderBoardTopRowFirst(t *testing.T) {
	var b domain.Board
	b[0][0] = domain.Human
	b[1][0] = domain.AI
	b[5][6] = domain.Human

	lines := strings.Split(strings.TrimRight(RenderBoard(b), "\n"), "\n")
	if len(lines) != domain.Rows+1 {
		t.Fatalf("expected %d lines, got %d", domain.Rows+1, len(lines))
	}
	if lines[0] != "| . . . . . . X |" {
		t.Fatalf("unexpected top row %q", lines[0])
	}
	if lines[4] != "| O . . . . . . |" || lines[5] != "| X . . . . . . |" {
		t.Fatalf("unexpected bottom rows %q / %q", lines[4], lines[5])
	}
	if lines[6] != "  0 1 2 3 4 5 6" {
		t.Fatalf("unexpected column labels %q", lines[6])
	}
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{" 6 \r", 6, false},
		{"7", -1, true},
		{"-1", -1, true},
		{"three", -1, true},
		{"", -1, true},
	}
	for _, tc := range tests {
		got, err := ParseColumn(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("ParseColumn(%q) = %d, %v", tc.in, got, err)
		}
	}
}

func TestAnnouncement(t *testing.T) {
	if got := Announcement(domain.StatusDraw, domain.Empty); got != "DRAW!" {
		t.Fatalf("unexpected draw text %q", got)
	}
	if got := Announcement(domain.StatusWon, domain.AI); got != "AI WINS!" {
		t.Fatalf("unexpected win text %q", got)
	}
}
