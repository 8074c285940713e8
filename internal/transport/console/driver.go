package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-minimax/internal/domain"
	"github.com/iamasit07/connect4-minimax/internal/service/game"
)

// ErrInputClosed is returned by Run when the input ends before the game does.
var ErrInputClosed = errors.New("input closed")

const prompt = "Enter column (0-6): "

// Driver plays one session over a line based text stream.
type Driver struct {
	session *game.GameSession
	in      io.Reader
	out     io.Writer
}

func NewDriver(session *game.GameSession, in io.Reader, out io.Writer) *Driver {
	return &Driver{session: session, in: in, out: out}
}

// Run alternates turns until the game ends, the input closes or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(d.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		current, status, winner := d.session.State()
		fmt.Fprint(d.out, RenderBoard(d.session.Board()))

		if status != domain.StatusActive {
			fmt.Fprintln(d.out, Announcement(status, winner))
			return nil
		}

		if current == domain.AI {
			col, _, err := d.session.PlayBotMove(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(d.out, "AI plays column %d\n", col)
			continue
		}

		if err := d.humanTurn(ctx, lines); err != nil {
			return err
		}
	}
}

// humanTurn prompts until one legal move has been applied.
func (d *Driver) humanTurn(ctx context.Context, lines <-chan string) error {
	for {
		fmt.Fprint(d.out, prompt)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(d.out)
				return ErrInputClosed
			}
			line = l
		}

		col, err := ParseColumn(line)
		if err != nil {
			fmt.Fprintf(d.out, "Invalid input %q: %v\n", strings.TrimSpace(line), err)
			continue
		}

		if _, err := d.session.HandleMove(col); err != nil {
			if errors.Is(err, domain.ErrInvalidMove) {
				fmt.Fprintf(d.out, "Column %d is full, pick another\n", col)
				continue
			}
			return err
		}
		return nil
	}
}

// ParseColumn validates a user supplied column number.
func ParseColumn(s string) (int, error) {
	col, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1, errors.New("not a number")
	}
	if col < 0 || col >= domain.Columns {
		return -1, domain.ErrColumnOutOfRange
	}
	return col, nil
}

// RenderBoard draws the grid with the top row first.
func RenderBoard(board domain.Board) string {
	var sb strings.Builder
	for r := domain.Rows - 1; r >= 0; r-- {
		sb.WriteString("|")
		for c := 0; c < domain.Columns; c++ {
			sb.WriteByte(' ')
			sb.WriteByte(cellSymbol(board[r][c]))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(" ")
	for c := 0; c < domain.Columns; c++ {
		sb.WriteString(" " + strconv.Itoa(c))
	}
	sb.WriteString("\n")
	return sb.String()
}

func cellSymbol(p domain.PlayerID) byte {
	switch p {
	case domain.Human:
		return 'X'
	case domain.AI:
		return 'O'
	}
	return '.'
}

func Announcement(status domain.GameStatus, winner domain.PlayerID) string {
	if status == domain.StatusDraw {
		return "DRAW!"
	}
	return winner.String() + " WINS!"
}
