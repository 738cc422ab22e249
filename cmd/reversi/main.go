package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/muesli/termenv"

	"github.com/akarsh17/reversi/internal/config"
	"github.com/akarsh17/reversi/internal/domain"
	"github.com/akarsh17/reversi/internal/service/cleanup"
	"github.com/akarsh17/reversi/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	manager := session.NewManager()
	worker := cleanup.NewWorker(manager, cfg.CleanupInterval, cfg.SessionTTL)
	worker.Start()
	defer worker.Stop()

	if cfg.Autoplay {
		runAutoplay(manager, cfg)
		return
	}
	runInteractive(manager, cfg)
}

// runInteractive plays the human as Black against the bot.
func runInteractive(manager *session.Manager, cfg *config.Config) {
	gs := manager.Create(domain.Black, cfg.BotDifficulty, cfg.BotDelay)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		render(gs.Game, cfg.NoColor)
		if gs.Game.IsGameOver() {
			break
		}

		if gs.IsBotTurn() {
			if move, ok := gs.PlayBotMove(); ok {
				fmt.Printf("white plays %s\n", formatCoord(move))
			}
			continue
		}

		fmt.Print("black> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return
		}

		index, ok := parseCoord(line)
		if !ok {
			fmt.Println("enter a coordinate like d3 (or quit)")
			continue
		}
		applied, err := gs.HandleMove(index)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if !applied {
			fmt.Println("illegal move")
		}
	}

	printOutcome(gs.Game)
}

// runAutoplay drives both sides with the bot until the game ends.
func runAutoplay(manager *session.Manager, cfg *config.Config) {
	gs := manager.Create(domain.Empty, cfg.BotDifficulty, cfg.BotDelay)

	for !gs.Game.IsGameOver() {
		mover := gs.Game.CurrentPlayer()
		move, ok := gs.PlayBotMove()
		if !ok {
			break
		}
		fmt.Printf("%s plays %s\n", mover, formatCoord(move))
	}

	render(gs.Game, cfg.NoColor)
	printOutcome(gs.Game)
}

func render(g *domain.Game, noColor bool) {
	legal := map[int]bool{}
	if !g.IsGameOver() {
		for _, m := range g.LegalMoves() {
			legal[m] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < domain.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < domain.BoardSize; col++ {
			index := row*domain.BoardSize + col
			disk, _ := g.CellAt(index)
			sb.WriteString(cellGlyph(disk, legal[index], noColor))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "black %d, white %d\n", g.BlackCount(), g.WhiteCount())
	fmt.Print(sb.String())
}

func cellGlyph(disk domain.Disk, legal, noColor bool) string {
	switch {
	case disk == domain.Black:
		return "●"
	case disk == domain.White:
		return "○"
	case legal && noColor:
		return "+"
	case legal:
		return termenv.String("+").Foreground(termenv.ANSIGreen).String()
	case noColor:
		return "."
	default:
		return termenv.String(".").Faint().String()
	}
}

func printOutcome(g *domain.Game) {
	winner, ok := g.Winner()
	if !ok {
		fmt.Printf("game abandoned, %s to move\n", g.CurrentPlayer())
		return
	}
	if winner == domain.OutcomeDraw {
		fmt.Printf("draw, %d-%d\n", g.BlackCount(), g.WhiteCount())
		return
	}
	fmt.Printf("%s wins %d-%d\n", winner, g.BlackCount(), g.WhiteCount())
}

// parseCoord converts a coordinate like "d3" into a flat cell index.
func parseCoord(s string) (int, bool) {
	s = strings.ToLower(s)
	if len(s) != 2 {
		return 0, false
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if col < 0 || col >= domain.BoardSize || row < 0 || row >= domain.BoardSize {
		return 0, false
	}
	return row*domain.BoardSize + col, true
}

func formatCoord(index int) string {
	return fmt.Sprintf("%c%d", 'a'+domain.Col(index), domain.Row(index)+1)
}
