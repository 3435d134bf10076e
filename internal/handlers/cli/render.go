package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/charmbracelet/lipgloss"
)

const rule = "----------------------------------"

// styles are bound to the table's output so colour is only used on terminals
type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	turn       lipgloss.Style
	errors     lipgloss.Style
	winners    lipgloss.Style
	commentary lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		header: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		turn: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		errors: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		winners: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		commentary: r.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0")).
			Italic(true),
	}
}

// renderIntro explains the game
func (t *Table) renderIntro() {
	fmt.Fprintln(t.out, t.styles.title.Render("Welcome to the game of Greed!"))
	fmt.Fprintln(t.out, "Greed is a press-your-luck dice rolling game with 2 or more players.")
	fmt.Fprintln(t.out, "In the game, each player rolls the dice and tries to earn as many points as possible from the result.")
	fmt.Fprintln(t.out, "The player with the most points wins the game!")
	fmt.Fprintln(t.out)
}

// renderTurn shows what a player rolled and what it was worth
func (t *Table) renderTurn(turn *models.Turn) {
	fmt.Fprintln(t.out, t.styles.turn.Render(
		fmt.Sprintf("%s has rolled the following dice values: %s for %d points (total %d)",
			turn.PlayerName, formatDice(turn.Dice), turn.Points, turn.Total)))
}

// renderLeaderboard prints one "rank. name (score)" line per player
func (t *Table) renderLeaderboard(standings []models.Standing) {
	fmt.Fprintln(t.out, t.styles.header.Render("LEADERBOARD"))
	fmt.Fprintln(t.out, rule)
	for _, standing := range standings {
		fmt.Fprintf(t.out, "%d. %s\n", standing.Rank, standing)
	}
}

// renderWinners prints the winner set comma separated
func (t *Table) renderWinners(winners []string) {
	fmt.Fprintln(t.out, t.styles.header.Render("THE WINNERS OF THIS GAME OF GREED ARE"))
	fmt.Fprintln(t.out, rule)
	fmt.Fprintln(t.out, t.styles.winners.Render(strings.Join(winners, ", ")))
}

// renderCommentary prints a flavour line under the action
func (t *Table) renderCommentary(message string) {
	fmt.Fprintln(t.out, t.styles.commentary.Render("  "+message))
}

// renderError shows a problem with the user's input
func (t *Table) renderError(message string) {
	fmt.Fprintln(t.out, t.styles.errors.Render(message))
}

// formatDice renders dice as "[1, 2, 3, 4, 5]"
func formatDice(faces []int) string {
	parts := make([]string, len(faces))
	for i, face := range faces {
		parts[i] = fmt.Sprint(face)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
