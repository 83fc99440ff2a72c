/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Dyvontrae/kingoftokyo/internal/data"
	"github.com/Dyvontrae/kingoftokyo/internal/engine"
	"github.com/Dyvontrae/kingoftokyo/internal/session"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a pass-and-play game at this terminal",
	Long: `Starts an interactive game. Player names come from --names, from a
--roster YAML file, or from prompts. Concession and Tokyo-entry questions are
asked on stdin; with --auto every question resolves to its default so a full
game can be simulated hands-off.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bufio.NewReader(os.Stdin)
		out := cmd.OutOrStdout()

		names, err := gatherNames(cmd, in, out)
		if err != nil {
			return err
		}

		var decider engine.DecisionProvider = &consoleDecider{in: in, out: out}
		if auto, _ := cmd.Flags().GetBool("auto"); auto {
			decider = engine.AutoDecider
		}

		sess, err := session.NewSession(names, decider)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\n--- Game Start with %d Players ---\n", len(sess.State().TurnOrder))
		runGame(sess, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringSlice("names", nil, "Comma-separated player names (2-6)")
	playCmd.Flags().StringP("roster", "r", "", "Path to a roster YAML file listing the players")
	playCmd.Flags().Bool("auto", false, "Answer every decision with its default (simulation mode)")
}

// gatherNames resolves the seat list: flag, roster file, viper-configured
// roster, then interactive prompts, in that order.
func gatherNames(cmd *cobra.Command, in *bufio.Reader, out io.Writer) ([]string, error) {
	if names, _ := cmd.Flags().GetStringSlice("names"); len(names) > 0 {
		return names, nil
	}

	rosterPath, _ := cmd.Flags().GetString("roster")
	if rosterPath == "" {
		rosterPath = viper.GetString("roster")
	}
	if rosterPath != "" {
		roster, err := data.LoadRoster(rosterPath)
		if err != nil {
			return nil, err
		}
		return roster.Names(), nil
	}

	fmt.Fprint(out, "How many players (2-6)? ")
	line, _ := in.ReadString('\n')
	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		count = engine.MinPlayers
	}
	// Invalid counts clamp into range rather than fail.
	if count < engine.MinPlayers {
		count = engine.MinPlayers
	}
	if count > engine.MaxPlayers {
		count = engine.MaxPlayers
	}

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		fmt.Fprintf(out, "Enter name for Player %d: ", i+1)
		line, _ := in.ReadString('\n')
		name := strings.TrimSpace(line)
		if name == "" {
			name = fmt.Sprintf("Kaiju %d", i+1)
		}
		names = append(names, name)
	}
	return names, nil
}

// runGame drives the turn loop: passive reward, victory check, roll, resolve,
// victory check. Turn order and counters live here, not in the core.
func runGame(sess *session.Session, out io.Writer) {
	state := sess.State()
	maxTurns := viper.GetInt("max_turns")

	turn := 1
	seat := 0
	var outcome *engine.Outcome

	for {
		seat %= len(state.TurnOrder)
		id := state.TurnOrder[seat]
		p := state.MustPlayer(id)
		if !p.Alive() {
			seat++
			continue
		}

		banner := fmt.Sprintf("Turn %d - %s (HP %d, VP %d)", turn, p.Name, p.HP, p.VP)
		fmt.Fprintf(out, "\n%s\n", bannerStyle.Render(banner))

		events, err := sess.PassiveReward()
		if err != nil {
			fmt.Fprintf(out, "fatal: %v\n", err)
			return
		}
		printEvents(out, events)

		if outcome = sess.CheckVictory(); outcome != nil {
			break
		}

		roll := sess.Roll()
		events, err = sess.ResolveTurn(id, roll)
		if err != nil {
			fmt.Fprintf(out, "fatal: %v\n", err)
			return
		}
		printEvents(out, events)

		if outcome = sess.CheckVictory(); outcome != nil {
			break
		}

		seat++
		turn++
		if turn > maxTurns {
			fmt.Fprintf(out, "\nGame stopped after %d turns for simulation limit.\n", maxTurns)
			break
		}
	}

	if outcome != nil {
		fmt.Fprintf(out, "\n%s\n", winStyle.Render("### GAME OVER! ###"))
		fmt.Fprintf(out, "%s\n", winStyle.Render(outcome.Message()))
	}

	fmt.Fprintln(out, "\n--- Final Scores ---")
	for _, id := range state.TurnOrder {
		p := state.MustPlayer(id)
		fmt.Fprintf(out, "- %s: %d VP, %d HP, %d Energy\n", p.Name, p.VP, p.HP, p.Energy)
	}
}

func printEvents(out io.Writer, events []engine.Event) {
	for _, evt := range events {
		fmt.Fprintf(out, "    %s\n", eventStyle.Render(evt.Message()))
	}
}

// consoleDecider puts the resolver's questions to the seated humans on stdin.
// Empty or unrecognized input resolves to the decision's default.
type consoleDecider struct {
	in  *bufio.Reader
	out io.Writer
}

func (c *consoleDecider) AskYesNo(d engine.Decision) bool {
	suffix := "(y/N)"
	if d.Default {
		suffix = "(Y/n)"
	}
	fmt.Fprintf(c.out, "    %s %s: ", d.Prompt(), suffix)

	line, err := c.in.ReadString('\n')
	if err != nil {
		return d.Default
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return d.Default
}
