package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// addChatCommands adds the AI assistant command.
func addChatCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newChatCmd(app))
}

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the AI assistant about your portfolio and the market",
		Long: `Ask the AI assistant a question. The assistant sees your portfolio
summary, holdings and current market movers as context.

With no message, starts an interactive session (type 'exit' to quit).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Assistant == nil {
				output.Warning("Chat is not configured. Set GROQ_API_KEY or add a key to credentials.toml.")
				return nil
			}

			if len(args) > 0 {
				reply := app.Assistant.GetResponse(cmd.Context(), strings.Join(args, " "))
				if output.IsJSON() {
					return output.JSON(map[string]string{"response": reply})
				}
				output.Println(reply)
				return nil
			}

			output.Info("LockedIn assistant. Type 'exit' to quit.")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				output.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}
				output.Println(app.Assistant.GetResponse(cmd.Context(), line))
				output.Println()
			}
			return scanner.Err()
		},
	}
}
