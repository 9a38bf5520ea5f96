package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfredhq/alfred/internal/assistant"
	"github.com/alfredhq/alfred/internal/infrastructure/llm"
	"github.com/alfredhq/alfred/internal/model"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send one message to the configured model and print the decoded reply",
	Long: `Runs a single assistant turn with an empty context and prints the reply
and action as JSON. Nothing is dispatched or stored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := llm.NewProvider(conf.Model)
		if err != nil {
			return err
		}

		a := assistant.New(provider, assistant.NewPromptBuilder(model.PredefinedCategories))
		reply := a.SendMessage(cmd.Context(), strings.Join(args, " "), assistant.Snapshot{})

		out, err := json.MarshalIndent(reply, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
