package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recyclink",
		Short: "Online Kabaadiwala service with AI-powered scrap identification",
		Long: `RecycLink serves the scrap-collection website and its JSON API.

The site lets visitors identify scrap from a photo, estimate its resale
value, schedule a doorstep pickup, and chat with an assistant. Every AI
round trip goes through a configurable provider (Gemini, OpenAI, or a
deterministic mock when no API key is set).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())

	return cmd
}
