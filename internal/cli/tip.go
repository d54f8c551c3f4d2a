package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// TipResult mirrors the valuable-tip response payload
type TipResult struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Games           string    `json:"games"`
	TotalOdds       string    `json:"total_odds"`
	StakeSuggestion string    `json:"stake_suggestion"`
	CreatedAt       time.Time `json:"created_at"`
}

func newTipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Valuable tip commands",
	}

	cmd.AddCommand(newTipListCmd())
	cmd.AddCommand(newTipCreateCmd())
	cmd.AddCommand(newTipUpdateCmd())
	cmd.AddCommand(newTipDeleteCmd())

	return cmd
}

func newTipListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List valuable tips",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/tips"
			if all {
				path = "/api/v1/admin/tips"
			}

			var result []TipResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every tip via the admin endpoint")

	return cmd
}

func newTipCreateCmd() *cobra.Command {
	var title, description, games, totalOdds, stake string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new valuable tip",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"title":            title,
				"description":      description,
				"games":            games,
				"total_odds":       totalOdds,
				"stake_suggestion": stake,
			}
			var result TipResult

			if err := client.Post("/api/v1/admin/tips", req, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Tip title (required)")
	cmd.Flags().StringVar(&description, "desc", "", "Tip description")
	cmd.Flags().StringVar(&games, "games", "", "Games covered by the tip")
	cmd.Flags().StringVar(&totalOdds, "odds", "", "Combined odds")
	cmd.Flags().StringVar(&stake, "stake", "", "Suggested stake")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("games")

	return cmd
}

func newTipUpdateCmd() *cobra.Command {
	var title, description, games, totalOdds, stake string

	cmd := &cobra.Command{
		Use:   "update <tip-id>",
		Short: "Update a tip; only the provided flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("title") {
				req["title"] = title
			}
			if cmd.Flags().Changed("desc") {
				req["description"] = description
			}
			if cmd.Flags().Changed("games") {
				req["games"] = games
			}
			if cmd.Flags().Changed("odds") {
				req["total_odds"] = totalOdds
			}
			if cmd.Flags().Changed("stake") {
				req["stake_suggestion"] = stake
			}

			var result TipResult
			path := fmt.Sprintf("/api/v1/admin/tips/%s", args[0])
			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Tip title")
	cmd.Flags().StringVar(&description, "desc", "", "Tip description")
	cmd.Flags().StringVar(&games, "games", "", "Games covered by the tip")
	cmd.Flags().StringVar(&totalOdds, "odds", "", "Combined odds")
	cmd.Flags().StringVar(&stake, "stake", "", "Suggested stake")

	return cmd
}

func newTipDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <tip-id>",
		Short: "Delete a tip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/admin/tips/%s", args[0])
			if err := client.Delete(path, nil); err != nil {
				return err
			}

			fmt.Println("deleted")
			return nil
		},
	}
}
