package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// AnalysisResult mirrors the analysis response payload
type AnalysisResult struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	MatchInfo        string    `json:"match_info"`
	BetType          string    `json:"bet_type"`
	Confidence       float64   `json:"confidence"`
	DetailedAnalysis string    `json:"detailed_analysis"`
	Odds             string    `json:"odds,omitempty"`
	MatchDate        time.Time `json:"match_date"`
	CreatedAt        time.Time `json:"created_at"`
	Outcome          string    `json:"outcome"`
}

// StatsResult mirrors the stats response payload
type StatsResult struct {
	Total    int     `json:"total_analyses"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	Pending  int     `json:"pending"`
	Accuracy float64 `json:"accuracy"`
}

func newAnalysisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Match analysis commands",
	}

	cmd.AddCommand(newAnalysisListCmd())
	cmd.AddCommand(newAnalysisCreateCmd())
	cmd.AddCommand(newAnalysisUpdateCmd())
	cmd.AddCommand(newAnalysisDeleteCmd())

	return cmd
}

func newAnalysisListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/analyses"
			if all {
				path = "/api/v1/admin/analyses"
			}

			var result []AnalysisResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every analysis via the admin endpoint")

	return cmd
}

func newAnalysisCreateCmd() *cobra.Command {
	var title, matchInfo, betType, detailed, odds, matchDate string
	var confidence float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(time.RFC3339, matchDate)
			if err != nil {
				return fmt.Errorf("invalid --date, want RFC3339: %w", err)
			}

			req := map[string]any{
				"title":             title,
				"match_info":        matchInfo,
				"bet_type":          betType,
				"confidence":        confidence,
				"detailed_analysis": detailed,
				"odds":              odds,
				"match_date":        date,
			}
			var result AnalysisResult

			if err := client.Post("/api/v1/admin/analyses", req, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Analysis title (required)")
	cmd.Flags().StringVar(&matchInfo, "match", "", "Match description, e.g. \"Flamengo vs Palmeiras\" (required)")
	cmd.Flags().StringVar(&betType, "bet", "", "Bet type: 1, X, 2, over, under, 1x, 2x (required)")
	cmd.Flags().Float64Var(&confidence, "confidence", 0, "Confidence percentage")
	cmd.Flags().StringVar(&detailed, "detail", "", "Detailed analysis text")
	cmd.Flags().StringVar(&odds, "odds", "", "Offered odds")
	cmd.Flags().StringVar(&matchDate, "date", "", "Match date in RFC3339 (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("match")
	_ = cmd.MarkFlagRequired("bet")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newAnalysisUpdateCmd() *cobra.Command {
	var title, matchInfo, betType, detailed, odds, outcome string
	var confidence float64

	cmd := &cobra.Command{
		Use:   "update <analysis-id>",
		Short: "Update an analysis; only the provided flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("title") {
				req["title"] = title
			}
			if cmd.Flags().Changed("match") {
				req["match_info"] = matchInfo
			}
			if cmd.Flags().Changed("bet") {
				req["bet_type"] = betType
			}
			if cmd.Flags().Changed("confidence") {
				req["confidence"] = confidence
			}
			if cmd.Flags().Changed("detail") {
				req["detailed_analysis"] = detailed
			}
			if cmd.Flags().Changed("odds") {
				req["odds"] = odds
			}
			if cmd.Flags().Changed("outcome") {
				req["outcome"] = outcome
			}

			var result AnalysisResult
			path := fmt.Sprintf("/api/v1/admin/analyses/%s", args[0])
			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Analysis title")
	cmd.Flags().StringVar(&matchInfo, "match", "", "Match description")
	cmd.Flags().StringVar(&betType, "bet", "", "Bet type")
	cmd.Flags().Float64Var(&confidence, "confidence", 0, "Confidence percentage")
	cmd.Flags().StringVar(&detailed, "detail", "", "Detailed analysis text")
	cmd.Flags().StringVar(&odds, "odds", "", "Offered odds")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Settled outcome: pending, won, lost")

	return cmd
}

func newAnalysisDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <analysis-id>",
		Short: "Delete an analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/admin/analyses/%s", args[0])
			if err := client.Delete(path, nil); err != nil {
				return err
			}

			fmt.Println("deleted")
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate analysis statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatsResult

			if err := client.Get("/api/v1/stats", &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}
}
