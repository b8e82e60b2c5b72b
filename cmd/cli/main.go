package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/koboapp/kobo/internal/finance"
)

var (
	baseURL string
	timeout time.Duration
)

// Swappable for tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "kobo-cli",
		Short: "Kobo CLI tool",
		Long:  `A command line interface for the Kobo personal finance API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Kobo API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(compoundCmd())
	rootCmd.AddCommand(ratesCmd())
	rootCmd.AddCommand(remindCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// compoundCmd runs a compound interest projection locally, no server
// round trip.
func compoundCmd() *cobra.Command {
	var (
		principal    float64
		contribution float64
		rate         float64
		years        int
	)

	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Project compound growth of a balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := finance.Project(finance.ProjectionInput{
				Principal:           principal,
				MonthlyContribution: contribution,
				AnnualRatePct:       rate,
				Years:               years,
			})
			if err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "Starting balance")
	cmd.Flags().Float64Var(&contribution, "contribution", 0, "Monthly contribution")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Annual interest rate in percent")
	cmd.Flags().IntVar(&years, "years", 10, "Projection horizon in years")

	return cmd
}

// ratesCmd fetches the current exchange rates from a running server.
func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show current exchange rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(baseURL + "/api/v1/currency/rates")
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(body), 200))
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(result)
			return nil
		},
	}
}

// remindCmd triggers the savings reminder job on a running server.
func remindCmd() *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Trigger the savings reminder job",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/cron/savings-reminder", nil)
			if err != nil {
				return err
			}
			req.Header.Set("Authorization", "Bearer "+secret)

			client := &http.Client{Timeout: timeout}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(body), 200))
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "Cron shared secret")

	return cmd
}

// hashPasswordCmd hashes a password for seeding users by hand.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password with bcrypt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			fmt.Println(string(hash))
			return nil
		},
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to encode output: %v\n", err)
		return
	}

	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}
