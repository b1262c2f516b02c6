// linkwatchctl drives a running linkwatch agent over its admin API.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	apiBase string
	token   string
)

var rootCmd = &cobra.Command{
	Use:   "linkwatchctl",
	Short: "Control a running linkwatch agent",
	Long: `linkwatchctl talks to the admin API of a running linkwatch agent:
trigger a check cycle, send a test notification, or dump the status.`,
	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Trigger one check cycle and print the summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return post("/api/check")
	},
}

var notifyTestCmd = &cobra.Command{
	Use:   "notify-test",
	Short: "Send a test notification through the configured webhook",
	RunE: func(cmd *cobra.Command, args []string) error {
		return post("/api/notify/test")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print agent health and the monitored resource list",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client().Get(apiBase + "/")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		return printResponse(resp)
	},
}

func client() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}

func post(path string) error {
	req, err := http.NewRequest(http.MethodPost, apiBase+path, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	fmt.Println(string(body))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("agent returned HTTP %d", resp.StatusCode)
	}
	return nil
}

func init() {
	defaultAPI := os.Getenv("LINKWATCH_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", defaultAPI, "agent API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("LINKWATCH_TOKEN"), "access token for admin endpoints")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(notifyTestCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
