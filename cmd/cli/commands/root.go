// Package commands implements the courses command line interface
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/courses/internal/constants"
	"github.com/celestiaorg/courses/pkg/api/v1/client"
	"github.com/celestiaorg/courses/pkg/api/v1/routes"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagTimeout       = "timeout"
	flagID            = "id"
	flagName          = "name"
	flagStudents      = "students"
	flagClearStudents = "clear-students"
	flagLimit         = "limit"
	flagOffset        = "offset"
	flagBirthDate     = "birth-date"
)

// apiClient is the shared API client instance, set by PersistentPreRunE
var apiClient client.Client

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	var (
		serverAddress string
		timeout       time.Duration
	)

	root := &cobra.Command{
		Use:   "courses-cli",
		Short: "Courses CLI - A command line interface for the courses API",
		Long: `Courses CLI manages courses and the students enrolled in them through the courses API.
The server address is read from --server-address, then COURSES_SERVER_ADDRESS, then the default.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flag > env var > default
			if !cmd.Flags().Changed(flagServerAddress) {
				if envAddr := os.Getenv(constants.EnvServerAddress); envAddr != "" {
					serverAddress = envAddr
				}
			}
			if serverAddress == "" {
				return fmt.Errorf("server address cannot be empty")
			}

			var err error
			apiClient, err = client.NewClient(&client.Options{
				BaseURL: serverAddress,
				Timeout: timeout,
			})
			return err
		},
	}

	root.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		fmt.Sprintf("Address of the courses API server (env: %s)", constants.EnvServerAddress))
	root.PersistentFlags().DurationVar(&timeout, flagTimeout, client.DefaultTimeout, "Request timeout")

	root.AddCommand(newCoursesCmd())
	root.AddCommand(newStudentsCmd())
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// printJSON pretty prints v on the command's output
func printJSON(cmd *cobra.Command, v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(prettyJSON))
	return err
}
