// Command smithy-marshal marshals operation inputs against AWS service
// models, printing the request each protocol would send.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "smithy-marshal",
	Short: "Marshal AWS operation inputs for their service protocol",
	Long: `smithy-marshal loads an AWS service model and marshals an operation input
document the way the service's protocol requires: an ordered parameter list for
the Query and EC2 protocols, an XML body for REST-XML, and a binding table for
the JSON protocols.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	marshalCmd.Flags().StringVarP(&modelPath, "model", "m", "", "Service model document, JSON or YAML (required)")
	marshalCmd.Flags().StringVarP(&operationName, "operation", "o", "", "Operation to marshal (required)")
	marshalCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input document, JSON or YAML (default: empty input)")
	marshalCmd.MarkFlagRequired("model")
	marshalCmd.MarkFlagRequired("operation")

	errorCodeCmd.Flags().StringVarP(&errorProtocol, "protocol", "p", "query", "Protocol of the service that returned the error")

	rootCmd.AddCommand(marshalCmd)
	rootCmd.AddCommand(protocolsCmd)
	rootCmd.AddCommand(errorCodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
