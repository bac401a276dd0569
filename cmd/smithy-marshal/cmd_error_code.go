package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/xml"
)

var errorProtocol string

// errorCodeCmd reads the error code out of an XML error response
var errorCodeCmd = &cobra.Command{
	Use:   "error-code [file]",
	Short: "Print the error code of an XML error response body",
	Long: `error-code reads an XML error response body from file, or stdin, and prints
its error code using the error unmarshaller of the given protocol.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runErrorCode,
}

func runErrorCode(cmd *cobra.Command, args []string) error {
	p, err := smithy.ParseProtocol(errorProtocol)
	if err != nil {
		return err
	}
	eu, err := smithy.ErrorUnmarshallerFor(p)
	if err != nil {
		return err
	}
	if eu == smithy.ErrorUnmarshallerNone {
		return fmt.Errorf("protocol %s does not use an XML error unmarshaller", p)
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	logger.Debug("Reading error response", zap.String("unmarshaller", eu.String()))

	code, err := xml.GetResponseErrorCode(r, eu)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}
