package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	smithy "github.com/aws/smithy-marshal"
)

// protocolsCmd prints the protocol registry
var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "List the supported protocols and their marshalling strategies",
	Args:  cobra.NoArgs,
	RunE:  runProtocols,
}

func runProtocols(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROTOCOL\tMARSHALLING\tERROR UNMARSHALLER\tCONTENT TYPE")

	for _, p := range smithy.Protocols() {
		kind, err := smithy.MarshallingKindFor(p)
		if err != nil {
			return err
		}
		eu, err := smithy.ErrorUnmarshallerFor(p)
		if err != nil {
			return err
		}
		ct, err := smithy.ContentType(p)
		if err != nil {
			return err
		}

		name := eu.String()
		if len(name) == 0 {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p, kind, name, ct)
	}
	return w.Flush()
}
