package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	smithy "github.com/aws/smithy-marshal"
	"github.com/aws/smithy-marshal/logging"
	"github.com/aws/smithy-marshal/marshal"
	"github.com/aws/smithy-marshal/model"
)

var (
	modelPath     string
	operationName string
	inputPath     string
)

// marshalCmd marshals one operation input
var marshalCmd = &cobra.Command{
	Use:   "marshal",
	Short: "Marshal an operation input document",
	Example: `  smithy-marshal marshal --model docdb-2014-10-31.normal.json \
    --operation ModifyDBSubnetGroup --input input.yaml`,
	Args: cobra.NoArgs,
	RunE: runMarshal,
}

func runMarshal(cmd *cobra.Command, args []string) error {
	m, err := model.LoadFile(modelPath)
	if err != nil {
		return err
	}
	service, err := m.Service()
	if err != nil {
		return err
	}
	op, err := m.Operation(operationName)
	if err != nil {
		return err
	}
	s, err := m.InputSchema(operationName)
	if err != nil {
		return err
	}

	in, err := readInput(inputPath)
	if err != nil {
		return err
	}

	logger.Debug("Marshalling operation",
		zap.String("service", service.ServiceID),
		zap.String("protocol", service.Protocol.String()),
		zap.String("operation", op.Name))

	marshaller := marshal.New(service, func(o *marshal.Options) {
		o.Logger = logging.NewZapLogger(logger)
		o.Schemas = []*smithy.Schema{s}
	})
	res, err := marshaller.Marshal(context.Background(), op, s, in)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)
	return nil
}

// readInput decodes the input document at path. An empty path is an empty
// input.
func readInput(path string) (map[string]interface{}, error) {
	in := map[string]interface{}{}
	if len(path) == 0 {
		return in, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("failed to decode input %s: %w", path, err)
	}
	if in == nil {
		in = map[string]interface{}{}
	}
	return in, nil
}

func printResult(w io.Writer, res *marshal.Result) {
	d := res.Descriptor

	fmt.Fprintf(w, "Protocol:           %s\n", res.Protocol)
	fmt.Fprintf(w, "Marshalling:        %s\n", res.Kind)
	if eu := res.ErrorUnmarshaller.String(); len(eu) != 0 {
		fmt.Fprintf(w, "Error unmarshaller: %s\n", eu)
	}
	fmt.Fprintf(w, "Action:             %s\n", d.Action)
	if len(d.LocationName) != 0 {
		fmt.Fprintf(w, "Location name:      %s\n", d.LocationName)
	}
	if len(d.XMLNamespaceURI) != 0 {
		fmt.Fprintf(w, "XML namespace:      %s\n", d.XMLNamespaceURI)
	}

	target := res.Path
	if len(res.RawPath) != 0 {
		target = res.RawPath
	}
	if len(res.RawQuery) != 0 {
		target += "?" + res.RawQuery
	}
	fmt.Fprintf(w, "\n%s %s\n", res.Method, target)

	keys := make([]string, 0, len(res.Header))
	for k := range res.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, strings.Join(res.Header[k], ", "))
	}

	if len(res.Body) != 0 {
		fmt.Fprintf(w, "\n%s\n", res.Body)
	}
}
