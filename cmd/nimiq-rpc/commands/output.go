package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nimiq-community/go-nimiq-rpc/config"
)

// printResult writes v to w in the configured output format. YAML output
// keeps the JSON field names and order of the node API.
func printResult(w io.Writer, format string, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	switch format {
	case config.OutputYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(bz, &node); err != nil {
			return err
		}
		blockStyle(&node)

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err = fmt.Fprintln(w, string(bz))
		return err
	}
}

// blockStyle drops the flow and quoting styles the JSON input carried.
// Strings that would read as another type stay quoted.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
