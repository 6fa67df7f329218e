package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func resolveCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resolve <room>",
		Short: "Resolve a live room page into its numeric room id",
		Long: `Resolve a live room page into its numeric room id, title, status and
stream URLs.

Examples:
  livefeed resolve 646454278948
  livefeed resolve 646454278948 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := buildResolver(cfg, logger.Named("room"))
			info, err := resolver.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch output {
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(info)
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			default:
				return fmt.Errorf("unknown output format %q (valid: json, yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")

	return cmd
}
