package cmd

//go:generate go run ../main.go gen-docs --path ../docs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"gopkg.in/yaml.v3"

	"github.com/cru-project/skylark/pkg/factory"
)

// NewCmdGenDocs creates a new gen-docs command
func NewCmdGenDocs(rootCmd *cobra.Command) *cobra.Command {
	var docPath string

	cmd := &cobra.Command{
		Use:   "gen-docs",
		Short: "Generate markdown documentation",
		Long:  `Generate the markdown documentation of available CLI flags and the result schema of every check`,
		Run:   runGenDocs(rootCmd, &docPath),
	}

	cmd.PersistentFlags().StringVar(&docPath, "path", "docs", "directory path where the markdown files will be created")

	return cmd
}

func runGenDocs(rootCmd *cobra.Command, path *string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := os.MkdirAll(*path, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := doc.GenMarkdownTree(rootCmd, *path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := writeCheckSchemas(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// writeCheckSchemas dumps the result schema of every registered check
// so the docs build can embed the artifact format.
func writeCheckSchemas(path string) error {
	schemas := map[string]*openapi3.SchemaRef{}
	for _, c := range factory.Default() {
		s, err := c.Schema()
		if err != nil {
			return fmt.Errorf("failed to generate schema for check %q: %w", c.Name(), err)
		}
		schemas[c.Name()] = s
	}

	b, err := yaml.Marshal(schemas)
	if err != nil {
		return fmt.Errorf("failed to marshal check schemas: %w", err)
	}
	return os.WriteFile(filepath.Join(path, "check-schemas.yaml"), b, 0o644)
}
