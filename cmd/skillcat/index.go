package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/skillcat/internal/indexer"
	"github.com/justinpbarnett/skillcat/internal/logger"
)

func newIndexCmd(flags *globalFlags) *cobra.Command {
	var root, output string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build skills.json from skills/**/SKILL.md",
		Long: `Scan <root>/skills for SKILL.md files and write the catalog index.

Each skill takes its id, name, description, category and source from the
document's YAML frontmatter. Missing values fall back to the directory
path: the id joins the path segments with "-", the description is the
first line of text, and nested skills use their top-level directory as
category. Duplicate ids get the top-level directory appended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if err := setupLogging(cfg, flags, false); err != nil {
				return err
			}
			defer logger.Sync()

			opts := indexer.Options{Root: cfg.Index.Root, Output: cfg.Index.Output}
			if cmd.Flags().Changed("root") {
				opts.Root = root
			}
			if cmd.Flags().Changed("output") {
				opts.Output = output
			}

			res, err := indexer.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
			}
			fmt.Printf("Indexed %d skills into %s\n", len(res.Index), opts.OutputPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "catalog directory containing skills/ (default: index.root)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "index file, relative to --root unless absolute (default: index.output)")
	return cmd
}
