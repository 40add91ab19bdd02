package main

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/skillcat/internal/config"
	"github.com/justinpbarnett/skillcat/internal/logger"
	"github.com/justinpbarnett/skillcat/internal/server"
	"github.com/justinpbarnett/skillcat/internal/source"
	"github.com/justinpbarnett/skillcat/skills"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr, dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a catalog directory over HTTP",
		Long: `Serve skills.json and skills/** so that other machines can browse the
catalog with --source http://<addr>. Without --dir the configured
source is served, which must be a directory or "builtin:".`,
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

			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}
			fsys, name, err := catalogFS(cfg, dir)
			if err != nil {
				return err
			}
			srv := server.New(addr, fsys, cfg.Source.IndexFile)
			return srv.Run(cmd.Context(), func(bound string) {
				fmt.Printf("Serving %s at http://%s (Ctrl+C to stop)\n", name, bound)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr)")
	cmd.Flags().StringVar(&dir, "dir", "", "catalog directory to serve (default: source.base)")
	return cmd
}

// catalogFS resolves the filesystem to serve: dir when given, otherwise the
// configured source as long as it is local.
func catalogFS(cfg *config.Config, dir string) (fs.FS, string, error) {
	if dir == "" {
		dir = cfg.Source.Base
	}
	switch {
	case dir == source.Builtin:
		return skills.Catalog(), "builtin catalog", nil
	case strings.HasPrefix(dir, "http://"), strings.HasPrefix(dir, "https://"):
		return nil, "", fmt.Errorf("cannot serve remote catalog %s, pass --dir", dir)
	}

	dir = strings.TrimPrefix(dir, "file://")
	info, err := os.Stat(dir)
	if err != nil {
		return nil, "", fmt.Errorf("catalog directory: %w", err)
	}
	if !info.IsDir() {
		return nil, "", fmt.Errorf("catalog %s is not a directory", dir)
	}
	return os.DirFS(dir), dir, nil
}
