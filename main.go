package main

import (
	"context"
	"fmt"
	"log"

	"github.com/codingconcepts/grabkernel/commands"
	"github.com/codingconcepts/grabkernel/config"
	"github.com/codingconcepts/grabkernel/logging"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type flags struct {
	configPath      string
	owner           string
	repo            string
	outputDir       string
	includeArchives bool
	verbose         bool
}

func main() {
	log.SetFlags(0)

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:           "grabkernel",
		Short:         "Downloads the binaries of a repository's latest GitHub release",
		Example:       "grabkernel --owner YumStudioHQ --repo YumStudio-DebugKernel --output Applications/DebugKernel/",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(cmd.ErrOrStderr(), f.verbose)

			loaded, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: commands.Fetch(&cfg),
	}

	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&f.owner, "owner", "", "repository owner (overrides config)")
	rootCmd.Flags().StringVar(&f.repo, "repo", "", "repository name (overrides config)")
	rootCmd.Flags().StringVarP(&f.outputDir, "output", "o", "", "directory to download into (overrides config)")
	rootCmd.Flags().BoolVar(&f.includeArchives, "include-archives", false, "also download .zip/.tar/.tar.gz/.tgz assets")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "grabkernel", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

// loadConfig reads the config file (if any) and applies any flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("owner") {
		cfg.Owner = f.owner
	}
	if changed("repo") {
		cfg.Repo = f.repo
	}
	if changed("output") {
		cfg.OutputDir = f.outputDir
	}
	if changed("include-archives") {
		cfg.IncludeArchives = f.includeArchives
	}

	return cfg, nil
}
