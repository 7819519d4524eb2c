package commands

import (
	"context"
	"fmt"

	"github.com/codingconcepts/grabkernel/config"
	"github.com/spf13/cobra"
)

// Fetch downloads the binaries of the configured repository's latest release.
func Fetch(cfg *config.Config) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		return Run(cmd.Context(), *cfg, NewReporter(cmd.OutOrStdout()))
	}
}

// Run performs a single fetch: make sure the output directory exists, look up
// the latest release and download each selected asset in turn. The first
// failure aborts the run.
func Run(ctx context.Context, cfg config.Config, r *Reporter) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c := newHTTPClient(cfg)
	releases := newReleaseClient(c, cfg)
	downloader := newDownloader(c, cfg)

	if err := downloader.EnsureDir(); err != nil {
		return fmt.Errorf("preparing output directory: %w", err)
	}

	r.FetchingRelease()
	release, err := releases.LatestRelease(ctx, cfg.Owner, cfg.Repo)
	if err != nil {
		return fmt.Errorf("getting latest release of %s/%s: %w", cfg.Owner, cfg.Repo, err)
	}
	r.LatestRelease(release.TagName, release.Name)

	assets := selectAssets(release, cfg.IncludeArchives)
	if len(assets) == 0 {
		r.NoBinaries()
		return nil
	}

	for _, asset := range assets {
		r.Downloading(asset.Name)
		result, err := downloader.Download(ctx, asset)
		if err != nil {
			return fmt.Errorf("downloading %q: %w", asset.Name, err)
		}
		r.Saved(result.Path, result.Bytes)
	}

	r.Done()
	return nil
}
