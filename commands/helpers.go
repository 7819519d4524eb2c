package commands

import (
	"net/http"

	"github.com/codingconcepts/grabkernel/config"
	"github.com/codingconcepts/grabkernel/download"
	"github.com/codingconcepts/grabkernel/models"
	"github.com/codingconcepts/grabkernel/release"
)

func newHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout(),
	}
}

func newReleaseClient(c *http.Client, cfg config.Config) *release.Client {
	return release.New(c, cfg.APIBaseURL, cfg.UserAgent)
}

func newDownloader(c *http.Client, cfg config.Config) *download.Downloader {
	return download.New(c, cfg.OutputDir, cfg.ChunkSize, cfg.UserAgent)
}

// selectAssets picks the assets to download, keeping the listing order.
func selectAssets(release models.GitRelease, includeArchives bool) []models.GitAsset {
	if includeArchives {
		return release.Assets
	}
	return release.BinaryAssets()
}
