package models

import "strings"

// archiveExts are the filename suffixes of source bundles, which are never
// treated as binaries.
var archiveExts = []string{".zip", ".tar.gz", ".tar", ".tgz"}

// GitRelease describes the latest release of a repository.
type GitRelease struct {
	TagName string     `json:"tag_name"`
	Name    string     `json:"name"`
	Assets  []GitAsset `json:"assets"`
}

// GitAsset describes a file attached to a release.
type GitAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Normalize replaces a missing asset list with an empty one.
func (r *GitRelease) Normalize() {
	if r.Assets == nil {
		r.Assets = []GitAsset{}
	}
}

// BinaryAssets returns the release's binary assets in listing order.
func (r GitRelease) BinaryAssets() []GitAsset {
	binaries := []GitAsset{}
	for _, asset := range r.Assets {
		if IsBinary(asset.Name) {
			binaries = append(binaries, asset)
		}
	}
	return binaries
}

// IsBinary returns false for asset names that look like source archives and
// true for everything else.
func IsBinary(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range archiveExts {
		if strings.HasSuffix(lower, ext) {
			return false
		}
	}
	return true
}
