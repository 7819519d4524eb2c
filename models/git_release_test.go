package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinary(t *testing.T) {
	cases := []struct {
		name string
		exp  bool
	}{
		{name: "tool.exe", exp: true},
		{name: "DebugKernel.dll", exp: true},
		{name: "kernel_linux", exp: true},
		{name: "notes.txt", exp: true},
		{name: "zip", exp: true},
		{name: "tool.zip", exp: false},
		{name: "TOOL.ZIP", exp: false},
		{name: "source.tar.gz", exp: false},
		{name: "source.TAR.GZ", exp: false},
		{name: "source.tar", exp: false},
		{name: "source.tgz", exp: false},
		{name: "source.Tgz", exp: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.exp, IsBinary(c.name))
		})
	}
}

func TestBinaryAssets(t *testing.T) {
	release := GitRelease{
		Assets: []GitAsset{
			{Name: "tool.exe"},
			{Name: "source.tar.gz"},
			{Name: "tool.zip"},
			{Name: "kernel.so"},
		},
	}

	var names []string
	for _, a := range release.BinaryAssets() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"tool.exe", "kernel.so"}, names)
}

func TestBinaryAssetsEmpty(t *testing.T) {
	assert.Empty(t, GitRelease{}.BinaryAssets())
	assert.NotNil(t, GitRelease{}.BinaryAssets())
}

func TestNormalizeMissingAssets(t *testing.T) {
	for _, body := range []string{
		`{"tag_name":"v1.0.0","name":"First"}`,
		`{"tag_name":"v1.0.0","name":"First","assets":null}`,
	} {
		var release GitRelease
		require.NoError(t, json.Unmarshal([]byte(body), &release))
		release.Normalize()

		assert.Equal(t, "v1.0.0", release.TagName)
		assert.Equal(t, "First", release.Name)
		assert.NotNil(t, release.Assets)
		assert.Len(t, release.Assets, 0)
	}
}

func TestDecodeAssets(t *testing.T) {
	body := `{
		"tag_name": "v2.1.0",
		"name": "Second",
		"assets": [
			{"name": "tool.exe", "browser_download_url": "https://example.com/tool.exe"}
		]
	}`

	var release GitRelease
	require.NoError(t, json.Unmarshal([]byte(body), &release))

	require.Len(t, release.Assets, 1)
	assert.Equal(t, "tool.exe", release.Assets[0].Name)
	assert.Equal(t, "https://example.com/tool.exe", release.Assets[0].BrowserDownloadURL)
}
