package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Reporter prints human-readable progress lines.
type Reporter struct {
	w     io.Writer
	name  lipgloss.Style
	saved lipgloss.Style
}

// NewReporter returns a Reporter writing to w. Colour is only used when w is a
// terminal that supports it and NO_COLOR is unset.
func NewReporter(w io.Writer) *Reporter {
	return newReporter(w, lipgloss.NewRenderer(w))
}

func newReporter(w io.Writer, re *lipgloss.Renderer) *Reporter {
	return &Reporter{
		w:     w,
		name:  re.NewStyle().Foreground(lipgloss.Color("6")),
		saved: re.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// FetchingRelease announces the metadata request.
func (r *Reporter) FetchingRelease() {
	fmt.Fprintln(r.w, "Fetching latest release...")
}

// LatestRelease identifies the release that was found.
func (r *Reporter) LatestRelease(tag, name string) {
	fmt.Fprintf(r.w, "Latest release: %s\n", r.name.Render(tag+" - "+name))
}

// NoBinaries reports a release without anything to download.
func (r *Reporter) NoBinaries() {
	fmt.Fprintln(r.w, "No binaries found in this release.")
}

// Downloading announces the start of an asset download.
func (r *Reporter) Downloading(name string) {
	fmt.Fprintf(r.w, "Downloading %s ...\n", r.name.Render(name))
}

// Saved reports a completed asset download.
func (r *Reporter) Saved(path string, bytes int64) {
	fmt.Fprintf(r.w, "Saved to %s (%s)\n", r.saved.Render(path), humanize.Bytes(uint64(bytes)))
}

// Done reports that every binary was downloaded.
func (r *Reporter) Done() {
	fmt.Fprintln(r.w, "All binaries downloaded.")
}
