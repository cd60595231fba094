package export

import (
	"encoding/json"
	"fmt"

	"github.com/forshine-dev/shinebuilder/dtos"
)

// Format identifies a coverage report output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatMarkdown: {
		Name:        FormatMarkdown,
		MIMEType:    "text/markdown",
		Extension:   ".md",
		Description: "Markdown - coverage tables for wikis and pull requests",
	},
	FormatHTML: {
		Name:        FormatHTML,
		MIMEType:    "text/html",
		Extension:   ".html",
		Description: "HTML - standalone coverage report page",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON - machine-readable coverage report",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// Render serializes the report in the requested format. Output is
// deterministic for a given report - ordering is inherited from the
// coverage service, which sorts everything before handing the report out.
func Render(report dtos.CoverageReport, format Format) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return renderMarkdown(report)
	case FormatHTML:
		return renderHTML(report)
	case FormatJSON:
		return json.MarshalIndent(report, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
