package pipeline

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"textclean/internal"
)

type DetectResult struct {
	Format internal.InputFormat
	Reason string
}

const sniffLen = 1024

var mailHeaderPattern = regexp.MustCompile(`(?i)^(from|to|subject|date|received|return-path|message-id|mime-version|delivered-to):`)

var extensionFormats = map[string]internal.InputFormat{
	".csv":  internal.FormatDelimited,
	".txt":  internal.FormatDelimited,
	".tsv":  internal.FormatTSV,
	".xlsx": internal.FormatXLSX,
	".xlsm": internal.FormatXLSX,
	".html": internal.FormatHTML,
	".htm":  internal.FormatHTML,
	".pdf":  internal.FormatPDF,
	".eml":  internal.FormatEmail,
}

// DetectInputFormat picks a reader by extension, sniffing the content when
// the extension is unknown. Delimited text is the fallback.
func DetectInputFormat(path string, content []byte) DetectResult {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := extensionFormats[ext]; ok {
		return DetectResult{Format: format, Reason: "extension " + ext}
	}

	head := content
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	head = bytes.TrimPrefix(head, utf8BOM)

	switch {
	case bytes.HasPrefix(head, []byte("%PDF-")):
		return DetectResult{Format: internal.FormatPDF, Reason: "pdf magic"}
	case bytes.HasPrefix(head, []byte("PK\x03\x04")):
		return DetectResult{Format: internal.FormatXLSX, Reason: "zip magic"}
	}

	trimmed := bytes.TrimSpace(head)
	if bytes.Contains(bytes.ToLower(trimmed), []byte("<table")) {
		return DetectResult{Format: internal.FormatHTML, Reason: "html table"}
	}
	if mailHeaderPattern.Match(trimmed) {
		return DetectResult{Format: internal.FormatEmail, Reason: "mail headers"}
	}
	return DetectResult{Format: internal.FormatDelimited, Reason: "default"}
}
