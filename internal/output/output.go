// Package output renders a project snapshot as a file tree, a JSON record and a Markdown document.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/temirov/snapshot/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	markdownTitleFormat     = "# Project context: %s\n\n"
	markdownStructureHeader = "## Project structure\n\n"
	markdownFileFormat      = "## File: `%s`\n\n"
	markdownFence           = "```"
	markdownSeparator       = "---\n\n"
)

// LanguageTagger resolves the fenced-block language for a relative path.
type LanguageTagger func(relativePath string) string

// RenderJSON marshals the snapshot as indented JSON. HTML characters and non-ASCII text are kept verbatim.
func RenderJSON(snapshot types.ProjectSnapshot) ([]byte, error) {
	if snapshot.CodeFiles == nil {
		snapshot.CodeFiles = []types.FileRecord{}
	}
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent(indentPrefix, indentSpacer)
	if encodeError := encoder.Encode(snapshot); encodeError != nil {
		return nil, encodeError
	}
	return buffer.Bytes(), nil
}

// RenderMarkdown renders the snapshot as a Markdown document: title, file tree, then one
// fenced section per file in capture order.
func RenderMarkdown(snapshot types.ProjectSnapshot, languageTag LanguageTagger) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf(markdownTitleFormat, snapshot.ProjectName))
	builder.WriteString(markdownStructureHeader)
	builder.WriteString(markdownFence + "\n")
	builder.WriteString(snapshot.FileTree)
	if snapshot.FileTree != "" && !strings.HasSuffix(snapshot.FileTree, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString(markdownFence + "\n\n")
	builder.WriteString(markdownSeparator)

	for _, record := range snapshot.CodeFiles {
		tag := types.DefaultLanguageTag
		if languageTag != nil {
			tag = languageTag(record.Path)
		}
		builder.WriteString(fmt.Sprintf(markdownFileFormat, record.Path))
		builder.WriteString(markdownFence + tag + "\n")
		builder.WriteString(record.Content)
		builder.WriteString("\n" + markdownFence + "\n\n")
		builder.WriteString(markdownSeparator)
	}

	return builder.String()
}
