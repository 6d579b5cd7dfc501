package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/temirov/snapshot/internal/config"
)

func writeProjectFile(t *testing.T, rootDirectory string, relativePath string, content string) {
	t.Helper()
	fullPath := filepath.Join(rootDirectory, filepath.FromSlash(relativePath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", fullPath, err)
	}
}

func executeRootCommand(t *testing.T, arguments ...string) (string, error) {
	t.Helper()
	var standardOutput bytes.Buffer
	command := createRootCommand(zap.NewNop(), &standardOutput)
	command.SetArgs(normalizeToggleArguments(command, arguments))
	command.SetErr(&standardOutput)
	err := command.Execute()
	return standardOutput.String(), err
}

func TestRootCommandWritesArtifacts(t *testing.T) {
	rootDirectory := t.TempDir()
	writeProjectFile(t, rootDirectory, "src/a.ts", "x")
	writeProjectFile(t, rootDirectory, "node_modules/pkg/index.js", "y")

	if _, err := executeRootCommand(t, rootDirectory); err != nil {
		t.Fatalf("execute: %v", err)
	}
	outputDirectory := filepath.Join(rootDirectory, config.DefaultOutputDirectory)
	for _, extension := range []string{".json", ".md"} {
		path := filepath.Join(outputDirectory, config.DefaultOutputName+extension)
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected artifact %s: %v", path, err)
		}
	}
	markdown, err := os.ReadFile(filepath.Join(outputDirectory, config.DefaultOutputName+".md"))
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	if strings.Contains(string(markdown), "node_modules") {
		t.Fatalf("ignored directory leaked into markdown:\n%s", markdown)
	}
}

func TestRootCommandFlagOverrides(t *testing.T) {
	testCases := []struct {
		name           string
		arguments      []string
		expectJSON     bool
		expectMarkdown bool
	}{
		{name: "json_disabled", arguments: []string{"--json", "no"}, expectJSON: false, expectMarkdown: true},
		{name: "markdown_disabled", arguments: []string{"--markdown=false"}, expectJSON: true, expectMarkdown: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rootDirectory := t.TempDir()
			outputDirectory := filepath.Join(t.TempDir(), "out")
			writeProjectFile(t, rootDirectory, "README.md", "hello")
			arguments := append([]string{"--output", outputDirectory, "--name", "ctx"}, testCase.arguments...)
			arguments = append(arguments, rootDirectory)
			if _, err := executeRootCommand(t, arguments...); err != nil {
				t.Fatalf("execute: %v", err)
			}
			_, jsonErr := os.Stat(filepath.Join(outputDirectory, "ctx.json"))
			_, markdownErr := os.Stat(filepath.Join(outputDirectory, "ctx.md"))
			if (jsonErr == nil) != testCase.expectJSON {
				t.Fatalf("json presence mismatch: %v", jsonErr)
			}
			if (markdownErr == nil) != testCase.expectMarkdown {
				t.Fatalf("markdown presence mismatch: %v", markdownErr)
			}
		})
	}
}

func TestRootCommandFlagsOverrideConfigurationFile(t *testing.T) {
	rootDirectory := t.TempDir()
	writeProjectFile(t, rootDirectory, "README.md", "hello")
	writeProjectFile(t, rootDirectory, config.ConfigFileName, "output:\n  name: fromfile\n  markdown: false\n")

	if _, err := executeRootCommand(t, "--markdown", rootDirectory); err != nil {
		t.Fatalf("execute: %v", err)
	}
	outputDirectory := filepath.Join(rootDirectory, config.DefaultOutputDirectory)
	if _, err := os.Stat(filepath.Join(outputDirectory, "fromfile.md")); err != nil {
		t.Fatalf("expected flag to re-enable markdown: %v", err)
	}
}

func TestRootCommandRejectsMissingRoot(t *testing.T) {
	if _, err := executeRootCommand(t, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing root directory")
	}
}

func TestRootCommandPrintsVersion(t *testing.T) {
	output, err := executeRootCommand(t, "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(output, "snapshot version: ") {
		t.Fatalf("unexpected version output: %q", output)
	}
}

func TestInitCommandWritesConfiguration(t *testing.T) {
	rootDirectory := t.TempDir()
	if _, err := executeRootCommand(t, "init", rootDirectory); err != nil {
		t.Fatalf("execute init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(rootDirectory, config.ConfigFileName)); err != nil {
		t.Fatalf("expected configuration file: %v", err)
	}
	if _, err := executeRootCommand(t, "init", rootDirectory); err == nil {
		t.Fatalf("expected error without --force")
	}
	if _, err := executeRootCommand(t, "init", "--force", rootDirectory); err != nil {
		t.Fatalf("execute init --force: %v", err)
	}
}
