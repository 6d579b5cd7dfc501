package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigurationTemplate = `output:
  directory: _scripts
  name: project_context
  json: true
  markdown: true
extensions: [".js", ".jsx", ".ts", ".tsx", ".html", ".css", ".json", ".md", ".mjs", ".cjs", ".gitignore", ".mdx"]
ignore: ["node_modules", ".git", ".next", "dist", "build", "out", ".cache", ".swc", ".vscode", "package-lock.json", ".env", "_scripts"]
languages:
  .js: javascript
  .ts: typescript
tokens:
  enabled: false
  model: gpt-4o
clipboard: false
`

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	RootDirectory string
	Force         bool
}

// InitializeConfiguration writes the default configuration file into the root directory.
func InitializeConfiguration(options InitOptions) (string, error) {
	rootDirectory := options.RootDirectory
	if rootDirectory == "" {
		current, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory for configuration: %w", err)
		}
		rootDirectory = current
	}
	destinationPath := filepath.Join(rootDirectory, ConfigFileName)

	if _, err := os.Stat(destinationPath); err == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	if err := os.WriteFile(destinationPath, []byte(defaultConfigurationTemplate), 0o600); err != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}

	return destinationPath, nil
}
