package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeConfigurationCreatesFile(t *testing.T) {
	rootDirectory := t.TempDir()
	path, err := InitializeConfiguration(InitOptions{RootDirectory: rootDirectory})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(rootDirectory, ConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	if !strings.Contains(string(content), "output:") {
		t.Fatalf("unexpected configuration content: %s", string(content))
	}
}

func TestInitializeConfigurationTemplateLoads(t *testing.T) {
	rootDirectory := t.TempDir()
	if _, err := InitializeConfiguration(InitOptions{RootDirectory: rootDirectory}); err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	configuration, loadErr := LoadConfiguration(LoadOptions{RootDirectory: rootDirectory})
	if loadErr != nil {
		t.Fatalf("LoadConfiguration error: %v", loadErr)
	}
	defaults := DefaultConfiguration(rootDirectory)
	if len(configuration.Extensions) != len(defaults.Extensions) {
		t.Fatalf("expected %d extensions, got %v", len(defaults.Extensions), configuration.Extensions)
	}
	if configuration.LanguageTag("a.tsx") != "typescript" {
		t.Fatalf("expected merged language tags to keep defaults")
	}
}

func TestInitializeConfigurationPreventsOverwriteWithoutForce(t *testing.T) {
	rootDirectory := t.TempDir()
	path := filepath.Join(rootDirectory, ConfigFileName)
	if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}
	_, err := InitializeConfiguration(InitOptions{RootDirectory: rootDirectory, Force: false})
	if err == nil {
		t.Fatalf("expected error when configuration already exists")
	}
	if _, err := InitializeConfiguration(InitOptions{RootDirectory: rootDirectory, Force: true}); err != nil {
		t.Fatalf("expected overwrite with force, got %v", err)
	}
}
