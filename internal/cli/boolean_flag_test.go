package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterToggleFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		defaultValue bool
		arguments    []string
		expected     bool
		expectError  bool
	}{
		{name: "defaults_to_true", defaultValue: true, arguments: []string{}, expected: true},
		{name: "sets_true_without_value", defaultValue: false, arguments: []string{"--feature"}, expected: true},
		{name: "sets_false_with_equals", defaultValue: true, arguments: []string{"--feature=false"}, expected: false},
		{name: "sets_false_with_no_literal", defaultValue: true, arguments: []string{"--feature", "no"}, expected: false},
		{name: "sets_true_with_on_literal", defaultValue: false, arguments: []string{"--feature", "on"}, expected: true},
		{name: "leaves_positional_argument", defaultValue: false, arguments: []string{"--feature", "project"}, expected: true},
		{name: "rejects_unknown_literal", defaultValue: false, arguments: []string{"--feature=maybe"}, expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "toggle-test"}
			flagValue := !testCase.defaultValue
			registerToggleFlag(command.Flags(), &flagValue, "feature", testCase.defaultValue, "toggle feature behaviour")
			parseErr := command.ParseFlags(normalizeToggleArguments(command, testCase.arguments))
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestNormalizeToggleArgumentsStopsAtTerminator(t *testing.T) {
	command := &cobra.Command{Use: "toggle-test"}
	var flagValue bool
	registerToggleFlag(command.Flags(), &flagValue, "feature", false, "toggle feature behaviour")
	normalized := normalizeToggleArguments(command, []string{"--", "--feature", "no"})
	if len(normalized) != 3 || normalized[1] != "--feature" || normalized[2] != "no" {
		t.Fatalf("unexpected normalization: %v", normalized)
	}
}
