// internal/core/domain/enums_test.go
package domain

import (
	"testing"

	"subburst/internal/testutil"
)

func TestGenerationMode_String(t *testing.T) {
	tests := []struct {
		mode     GenerationMode
		expected string
	}{
		{GenerationBruteForce, "bruteforce"},
		{GenerationDictionary, "dictionary"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			testutil.AssertEqual(t, tt.mode.String(), tt.expected, "generation mode string")
			testutil.AssertTrue(t, tt.mode.IsValid(), "known mode is valid")
		})
	}

	testutil.AssertFalse(t, GenerationMode("passive").IsValid(), "unknown mode")
}

func TestStageKind_String(t *testing.T) {
	testutil.AssertEqual(t, StageGenerator.String(), "generator", "generator")
	testutil.AssertEqual(t, StageWorker.String(), "worker", "worker")
	testutil.AssertEqual(t, StageSink.String(), "sink", "sink")
}

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{OutputText, true},
		{OutputJSONL, true},
		{OutputTable, true},
		{OutputFormat("xml"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			testutil.AssertEqual(t, tt.format.IsValid(), tt.valid, "format validity")
		})
	}
}
