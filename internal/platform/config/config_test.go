// internal/platform/config/config_test.go
package config

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/pflag"

	"subburst/internal/core/domain"
	"subburst/internal/testutil"
)

var envVars = []string{
	"SUBBURST_TARGET",
	"SUBBURST_WORKERS",
	"SUBBURST_LOG_LEVEL",
	"SUBBURST_DICT",
	"SUBBURST_LENGTH",
	"SUBBURST_PLACEHOLDER_HYPHEN",
	"SUBBURST_NAMESERVERS",
	"SUBBURST_DNS_TIMEOUT",
	"SUBBURST_RATE",
	"SUBBURST_WILDCARD_CHECK",
	"SUBBURST_PROBE",
	"SUBBURST_HTTP_TIMEOUT",
	"SUBBURST_USER_AGENT",
	"SUBBURST_OUTPUT",
	"SUBBURST_FORMAT",
	"SUBBURST_QUIET",
	"SUBBURST_CONFIG",
}

// resetCLI deja os.Args, pflag y el entorno limpios para un Load().
func resetCLI(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	pflag.CommandLine = pflag.NewFlagSet("subburst", pflag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)

	for _, env := range envVars {
		if v, ok := os.LookupEnv(env); ok {
			os.Unsetenv(env)
			t.Cleanup(func() { os.Setenv(env, v) })
		}
	}
}

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		def      string
		envValue string
		expected string
	}{
		{"env var exists", "SUBBURST_TEST_KEY_1", "default", "custom", "custom"},
		{"env var missing - uses default", "SUBBURST_TEST_KEY_MISSING", "default", "", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getenv(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"t", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{" true ", true},

		{"0", false},
		{"false", false},
		{"no", false},
		{"off", false},
		{"", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := parseBool(tt.input); result != tt.expected {
				t.Errorf("parseBool(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseNumbers(t *testing.T) {
	testutil.AssertEqual(t, parseInt(" 50 ", 25), 50, "valid int")
	testutil.AssertEqual(t, parseInt("abc", 25), 25, "invalid int falls back")
	testutil.AssertEqual(t, parseInt("3.5", 25), 25, "float is not an int")
	testutil.AssertEqual(t, parseFloat("12.5", 0), 12.5, "valid float")
	testutil.AssertEqual(t, parseFloat("fast", 7), 7.0, "invalid float falls back")
	testutil.AssertStrings(t, splitCSV(" 1.1.1.1, ,9.9.9.9:53 "), []string{"1.1.1.1", "9.9.9.9:53"}, "csv split")
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input   string
		min     int
		max     int
		wantErr bool
	}{
		{"3", 3, 3, false},
		{"1-3", 1, 3, false},
		{" 2 - 4 ", 2, 4, false},
		{"63", 63, 63, false},

		{"0", 0, 0, true},
		{"3-3", 0, 0, true},
		{"4-2", 0, 0, true},
		{"1-64", 0, 0, true},
		{"-3", 0, 0, true},
		{"a-b", 0, 0, true},
		{"2-", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			min, max, err := ParseLength(tt.input)
			if tt.wantErr {
				testutil.AssertTrue(t, errors.Is(err, domain.ErrInvalidLength), "expected ErrInvalidLength")
				return
			}
			testutil.AssertNoError(t, err, "ParseLength")
			testutil.AssertEqual(t, min, tt.min, "min")
			testutil.AssertEqual(t, max, tt.max, "max")
		})
	}
}

func TestValidate(t *testing.T) {
	dict := testutil.WriteTempFile(t, "words.txt", "www\napi\n")

	valid := func() Config {
		cfg := DefaultConfig()
		cfg.Core.Target = "example.com"
		cfg.Generation.Dictionary = BuiltinDictionary
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"builtin dictionary", func(c *Config) {}, nil},
		{"dictionary file", func(c *Config) { c.Generation.Dictionary = dict }, nil},
		{"length mode", func(c *Config) { c.Generation.Dictionary = ""; c.Generation.Length = "1-2" }, nil},
		{"missing target", func(c *Config) { c.Core.Target = "" }, domain.ErrEmptyTarget},
		{"bare suffix", func(c *Config) { c.Core.Target = "com" }, domain.ErrInvalidDomain},
		{"both modes", func(c *Config) { c.Generation.Length = "3" }, domain.ErrModeConflict},
		{"no mode", func(c *Config) { c.Generation.Dictionary = "" }, domain.ErrModeMissing},
		{"missing dictionary file", func(c *Config) { c.Generation.Dictionary = dict + ".nope" }, domain.ErrInvalidConfig},
		{"zero workers", func(c *Config) { c.Core.Workers = 0 }, domain.ErrInvalidConfig},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, domain.ErrInvalidConfig},
		{"zero dns timeout", func(c *Config) { c.DNS.TimeoutS = 0 }, domain.ErrInvalidConfig},
		{"negative rate", func(c *Config) { c.DNS.Rate = -1 }, domain.ErrInvalidConfig},
		{"bad log level", func(c *Config) { c.Core.LogLevel = "loud" }, domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err, "Validate")
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Core.Target = "  Example.COM. "
	cfg.Core.LogLevel = " DEBUG"
	cfg.Output.Format = " JSONL "
	cfg.DNS.Nameservers = []string{" 1.1.1.1 ", "", "9.9.9.9"}
	cfg.Generation.Length = "2-4"

	testutil.AssertNoError(t, normalize(&cfg), "normalize")
	testutil.AssertEqual(t, cfg.Core.Target, "example.com", "target")
	testutil.AssertEqual(t, cfg.Core.LogLevel, "debug", "log level")
	testutil.AssertEqual(t, cfg.Output.Format, "jsonl", "format")
	testutil.AssertStrings(t, cfg.DNS.Nameservers, []string{"1.1.1.1", "9.9.9.9"}, "nameservers")
	testutil.AssertEqual(t, cfg.Generation.MinLength, 2, "min length")
	testutil.AssertEqual(t, cfg.Generation.MaxLength, 4, "max length")

	bad := DefaultConfig()
	bad.Generation.Length = "5-1"
	testutil.AssertTrue(t, errors.Is(normalize(&bad), domain.ErrInvalidLength), "bad length surfaces")
}

func TestStrategySpec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.Dictionary = BuiltinDictionary
	cfg.Generation.PlaceholderHyphen = true

	spec := cfg.StrategySpec()
	testutil.AssertTrue(t, spec.DictionaryEnabled, "dictionary enabled")
	testutil.AssertEqual(t, spec.DictionaryPath, "", "builtin has no path")
	testutil.AssertTrue(t, spec.PlaceholderHyphen, "hyphen forwarded")

	cfg.Generation.Dictionary = "/tmp/words.txt"
	testutil.AssertEqual(t, cfg.StrategySpec().DictionaryPath, "/tmp/words.txt", "path forwarded")

	cfg.Generation.Dictionary = ""
	cfg.Generation.MinLength, cfg.Generation.MaxLength = 1, 3
	spec = cfg.StrategySpec()
	testutil.AssertFalse(t, spec.DictionaryEnabled, "length mode")
	testutil.AssertEqual(t, spec.MinLength, 1, "min")
	testutil.AssertEqual(t, spec.MaxLength, 3, "max")
}

func TestConfig_Timeouts(t *testing.T) {
	cfg := DefaultConfig()
	testutil.AssertEqual(t, cfg.DNSTimeout().String(), "5s", "dns timeout")
	testutil.AssertEqual(t, cfg.HTTPTimeout().String(), "9s", "http timeout")
}

func TestLoad_Flags(t *testing.T) {
	resetCLI(t, "Example.com", "-d", "-c", "50", "-n", "1.1.1.1,9.9.9.9:5353",
		"--no-title", "--no-wildcard", "--format", "jsonl", "--rate", "200", "-o", "out.jsonl", "-q")

	cfg, err := Load("1.0.0", "test", "2024-01-01")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	testutil.AssertEqual(t, cfg.Core.Target, "example.com", "positional target")
	testutil.AssertTrue(t, cfg.BuiltinDictionary(), "-d without value selects builtin")
	testutil.AssertEqual(t, cfg.Core.Workers, 50, "workers")
	testutil.AssertStrings(t, cfg.DNS.Nameservers, []string{"1.1.1.1", "9.9.9.9:5353"}, "nameservers")
	testutil.AssertFalse(t, cfg.HTTP.Probe, "--no-title disables probing")
	testutil.AssertFalse(t, cfg.DNS.WildcardCheck, "--no-wildcard disables check")
	testutil.AssertEqual(t, cfg.Output.Format, "jsonl", "format")
	testutil.AssertEqual(t, cfg.DNS.Rate, 200.0, "rate")
	testutil.AssertEqual(t, cfg.Output.Path, "out.jsonl", "output path")
	testutil.AssertTrue(t, cfg.Output.UIDisabled, "quiet")
}

func TestLoad_DictionaryPathAttached(t *testing.T) {
	dict := testutil.WriteTempFile(t, "words.txt", "www\n")
	resetCLI(t, "example.com", "--dict="+dict, "--placeholder-hyphen")

	cfg, err := Load("1.0.0", "test", "2024-01-01")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	testutil.AssertEqual(t, cfg.Generation.Dictionary, dict, "dictionary path")
	testutil.AssertTrue(t, cfg.Generation.PlaceholderHyphen, "placeholder hyphen")
}

func TestLoad_DetachedDictionaryPath(t *testing.T) {
	dict := testutil.WriteTempFile(t, "words.txt", "www\n")

	tests := []struct {
		name string
		args []string
	}{
		{"short flag after target", []string{"example.com", "-d", dict}},
		{"long flag before target", []string{"--dict", dict, "example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCLI(t, tt.args...)

			cfg, err := Load("1.0.0", "test", "2024-01-01")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			testutil.AssertEqual(t, cfg.Core.Target, "example.com", "target")
			testutil.AssertEqual(t, cfg.Generation.Dictionary, dict, "dictionary path")
		})
	}
}

func TestLoad_DetachedMissingDictionaryRejected(t *testing.T) {
	resetCLI(t, "example.com", "-d", "missing-words.txt")

	_, err := Load("1.0.0", "test", "2024-01-01")
	if err == nil {
		t.Fatal("expected an error for a dictionary path that does not exist")
	}
	testutil.AssertContains(t, err.Error(), "missing-words.txt", "error names the stray argument")
}

func TestLoad_BareDictBeforeTarget(t *testing.T) {
	resetCLI(t, "-d", "example.com")

	cfg, err := Load("1.0.0", "test", "2024-01-01")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	testutil.AssertEqual(t, cfg.Core.Target, "example.com", "target stays positional")
	testutil.AssertTrue(t, cfg.StrategySpec().DictionaryEnabled, "dictionary mode")
	testutil.AssertEqual(t, cfg.Generation.Dictionary, BuiltinDictionary, "built-in dictionary")
}

func TestAttachDictPath(t *testing.T) {
	dict := testutil.WriteTempFile(t, "words.txt", "www\n")

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"existing file attached", []string{"-d", dict, "example.com"}, []string{"-d=" + dict, "example.com"}},
		{"long form attached", []string{"example.com", "--dict", dict}, []string{"example.com", "--dict=" + dict}},
		{"missing file untouched", []string{"-d", "example.com"}, []string{"-d", "example.com"}},
		{"next is a flag", []string{"-d", "-q", "example.com"}, []string{"-d", "-q", "example.com"}},
		{"after terminator", []string{"--", "-d", dict}, []string{"--", "-d", dict}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertStrings(t, attachDictPath(tt.in), tt.want, "args")
		})
	}
}

func TestLoad_LengthMode(t *testing.T) {
	resetCLI(t, "example.com", "-l", "1-3")

	cfg, err := Load("1.0.0", "test", "2024-01-01")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	testutil.AssertEqual(t, cfg.Generation.MinLength, 1, "min")
	testutil.AssertEqual(t, cfg.Generation.MaxLength, 3, "max")
	testutil.AssertFalse(t, cfg.StrategySpec().DictionaryEnabled, "brute force")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no target", []string{"-d"}, domain.ErrEmptyTarget},
		{"no mode", []string{"example.com"}, domain.ErrModeMissing},
		{"both modes", []string{"example.com", "-d", "-l", "3"}, domain.ErrModeConflict},
		{"bad length", []string{"example.com", "-l", "3-1"}, domain.ErrInvalidLength},
		{"bad format", []string{"example.com", "-d", "--format", "csv"}, domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCLI(t, tt.args...)

			_, err := Load("1.0.0", "test", "2024-01-01")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	resetCLI(t)

	t.Setenv("SUBBURST_TARGET", "example.com")
	t.Setenv("SUBBURST_LENGTH", "2")
	t.Setenv("SUBBURST_WORKERS", "8")
	t.Setenv("SUBBURST_NAMESERVERS", "1.1.1.1, 1.0.0.1")
	t.Setenv("SUBBURST_PROBE", "false")
	t.Setenv("SUBBURST_WILDCARD_CHECK", "off")
	t.Setenv("SUBBURST_DNS_TIMEOUT", "3")
	t.Setenv("SUBBURST_FORMAT", "table")

	cfg, err := Load("1.0.0", "test", "2024-01-01")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	testutil.AssertEqual(t, cfg.Core.Target, "example.com", "target")
	testutil.AssertEqual(t, cfg.Generation.MinLength, 2, "min length")
	testutil.AssertEqual(t, cfg.Generation.MaxLength, 2, "max length")
	testutil.AssertEqual(t, cfg.Core.Workers, 8, "workers")
	testutil.AssertStrings(t, cfg.DNS.Nameservers, []string{"1.1.1.1", "1.0.0.1"}, "nameservers")
	testutil.AssertFalse(t, cfg.HTTP.Probe, "probe")
	testutil.AssertFalse(t, cfg.DNS.WildcardCheck, "wildcard check")
	testutil.AssertEqual(t, cfg.DNS.TimeoutS, 3, "dns timeout")
	testutil.AssertEqual(t, cfg.Output.Format, "table", "format")
}

func TestLoad_Precedence(t *testing.T) {
	file := testutil.WriteTempFile(t, "subburst.yaml", `
core:
  target: yaml.example.com
  workers: 10
generation:
  dictionary: builtin
dns:
  nameservers: ["10.0.0.53"]
  rate: 50
output:
  format: jsonl
`)
	resetCLI(t, "--config", file, "-c", "40")
	t.Setenv("SUBBURST_WORKERS", "20")
	t.Setenv("SUBBURST_RATE", "75")

	cfg, err := Load("1.0.0", "test", "2024-01-01")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	testutil.AssertEqual(t, cfg.ConfigFile, file, "config file recorded")
	testutil.AssertEqual(t, cfg.Core.Target, "yaml.example.com", "yaml only")
	testutil.AssertTrue(t, cfg.BuiltinDictionary(), "yaml dictionary")
	testutil.AssertStrings(t, cfg.DNS.Nameservers, []string{"10.0.0.53"}, "yaml nameservers")
	testutil.AssertEqual(t, cfg.Output.Format, "jsonl", "yaml format")
	testutil.AssertEqual(t, cfg.DNS.Rate, 75.0, "env beats yaml")
	testutil.AssertEqual(t, cfg.Core.Workers, 40, "flag beats env")

	// defaults no pisan el YAML
	testutil.AssertEqual(t, cfg.DNS.TimeoutS, 5, "untouched default")
	testutil.AssertTrue(t, cfg.HTTP.Probe, "untouched default probe")
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := DefaultConfig()

	err := LoadFile("/nonexistent/subburst.yaml", &cfg)
	testutil.AssertError(t, err, "missing file")

	bad := testutil.WriteTempFile(t, "bad.yaml", "core: [unclosed")
	err = LoadFile(bad, &cfg)
	testutil.AssertError(t, err, "malformed yaml")
}

func TestHelpText_DocumentsDictionaryForms(t *testing.T) {
	testutil.AssertContains(t, helpText, "-d words.txt      (words.txt must exist)", "detached form")
	testutil.AssertContains(t, helpText, "Classes do not include '-' unless --placeholder-hyphen", "hyphen default")
}
