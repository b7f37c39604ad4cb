// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"
	"runtime"
)

const helpText = `
subburst - Concurrent DNS subdomain enumerator

USAGE:
  subburst <domain> (-d[=PATH] | -l N|A-B) [options]

IMPORTANT:
  -d alone selects the built-in dictionary. A detached path (-d words.txt)
  is taken as the dictionary only when that file exists; otherwise it is
  read as the target. The attached form is never ambiguous:

  ✓  subburst example.com -d=words.txt
  ✓  subburst example.com --dict=words.txt
  ✓  subburst example.com -d words.txt      (words.txt must exist)
  ✓  subburst example.com -d                (built-in dictionary)

GENERATION (exactly one):
  -d, --dict[=PATH]          Dictionary mode; built-in list when PATH is omitted
  -l, --length N|A-B         Brute force every label of length N, or A to B (0 < A < B)
  --placeholder-hyphen       Add '-' to %NUMBER%, %ALPHA% and %ALPHANUMBER% (default: false)

DNS OPTIONS:
  -c, --task-count int       Number of resolver workers (default: 25)
  -n, --nameserver list      Comma-separated nameservers, ip or ip:port (default: 8.8.8.8,8.8.4.4)
  --dns-timeout int          Per-query timeout in seconds (default: 5)
  --rate float               Max DNS queries per second, 0=unlimited (default: 0)
  --no-wildcard              Skip the wildcard DNS check (default: false)

HTTP OPTIONS:
  --no-title                 Do not probe http://<subdomain> for status and title
  --http-timeout int         Probe timeout in seconds (default: 9)

OUTPUT OPTIONS:
  -o, --output string        Output file, truncated on start (default: <domain>.txt)
  --format string            text, jsonl or table (default: text)
  -q, --quiet                Disable the interactive UI, logs only (default: false)
  --log-level string         debug, info, warn, error (default: info)

CONFIG:
  --config string            YAML file applied before environment and flags

INFO:
  -v, --version              Print version information and exit
  -h, --help                 Show this help message

EXAMPLES:
  Built-in dictionary:
    subburst example.com -d

  Custom dictionary with 50 workers:
    subburst example.com --dict=words.txt -c 50

  Every 1-3 character label, DNS only:
    subburst example.com -l 1-3 --no-title

  Private resolvers, rate limited, JSON lines:
    subburst example.com -d -n 10.0.0.53,10.0.0.54:5353 --rate 200 --format jsonl

ENVIRONMENT VARIABLES:
  SUBBURST_TARGET                   Target domain
  SUBBURST_DICT=builtin|/path       Dictionary mode
  SUBBURST_LENGTH=1-3               Brute-force mode
  SUBBURST_WORKERS=50               Number of workers
  SUBBURST_NAMESERVERS=1.1.1.1,...  Nameservers
  SUBBURST_DNS_TIMEOUT=5            DNS timeout in seconds
  SUBBURST_RATE=200                 DNS queries per second
  SUBBURST_WILDCARD_CHECK=false     Wildcard check
  SUBBURST_PROBE=false              HTTP probing
  SUBBURST_HTTP_TIMEOUT=9           HTTP timeout in seconds
  SUBBURST_USER_AGENT=...           HTTP User-Agent
  SUBBURST_PLACEHOLDER_HYPHEN=true  Hyphen in placeholder pools
  SUBBURST_OUTPUT=/path             Output file
  SUBBURST_FORMAT=jsonl             Output format
  SUBBURST_QUIET=true               Disable the UI
  SUBBURST_LOG_LEVEL=debug          Log level
  SUBBURST_CONFIG=/path             YAML config file

  Note: CLI flags override environment variables, which override the YAML file.

DICTIONARY PLACEHOLDERS:
  %NUMBER%        0-9
  %ALPHA%         a-z
  %ALPHANUMBER%   a-z and 0-9
  A line with several placeholders expands to every combination,
  e.g. "www%NUMBER%" yields www0 .. www9.
  Classes do not include '-' unless --placeholder-hyphen is set, so
  "www%NUMBER%" gives 10 labels, or 11 (with "www-") when it is. Set the
  flag to match tools whose placeholder pools always carry the hyphen.

OUTPUT:
  One line per discovered subdomain:
    api.example.com - [93.184.216.34] - ["edge.example.net"] - 200 - "API"

EXIT CODES:
  0  run completed
  1  dictionary unreadable, wildcard DNS detected, output error or interrupted
  2  invalid arguments or configuration
`

// PrintHelp prints the custom help message and exits.
func PrintHelp() {
	fmt.Fprint(os.Stdout, helpText)
	os.Exit(0)
}

// PrintVersion prints version information and exits.
func PrintVersion(version, commit, date string) {
	fmt.Printf("subburst %s\n", version)
	fmt.Printf("  Commit:  %s\n", commit)
	fmt.Printf("  Built:   %s\n", date)
	fmt.Printf("  Go:      %s\n", getGoVersion())
	os.Exit(0)
}

func getGoVersion() string {
	return runtime.Version()
}
