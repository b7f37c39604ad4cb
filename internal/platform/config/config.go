// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"subburst/internal/core/candidates"
	"subburst/internal/core/domain"
	"subburst/internal/platform/errors"
	"subburst/internal/platform/logx"
	"subburst/internal/platform/validator"
)

// BuiltinDictionary selecciona el diccionario embebido (valor de "-d" sin argumento).
const BuiltinDictionary = "builtin"

// EnvPrefix prefijo de todas las variables de entorno.
const EnvPrefix = "SUBBURST_"

type Config struct {
	Core       CoreConfig       `yaml:"core"`
	Generation GenerationConfig `yaml:"generation"`
	DNS        DNSConfig        `yaml:"dns"`
	HTTP       HTTPConfig       `yaml:"http"`
	Output     OutputConfig     `yaml:"output"`

	// ConfigFile ruta del YAML cargado (vacío = ninguno)
	ConfigFile   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
}

type CoreConfig struct {
	Target   string `yaml:"target"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

type GenerationConfig struct {
	// Dictionary: "" = modo diccionario desactivado, BuiltinDictionary o una ruta
	Dictionary        string `yaml:"dictionary"`
	Length            string `yaml:"length"` // "N" o "A-B"
	PlaceholderHyphen bool   `yaml:"placeholder_hyphen"`

	// derivados de Length en normalize
	MinLength int `yaml:"-"`
	MaxLength int `yaml:"-"`
}

type DNSConfig struct {
	Nameservers   []string `yaml:"nameservers"`
	TimeoutS      int      `yaml:"timeout"`
	Rate          float64  `yaml:"rate"` // consultas/s, 0 = sin límite
	WildcardCheck bool     `yaml:"wildcard_check"`
}

type HTTPConfig struct {
	Probe     bool   `yaml:"probe"`
	TimeoutS  int    `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}

type OutputConfig struct {
	Path       string `yaml:"path"` // vacío = "<target>.txt"
	Format     string `yaml:"format"`
	UIDisabled bool   `yaml:"quiet"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Core: CoreConfig{
			Workers:  25,
			LogLevel: "info",
		},
		DNS: DNSConfig{
			Nameservers:   []string{"8.8.8.8", "8.8.4.4"},
			TimeoutS:      5,
			Rate:          0,
			WildcardCheck: true,
		},
		HTTP: HTTPConfig{
			Probe:     true,
			TimeoutS:  9,
			UserAgent: "subburst/1.0",
		},
		Output: OutputConfig{
			Format: string(domain.OutputText),
		},
	}
}

// Load inicializa la configuración: defaults -> YAML -> ENV -> FLAGS (flags tienen prioridad).
// -h y -v imprimen y terminan el proceso.
func Load(version, commit, date string) (Config, error) {
	cfg := DefaultConfig()

	fs := pflag.CommandLine
	fv := registerFlags(fs)
	fs.Usage = func() { fmt.Fprint(os.Stderr, helpText) }

	if err := fs.Parse(attachDictPath(os.Args[1:])); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			PrintHelp()
		}
		return cfg, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if fv.help {
		PrintHelp()
	}
	if fv.version {
		PrintVersion(version, commit, date)
	}

	// YAML
	path := fv.configFile
	if !fs.Changed("config") {
		path = getenv(EnvPrefix+"CONFIG", "")
	}
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	// ENV
	loadFromEnv(&cfg)

	// FLAGS
	if err := applyFlags(&cfg, fs, fv); err != nil {
		return cfg, err
	}

	if err := normalize(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile aplica un archivo YAML sobre cfg. Solo las claves presentes sobrescriben.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "read config %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "parse config %s: %v", path, err)
	}
	cfg.ConfigFile = path
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvPrefix+"TARGET", ""); v != "" {
		cfg.Core.Target = v
	}
	if v := getenv(EnvPrefix+"WORKERS", ""); v != "" {
		cfg.Core.Workers = parseInt(v, cfg.Core.Workers)
	}
	if v := getenv(logx.EnvLevel, ""); v != "" {
		cfg.Core.LogLevel = v
	}

	if v := getenv(EnvPrefix+"DICT", ""); v != "" {
		cfg.Generation.Dictionary = v
	}
	if v := getenv(EnvPrefix+"LENGTH", ""); v != "" {
		cfg.Generation.Length = v
	}
	if v := getenv(EnvPrefix+"PLACEHOLDER_HYPHEN", ""); v != "" {
		cfg.Generation.PlaceholderHyphen = parseBool(v)
	}

	if v := getenv(EnvPrefix+"NAMESERVERS", ""); v != "" {
		cfg.DNS.Nameservers = splitCSV(v)
	}
	if v := getenv(EnvPrefix+"DNS_TIMEOUT", ""); v != "" {
		cfg.DNS.TimeoutS = parseInt(v, cfg.DNS.TimeoutS)
	}
	if v := getenv(EnvPrefix+"RATE", ""); v != "" {
		cfg.DNS.Rate = parseFloat(v, cfg.DNS.Rate)
	}
	if v := getenv(EnvPrefix+"WILDCARD_CHECK", ""); v != "" {
		cfg.DNS.WildcardCheck = parseBool(v)
	}

	if v := getenv(EnvPrefix+"PROBE", ""); v != "" {
		cfg.HTTP.Probe = parseBool(v)
	}
	if v := getenv(EnvPrefix+"HTTP_TIMEOUT", ""); v != "" {
		cfg.HTTP.TimeoutS = parseInt(v, cfg.HTTP.TimeoutS)
	}
	if v := getenv(EnvPrefix+"USER_AGENT", ""); v != "" {
		cfg.HTTP.UserAgent = v
	}

	if v := getenv(EnvPrefix+"OUTPUT", ""); v != "" {
		cfg.Output.Path = v
	}
	if v := getenv(EnvPrefix+"FORMAT", ""); v != "" {
		cfg.Output.Format = v
	}
	if v := getenv(EnvPrefix+"QUIET", ""); v != "" {
		cfg.Output.UIDisabled = parseBool(v)
	}
}

// flagValues guarda lo parseado; solo se aplican los flags que el usuario cambió.
type flagValues struct {
	dict              string
	length            string
	output            string
	workers           int
	nameservers       []string
	noWildcard        bool
	noTitle           bool
	format            string
	rate              float64
	dnsTimeout        int
	httpTimeout       int
	placeholderHyphen bool
	configFile        string
	quiet             bool
	logLevel          string
	version           bool
	help              bool
}

func registerFlags(fs *pflag.FlagSet) *flagValues {
	fv := &flagValues{}

	fs.StringVarP(&fv.dict, "dict", "d", "", "Dictionary mode; without value uses the built-in dictionary")
	fs.Lookup("dict").NoOptDefVal = BuiltinDictionary
	fs.StringVarP(&fv.length, "length", "l", "", "Brute-force length: N or A-B")
	fs.StringVarP(&fv.output, "output", "o", "", "Output file (default: <target>.txt)")
	fs.IntVarP(&fv.workers, "task-count", "c", 25, "Number of resolver workers")
	fs.StringSliceVarP(&fv.nameservers, "nameserver", "n", nil, "Comma-separated nameserver IPs")
	fs.BoolVar(&fv.noWildcard, "no-wildcard", false, "Skip the wildcard DNS check")
	fs.BoolVar(&fv.noTitle, "no-title", false, "Skip HTTP probing (status code and title)")
	fs.StringVar(&fv.format, "format", string(domain.OutputText), "Output format: text, jsonl or table")
	fs.Float64Var(&fv.rate, "rate", 0, "Max DNS queries per second (0 = unlimited)")
	fs.IntVar(&fv.dnsTimeout, "dns-timeout", 5, "DNS query timeout in seconds")
	fs.IntVar(&fv.httpTimeout, "http-timeout", 9, "HTTP probe timeout in seconds")
	fs.BoolVar(&fv.placeholderHyphen, "placeholder-hyphen", false, "Include '-' in %NUMBER%, %ALPHA% and %ALPHANUMBER%")
	fs.StringVar(&fv.configFile, "config", "", "YAML configuration file")
	fs.BoolVarP(&fv.quiet, "quiet", "q", false, "Disable the interactive UI (logs only)")
	fs.StringVar(&fv.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVarP(&fv.version, "version", "v", false, "Print version information and exit")
	fs.BoolVarP(&fv.help, "help", "h", false, "Show this help message")

	return fv
}

// attachDictPath reescribe "-d PATH" / "--dict PATH" como "-d=PATH" cuando PATH es un
// archivo existente. Sin eso, NoOptDefVal haría que PATH se leyera como el target.
// Si PATH no existe, -d sigue significando el diccionario incluido.
func attachDictPath(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if (arg == "-d" || arg == "--dict") && i+1 < len(args) {
			next := args[i+1]
			if !strings.HasPrefix(next, "-") && isRegularFile(next) {
				out = append(out, arg+"="+next)
				i++
				continue
			}
		}
		out = append(out, arg)
	}
	return out
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func applyFlags(cfg *Config, fs *pflag.FlagSet, fv *flagValues) error {
	switch args := fs.Args(); len(args) {
	case 0:
	case 1:
		cfg.Core.Target = args[0]
	default:
		return errors.Wrapf(errors.ErrInvalidInput,
			"unexpected argument %q (dictionary file not found; use --dict=PATH or -d=PATH)", args[1])
	}

	if fs.Changed("dict") {
		cfg.Generation.Dictionary = fv.dict
	}
	if fs.Changed("length") {
		cfg.Generation.Length = fv.length
	}
	if fs.Changed("output") {
		cfg.Output.Path = fv.output
	}
	if fs.Changed("task-count") {
		cfg.Core.Workers = fv.workers
	}
	if fs.Changed("nameserver") {
		cfg.DNS.Nameservers = fv.nameservers
	}
	if fs.Changed("no-wildcard") {
		cfg.DNS.WildcardCheck = !fv.noWildcard
	}
	if fs.Changed("no-title") {
		cfg.HTTP.Probe = !fv.noTitle
	}
	if fs.Changed("format") {
		cfg.Output.Format = fv.format
	}
	if fs.Changed("rate") {
		cfg.DNS.Rate = fv.rate
	}
	if fs.Changed("dns-timeout") {
		cfg.DNS.TimeoutS = fv.dnsTimeout
	}
	if fs.Changed("http-timeout") {
		cfg.HTTP.TimeoutS = fv.httpTimeout
	}
	if fs.Changed("placeholder-hyphen") {
		cfg.Generation.PlaceholderHyphen = fv.placeholderHyphen
	}
	if fs.Changed("quiet") {
		cfg.Output.UIDisabled = fv.quiet
	}
	if fs.Changed("log-level") {
		cfg.Core.LogLevel = fv.logLevel
	}
	if fs.Changed("config") {
		cfg.ConfigFile = fv.configFile
	}
	cfg.PrintVersion = fv.version
	return nil
}

func normalize(c *Config) error {
	c.Core.Target = validator.NormalizeDomain(c.Core.Target)
	c.Core.LogLevel = strings.ToLower(strings.TrimSpace(c.Core.LogLevel))
	c.Generation.Dictionary = strings.TrimSpace(c.Generation.Dictionary)
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = string(domain.OutputText)
	}

	ns := c.DNS.Nameservers[:0:0]
	for _, n := range c.DNS.Nameservers {
		if n = strings.TrimSpace(n); n != "" {
			ns = append(ns, n)
		}
	}
	c.DNS.Nameservers = ns

	if l := strings.TrimSpace(c.Generation.Length); l != "" {
		min, max, err := ParseLength(l)
		if err != nil {
			return err
		}
		c.Generation.Length = l
		c.Generation.MinLength, c.Generation.MaxLength = min, max
	}
	return nil
}

// ParseLength interpreta "N" (longitud fija) o "A-B" (rango con 0 < A < B).
func ParseLength(s string) (min, max int, err error) {
	s = strings.TrimSpace(s)
	lo, hi, isRange := strings.Cut(s, "-")

	min, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidLength, s)
	}
	max = min
	if isRange {
		if max, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidLength, s)
		}
		if max <= min {
			return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidLength, s)
		}
	}
	if min < 1 || max > candidates.MaxLabelLength {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidLength, s)
	}
	return min, max, nil
}

// Validate verifica las precondiciones que el pipeline asume.
func (c Config) Validate() error {
	if err := domain.NewTarget(c.Core.Target).Validate(); err != nil {
		return err
	}

	hasDict := c.Generation.Dictionary != ""
	hasLength := c.Generation.Length != ""
	switch {
	case hasDict && hasLength:
		return domain.ErrModeConflict
	case !hasDict && !hasLength:
		return domain.ErrModeMissing
	}

	if hasDict && !c.BuiltinDictionary() {
		info, err := os.Stat(c.Generation.Dictionary)
		if err != nil {
			return fmt.Errorf("%w: dictionary %s: %v", domain.ErrInvalidConfig, c.Generation.Dictionary, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: dictionary %s is a directory", domain.ErrInvalidConfig, c.Generation.Dictionary)
		}
	}

	if c.Core.Workers < 1 {
		return fmt.Errorf("%w: task count must be >= 1, got %d", domain.ErrInvalidConfig, c.Core.Workers)
	}
	if !domain.OutputFormat(c.Output.Format).IsValid() {
		return fmt.Errorf("%w: unknown output format %q", domain.ErrInvalidConfig, c.Output.Format)
	}
	if c.DNS.TimeoutS < 1 || c.HTTP.TimeoutS < 1 {
		return fmt.Errorf("%w: timeouts must be >= 1 second", domain.ErrInvalidConfig)
	}
	if c.DNS.Rate < 0 {
		return fmt.Errorf("%w: rate must be >= 0", domain.ErrInvalidConfig)
	}
	switch c.Core.LogLevel {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidConfig, c.Core.LogLevel)
	}
	return nil
}

// BuiltinDictionary reporta si el modo diccionario usa el diccionario embebido.
func (c Config) BuiltinDictionary() bool {
	return c.Generation.Dictionary == BuiltinDictionary
}

// StrategySpec traduce la configuración a la estrategia de generación.
func (c Config) StrategySpec() candidates.Spec {
	spec := candidates.Spec{
		DictionaryEnabled: c.Generation.Dictionary != "",
		PlaceholderHyphen: c.Generation.PlaceholderHyphen,
		MinLength:         c.Generation.MinLength,
		MaxLength:         c.Generation.MaxLength,
	}
	if spec.DictionaryEnabled && !c.BuiltinDictionary() {
		spec.DictionaryPath = c.Generation.Dictionary
	}
	return spec
}

// OutputFormat retorna el formato de salida tipado.
func (c Config) OutputFormat() domain.OutputFormat {
	return domain.OutputFormat(c.Output.Format)
}

// DNSTimeout devuelve el timeout DNS como time.Duration.
func (c Config) DNSTimeout() time.Duration {
	return time.Duration(c.DNS.TimeoutS) * time.Second
}

// HTTPTimeout devuelve el timeout del sondeo HTTP como time.Duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func splitCSV(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
