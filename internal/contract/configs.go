package contract

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/gitcredit/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit   = 25
	MaxResultLimit       = 1000
	DefaultTopFilesLimit = 5
	DefaultPrecision     = 1
)

// CacheGranularity defines the time granularity for caching commit
// history. It ensures consistent cache key generation and time window
// alignment across the application and tests.
const CacheGranularity = time.Hour

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath  string
	StartTime time.Time
	EndTime   time.Time

	GroupBy             schema.GroupByMode
	SortBy              schema.SortMode
	SimilarityThreshold float64
	AliasFile           string
	Aliases             *schema.AliasConfig

	ResultLimit   int
	TopFilesLimit int
	Precision     int
	Output        schema.OutputMode
	OutputFile    string
	Width         int // Terminal width override (0 = auto-detect)
	UseColors     bool

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	GroupBy          string  `mapstructure:"group-by"`
	SortBy           string  `mapstructure:"sort"`
	Threshold        float64 `mapstructure:"threshold"`
	AliasFile        string  `mapstructure:"aliases"`
	Limit            int     `mapstructure:"limit"`
	TopFiles         int     `mapstructure:"top-files"`
	Start            string  `mapstructure:"start"`
	End              string  `mapstructure:"end"`
	Precision        int     `mapstructure:"precision"`
	Output           string  `mapstructure:"output"`
	OutputFile       string  `mapstructure:"output-file"`
	Width            int     `mapstructure:"width"`
	Color            string  `mapstructure:"color"`
	CacheBackend     string  `mapstructure:"cache-backend"`
	CacheDBConnect   string  `mapstructure:"cache-db-connect"`
	HistoryBackend   string  `mapstructure:"history-backend"`
	HistoryDBConnect string  `mapstructure:"history-db-connect"`
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Clone returns a copy of the config that callers can mutate without
// affecting the original. The alias config is copied as well since
// handlers may swap it out per request.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Aliases != nil {
		aliases := *c.Aliases
		clone.Aliases = &aliases
	}
	return &clone
}

// GetAnalysisStartTime returns the configured start time, truncated to
// the caching granularity so that cache keys stay stable within an hour.
func (c *Config) GetAnalysisStartTime() time.Time {
	return c.StartTime.Truncate(CacheGranularity)
}

// GetAnalysisEndTime returns the configured end time, truncated to the
// caching granularity.
func (c *Config) GetAnalysisEndTime() time.Time {
	return c.EndTime.Truncate(CacheGranularity)
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config struct. Validation happens once
// here; the analysis pipeline assumes validated values.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	loadAliasConfig(cfg, input)
	cfg.RepoPath = input.RepoPathStr
	return nil
}

// validateSimpleInputs checks the enum and range inputs.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.GroupBy = schema.GroupByMode(strings.ToLower(input.GroupBy))
	if _, ok := schema.ValidGroupByModes[cfg.GroupBy]; !ok {
		return fmt.Errorf("invalid group-by '%s'. must be email or name", input.GroupBy)
	}

	cfg.SortBy = schema.SortMode(strings.ToLower(input.SortBy))
	if _, ok := schema.ValidSortModes[cfg.SortBy]; !ok {
		return fmt.Errorf("invalid sort '%s'. must be changes, commits, additions or deletions", input.SortBy)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output '%s'. must be text, csv or json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Threshold < 0 || input.Threshold > 1 {
		return fmt.Errorf("similarity threshold %.2f is out of range [0, 1]", input.Threshold)
	}
	cfg.SimilarityThreshold = input.Threshold

	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = input.Limit

	cfg.TopFilesLimit = input.TopFiles
	if cfg.TopFilesLimit < 1 {
		cfg.TopFilesLimit = DefaultTopFilesLimit
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 2 {
		cfg.Precision = 2
	}

	cfg.Width = input.Width
	cfg.UseColors = parseBoolString(input.Color, true)
	cfg.AliasFile = input.AliasFile
	return nil
}

// ParseTimeInput parses a user-supplied timestamp, accepting RFC3339
// or a bare YYYY-MM-DD date.
func ParseTimeInput(s string) (time.Time, error) {
	if t, err := time.Parse(DateTimeFormat, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// processTimeRange parses the optional start/end dates.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	if input.Start != "" {
		t, err := ParseTimeInput(input.Start)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", input.Start, err)
		}
		cfg.StartTime = t
	}
	if input.End != "" {
		t, err := ParseTimeInput(input.End)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", input.End, err)
		}
		cfg.EndTime = t
	}
	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.EndTime.Before(cfg.StartTime) {
		return fmt.Errorf("end date %s is before start date %s", input.End, input.Start)
	}
	return nil
}

// validateBackendConfigs validates cache and history backend settings.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if input.HistoryBackend == "" {
		cfg.HistoryBackend = schema.NoneBackend
	} else if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	// Cache and history must not collide on the same SQLite file.
	if cfg.CacheBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
		cachePath := cfg.CacheDBConnect
		if cachePath == "" {
			cachePath = GetCacheDBFilePath()
		}
		historyPath := cfg.HistoryDBConnect
		if historyPath == "" {
			historyPath = GetHistoryDBFilePath()
		}
		if cachePath == historyPath {
			return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cachePath)
		}
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// loadAliasConfig reads the optional alias JSON file. A missing or
// malformed file degrades to an empty configuration with a warning,
// never an error.
func loadAliasConfig(cfg *Config, input *ConfigRawInput) {
	cfg.Aliases = &schema.AliasConfig{}
	if input.AliasFile == "" {
		return
	}
	data, err := os.ReadFile(input.AliasFile)
	if err != nil {
		LogWarn(fmt.Sprintf("could not read alias file %q, ignoring", input.AliasFile), err)
		return
	}
	var aliases schema.AliasConfig
	if err := json.Unmarshal(data, &aliases); err != nil {
		LogWarn(fmt.Sprintf("could not parse alias file %q, ignoring", input.AliasFile), err)
		return
	}
	cfg.Aliases = &aliases
}

// parseBoolString interprets yes/no style flag values.
func parseBoolString(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}
