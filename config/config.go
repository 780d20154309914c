package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"locator/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Defaults applied by New when a section or field is left empty
const (
	GeocodeCacheProviderMemory = "memory"
	GeocodeCacheProviderRedis  = "redis"

	DefaultMunicipalitiesKey = "municipios.csv"
	DefaultGeocodeCacheKey   = "geocode_cache.json"
	DefaultSyncSourceKey     = "App_transportadora.xlsx"
	DefaultQueueName         = "carrier_sync"
	DefaultQueueMaxRetries   = 5
	DefaultGeocoderCountry   = "Brazil"
	DefaultFuzzyThreshold    = 80

	DefaultGeocoderTimeout = 8 * time.Second

	DefaultSlowQueryThreshold    = 200 * time.Millisecond
	DefaultMaxLoggedSQLLength    = 2048
	DefaultPoolMonitorInterval   = 5 * time.Second
	DefaultPoolWaitWarnThreshold = 50 * time.Millisecond
	MinGeocoderTimeout     = 5 * time.Second
	MaxGeocoderTimeout     = 10 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Store tunes how the carrier store is observed and verified
	Store *StoreConfig `json:"store" yaml:"store"`

	// Municipalities configures the canonical municipality reference table
	Municipalities *MunicipalitiesConfig `json:"municipalities" yaml:"municipalities"`

	// GeocodeCache configures the durable geocode cache backend
	GeocodeCache *GeocodeCacheConfig `json:"geocodeCache" yaml:"geocodeCache"`

	// Geocoder configures the optional external geocoding provider
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// Resolver tunes the city/state resolution pipeline
	Resolver *ResolverConfig `json:"resolver" yaml:"resolver"`

	// Sync configures the carrier spreadsheet synchronization job
	Sync *SyncConfig `json:"sync" yaml:"sync"`

	// Queue configures the RabbitMQ queue that triggers synchronization
	Queue *QueueConfig `json:"queue" yaml:"queue"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig tunes query logging, pool monitoring and the schema check of the carrier store
type StoreConfig struct {
	// Queries slower than this are logged at warn level; zero disables slow-query logging
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// Logged SQL is cut to this many bytes
	MaxLoggedSQLLength int `json:"maxLoggedSqlLength" yaml:"maxLoggedSqlLength"`

	PoolMonitorInterval   time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
	PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`

	// Abort startup instead of logging when app_transportadoras lacks a required column
	FailOnSchemaMismatch bool `json:"failOnSchemaMismatch" yaml:"failOnSchemaMismatch"`
}

// MunicipalitiesConfig locates the municipality CSV inside a blob bucket
type MunicipalitiesConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. "file:///data" or "gs://bucket"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Object key of the CSV inside the bucket
	Key string `json:"key" yaml:"key"`
}

// GeocodeCacheConfig selects and configures the geocode cache backend
type GeocodeCacheConfig struct {
	// Provider type: "memory" for the blob-snapshotted map or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// Bucket URL and object key of the JSON snapshot (memory provider)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Key       string `json:"key" yaml:"key"`

	// Redis settings (redis provider)
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the connection to a Redis server
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// Hash key holding every cache entry
	HashKey string `json:"hashKey" yaml:"hashKey"`
}

// GeocoderConfig defines the external geocoding provider
type GeocoderConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Country qualifier appended to every request
	Country string `json:"country" yaml:"country"`

	// Request timeout, clamped to [5s, 10s]
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ResolverConfig tunes the resolution pipeline
type ResolverConfig struct {
	// Minimum similarity score (0-100) accepted by the fuzzy fallback
	FuzzyThreshold int `json:"fuzzyThreshold" yaml:"fuzzyThreshold"`
}

// SyncConfig defines the spreadsheet synchronization job
type SyncConfig struct {
	// Bucket URL and object key of the carrier spreadsheet (.xlsx)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Key       string `json:"key" yaml:"key"`

	// Sheet name; empty means the first sheet
	Sheet string `json:"sheet" yaml:"sheet"`

	// Apply the resolver fuzzy match when the exact municipality lookup fails
	FuzzyFallback bool `json:"fuzzyFallback" yaml:"fuzzyFallback"`

	// Expose POST /api/v1/sync on the query API
	HTTPTrigger bool `json:"httpTrigger" yaml:"httpTrigger"`
}

// QueueConfig defines the RabbitMQ sync trigger queue
type QueueConfig struct {
	URL      string `json:"url" yaml:"url"`
	Name     string `json:"name" yaml:"name"`
	Prefetch int    `json:"prefetch" yaml:"prefetch"`

	// Redeliveries of a retryable failure before the message is rejected
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil configuration.
func applyDefaults(cfg *Config) {
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{SlowQueryThreshold: DefaultSlowQueryThreshold}
	}
	if cfg.Store.SlowQueryThreshold < 0 {
		cfg.Store.SlowQueryThreshold = DefaultSlowQueryThreshold
	}
	if cfg.Store.MaxLoggedSQLLength <= 0 {
		cfg.Store.MaxLoggedSQLLength = DefaultMaxLoggedSQLLength
	}
	if cfg.Store.PoolMonitorInterval <= 0 {
		cfg.Store.PoolMonitorInterval = DefaultPoolMonitorInterval
	}
	if cfg.Store.PoolWaitWarnThreshold <= 0 {
		cfg.Store.PoolWaitWarnThreshold = DefaultPoolWaitWarnThreshold
	}

	if cfg.Municipalities == nil {
		cfg.Municipalities = &MunicipalitiesConfig{}
	}
	if cfg.Municipalities.Key == "" {
		cfg.Municipalities.Key = DefaultMunicipalitiesKey
	}

	if cfg.GeocodeCache == nil {
		cfg.GeocodeCache = &GeocodeCacheConfig{}
	}
	if cfg.GeocodeCache.Provider == "" {
		cfg.GeocodeCache.Provider = GeocodeCacheProviderMemory
	}
	if cfg.GeocodeCache.Key == "" {
		cfg.GeocodeCache.Key = DefaultGeocodeCacheKey
	}

	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{}
	}
	if cfg.Geocoder.Country == "" {
		cfg.Geocoder.Country = DefaultGeocoderCountry
	}
	cfg.Geocoder.Timeout = ClampGeocoderTimeout(cfg.Geocoder.Timeout)

	if cfg.Resolver == nil {
		cfg.Resolver = &ResolverConfig{}
	}
	if cfg.Resolver.FuzzyThreshold <= 0 || cfg.Resolver.FuzzyThreshold > 100 {
		cfg.Resolver.FuzzyThreshold = DefaultFuzzyThreshold
	}

	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	if cfg.Sync.Key == "" {
		cfg.Sync.Key = DefaultSyncSourceKey
	}

	if cfg.Queue == nil {
		cfg.Queue = &QueueConfig{}
	}
	if cfg.Queue.Name == "" {
		cfg.Queue.Name = DefaultQueueName
	}
	if cfg.Queue.Prefetch <= 0 {
		cfg.Queue.Prefetch = 1
	}
	if cfg.Queue.MaxRetries <= 0 {
		cfg.Queue.MaxRetries = DefaultQueueMaxRetries
	}
}

// ClampGeocoderTimeout keeps the geocoding request timeout inside [5s, 10s], defaulting to 8s.
func ClampGeocoderTimeout(timeout time.Duration) time.Duration {
	switch {
	case timeout == 0:
		return DefaultGeocoderTimeout
	case timeout < MinGeocoderTimeout:
		return MinGeocoderTimeout
	case timeout > MaxGeocoderTimeout:
		return MaxGeocoderTimeout
	default:
		return timeout
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
