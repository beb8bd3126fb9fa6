package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"logistics/internal/adapters/out/geocoding"
	"logistics/internal/adapters/out/notification"
	"logistics/internal/core/domain/services"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix marks environment variables that override config.yaml.
	// DISPATCH_DB_PASSWORD overrides db.password, DISPATCH_DISPATCH_GRACE_PERIOD
	// overrides dispatch.gracePeriod.
	EnvPrefix = "DISPATCH_"

	defaultConfigName = "config.yaml"
)

type Config struct {
	HTTP         HTTPConfig         `koanf:"http"`
	DB           DBConfig           `koanf:"db"`
	Log          LogConfig          `koanf:"log"`
	Dispatch     DispatchConfig     `koanf:"dispatch"`
	Geocoding    GeocodingConfig    `koanf:"geocoding"`
	Notification NotificationConfig `koanf:"notification"`
	Jobs         JobsConfig         `koanf:"jobs"`
}

type HTTPConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"readTimeout"`
	WriteTimeout    time.Duration `koanf:"writeTimeout"`
	ShutdownTimeout time.Duration `koanf:"shutdownTimeout"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

type DBConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslMode"`
}

// DSN renders the keyword/value connection string understood by pgx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

// DispatchConfig holds the tunables of driver scoring, sequencing and route metrics.
type DispatchConfig struct {
	GracePeriod       time.Duration `koanf:"gracePeriod"`
	WorkloadPenaltyKm float64       `koanf:"workloadPenaltyKm"`
	MaxDailyTasks     int           `koanf:"maxDailyTasks"`
	DefaultDistanceKm float64       `koanf:"defaultDistanceKm"`
	AverageSpeedKmh   float64       `koanf:"averageSpeedKmh"`
	DwellTime         time.Duration `koanf:"dwellTime"`
	Timezone          string        `koanf:"timezone"`
}

// NearestScoring and BestScoring are the two ranking profiles exposed by the API.
func (c DispatchConfig) NearestScoring() services.ScoringConfig {
	return services.NearestScoring(c.DefaultDistanceKm)
}

func (c DispatchConfig) BestScoring() services.ScoringConfig {
	return services.BestScoring(c.WorkloadPenaltyKm, c.MaxDailyTasks, c.DefaultDistanceKm)
}

// Location resolves the timezone that decides the calendar day of "today".
func (c DispatchConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", c.Timezone)
	}
	return loc, nil
}

type GeocodingConfig struct {
	BaseURL      string        `koanf:"baseUrl"`
	UserAgent    string        `koanf:"userAgent"`
	CountryCodes string        `koanf:"countryCodes"`
	Timeout      time.Duration `koanf:"timeout"`
	MinInterval  time.Duration `koanf:"minInterval"`
}

func (c GeocodingConfig) Client() geocoding.Config {
	return geocoding.Config{
		BaseURL:      c.BaseURL,
		UserAgent:    c.UserAgent,
		CountryCodes: c.CountryCodes,
		Timeout:      c.Timeout,
		MinInterval:  c.MinInterval,
	}
}

type NotificationConfig struct {
	// Provider is one of log, http or pubsub.
	Provider     string `koanf:"provider"`
	HTTPEndpoint string `koanf:"httpEndpoint"`
	ProjectID    string `koanf:"projectId"`
	TopicID      string `koanf:"topicId"`
}

func (c NotificationConfig) Sender() notification.Config {
	return notification.Config{
		Provider:     c.Provider,
		HTTPEndpoint: c.HTTPEndpoint,
		ProjectID:    c.ProjectID,
		TopicID:      c.TopicID,
	}
}

type JobsConfig struct {
	GeocodeRetry GeocodeRetryJobConfig `koanf:"geocodeRetry"`
	AutoDispatch AutoDispatchJobConfig `koanf:"autoDispatch"`
}

type GeocodeRetryJobConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Schedule  string `koanf:"schedule"`
	BatchSize int    `koanf:"batchSize"`
}

type AutoDispatchJobConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Schedule string `koanf:"schedule"`
}

func defaults() map[string]any {
	return map[string]any{
		"http.port":            8080,
		"http.readTimeout":     "15s",
		"http.writeTimeout":    "15s",
		"http.shutdownTimeout": "10s",

		"db.host":     "localhost",
		"db.port":     5432,
		"db.user":     "postgres",
		"db.password": "",
		"db.name":     "dispatch",
		"db.sslMode":  "disable",

		"log.level":  "info",
		"log.pretty": false,

		"dispatch.gracePeriod":       services.DefaultGracePeriod.String(),
		"dispatch.workloadPenaltyKm": 2.0,
		"dispatch.maxDailyTasks":     10,
		"dispatch.defaultDistanceKm": 10.0,
		"dispatch.averageSpeedKmh":   services.DefaultAverageSpeedKmh,
		"dispatch.dwellTime":         services.DefaultDwellTime.String(),
		"dispatch.timezone":          "Local",

		"geocoding.baseUrl":      "https://nominatim.openstreetmap.org",
		"geocoding.userAgent":    "laundry-dispatch/1.0",
		"geocoding.countryCodes": "",
		"geocoding.timeout":      "10s",
		"geocoding.minInterval":  "1s",

		"notification.provider":     notification.ProviderLog,
		"notification.httpEndpoint": "",
		"notification.projectId":    "",
		"notification.topicId":      "",

		"jobs.geocodeRetry.enabled":   true,
		"jobs.geocodeRetry.schedule":  "0 */5 * * * *",
		"jobs.geocodeRetry.batchSize": 50,
		"jobs.autoDispatch.enabled":   false,
		"jobs.autoDispatch.schedule":  "0 * * * * *",
	}
}

// LoadConfig layers defaults, a YAML file and DISPATCH_* environment variables.
// An explicit path must exist; without one config.yaml is looked up in the
// working directory and ./config, and its absence is not an error.
func LoadConfig(path string) (*Config, error) {
	// .env only feeds the process environment; the file is optional.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, errors.Wrapf(err, "set default %s", key)
		}
	}

	configFile, err := resolveConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configFile)
		}
	}

	known := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(key, EnvPrefix), known), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return errors.Errorf("http.port out of range: %d", c.HTTP.Port)
	}
	if c.Dispatch.AverageSpeedKmh <= 0 {
		return errors.Errorf("dispatch.averageSpeedKmh must be positive, got %v", c.Dispatch.AverageSpeedKmh)
	}
	if c.Dispatch.GracePeriod < 0 || c.Dispatch.DwellTime < 0 {
		return errors.New("dispatch durations must not be negative")
	}
	if c.Dispatch.WorkloadPenaltyKm < 0 || c.Dispatch.MaxDailyTasks < 0 {
		return errors.New("dispatch workload settings must not be negative")
	}
	if _, err := c.Dispatch.Location(); err != nil {
		return err
	}
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func resolveConfigFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, "config file %s", path)
		}
		return path, nil
	}
	for _, dir := range []string{".", "config"} {
		candidate := filepath.Join(dir, defaultConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// canonicalizeEnvKey maps GEOCODING_BASE_URL onto geocoding.baseUrl by
// greedily joining underscore separated words until they name a known key.
// Words that match nothing are kept lower-cased, one per path segment.
func canonicalizeEnvKey(rawKey string, known map[string]any) string {
	words := strings.FieldsFunc(strings.ToLower(rawKey), func(r rune) bool { return r == '_' })
	path := make([]string, 0, len(words))
	current := known

	for i := 0; i < len(words); {
		matched, next, consumed := matchSegment(current, words[i:])
		if consumed == 0 {
			path = append(path, words[i])
			current = nil
			i++
			continue
		}
		path = append(path, matched)
		current = next
		i += consumed
	}

	return strings.Join(path, ".")
}

// matchSegment finds the longest run of words that names a key of current.
func matchSegment(current map[string]any, words []string) (string, map[string]any, int) {
	if len(current) == 0 {
		return "", nil, 0
	}
	for n := len(words); n > 0; n-- {
		needle := strings.Join(words[:n], "")
		for key, value := range current {
			if normalizeToken(key) != needle {
				continue
			}
			child, _ := value.(map[string]any)
			return key, child, n
		}
	}
	return "", nil, 0
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
