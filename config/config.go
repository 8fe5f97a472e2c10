package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPHost           = "127.0.0.1"
	defaultHTTPPort           = 8080
	defaultAPITimeout         = 15 * time.Second
	defaultGeocodeTimeout     = 5 * time.Second
	defaultGeocodeCacheTTL    = 10 * time.Minute
	defaultNavigateDelay      = 500 * time.Millisecond
	defaultPhoneCountryCode   = "+60"
	defaultPhoneMaxDigits     = 10
	defaultStorageURL         = "mem://"
	defaultQRCodeSize         = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins enables CORS for these browser origins only; empty disables CORS.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API is the remote food-ordering backend
	API *APIConfig `json:"api" yaml:"api"`

	// Storage is where the session and the selected delivery address are persisted
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Maps configures the geocoding provider used by the location picker
	Maps *MapsConfig `json:"maps" yaml:"maps"`

	Address *AddressConfig `json:"address" yaml:"address"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// QRCode configuration for delivery location QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines how the backend is reached
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// StorageConfig defines the local key store. URL is a gocloud.dev blob URL,
// e.g. "file:///var/lib/kedai" or "mem://".
type StorageConfig struct {
	URL string `json:"url" yaml:"url"`
}

// MapsConfig defines the geocoding provider configuration
type MapsConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Override of the provider endpoint, used for testing against a local server
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	Language string `json:"language" yaml:"language"`
	Region   string `json:"region" yaml:"region"`

	// Upper bound for a single reverse geocode or place lookup
	GeocodeTimeout time.Duration `json:"geocodeTimeout" yaml:"geocodeTimeout"`

	// Map recenter events closer than this to the last reported point are ignored
	RecenterThresholdMeters float64 `json:"recenterThresholdMeters" yaml:"recenterThresholdMeters"`

	// How long reverse geocode results are reused (0 disables the cache)
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// AddressConfig defines address form rules
type AddressConfig struct {
	PhoneCountryCode string        `json:"phoneCountryCode" yaml:"phoneCountryCode"`
	PhoneMaxDigits   int           `json:"phoneMaxDigits" yaml:"phoneMaxDigits"`
	NavigateDelay    time.Duration `json:"navigateDelay" yaml:"navigateDelay"`
}

// SessionConfig defines bearer token handling
type SessionConfig struct {
	// Tokens expiring within this window are treated as already expired
	ExpiryLeeway time.Duration `json:"expiryLeeway" yaml:"expiryLeeway"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never see a nil section.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.Host) == "" {
		c.HTTP.Host = defaultHTTPHost
	}
	if c.HTTP.Port <= 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = defaultAPITimeout
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(c.Storage.URL) == "" {
		c.Storage.URL = defaultStorageURL
	}

	if c.Maps == nil {
		c.Maps = &MapsConfig{}
	}
	if c.Maps.GeocodeTimeout <= 0 {
		c.Maps.GeocodeTimeout = defaultGeocodeTimeout
	}
	if c.Maps.CacheTTL < 0 {
		c.Maps.CacheTTL = 0
	} else if c.Maps.CacheTTL == 0 {
		c.Maps.CacheTTL = defaultGeocodeCacheTTL
	}

	if c.Address == nil {
		c.Address = &AddressConfig{}
	}
	if c.Address.PhoneCountryCode == "" {
		c.Address.PhoneCountryCode = defaultPhoneCountryCode
	}
	if c.Address.PhoneMaxDigits <= 0 {
		c.Address.PhoneMaxDigits = defaultPhoneMaxDigits
	}
	if c.Address.NavigateDelay < 0 {
		c.Address.NavigateDelay = 0
	} else if c.Address.NavigateDelay == 0 {
		c.Address.NavigateDelay = defaultNavigateDelay
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = "M"
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
