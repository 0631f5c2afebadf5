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
	defaultPath          = "."
	defaultCacheTTL      = 60 * time.Second
	defaultClientTimeout = 10 * time.Second
	defaultLocale        = "en"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		// MaxRequestBodySize caps request bodies, in echo's size syntax
		// ("500K", "2M"). Empty means no cap.
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// CMS configures the remote content store. A nil value or an empty
	// base URL is a supported configuration: every catalog read falls
	// back to the bundled dataset and submission writes are skipped.
	CMS *CMSConfig `json:"cms" yaml:"cms"`

	// Webhooks configures the per-form automation forwards. Each URL is
	// independently optional.
	Webhooks *WebhooksConfig `json:"webhooks" yaml:"webhooks"`

	// Content configures the locale-partitioned article storage.
	Content *ContentConfig `json:"content" yaml:"content"`

	// Session configures operator session verification for gated routes.
	Session *SessionConfig `json:"session" yaml:"session"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CMSConfig defines the remote content store connection
type CMSConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	APISecret string        `json:"apiSecret" yaml:"apiSecret"`
	CacheTTL  time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// WebhooksConfig defines the automation webhook URLs, one per form type
type WebhooksConfig struct {
	Order   string        `json:"order" yaml:"order"`
	Partner string        `json:"partner" yaml:"partner"`
	General string        `json:"general" yaml:"general"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ContentConfig defines where localized articles live on disk
type ContentConfig struct {
	Dir           string   `json:"dir" yaml:"dir"`
	DefaultLocale string   `json:"defaultLocale" yaml:"defaultLocale"`
	Locales       []string `json:"locales" yaml:"locales"`
}

// SessionConfig defines operator session verification
type SessionConfig struct {
	// Secret signs operator session tokens.
	Secret string `json:"secret" yaml:"secret"`

	// SharedSecret is the bearer token the site's own backend presents
	// when writing submissions. Empty means sessions only.
	SharedSecret string `json:"sharedSecret" yaml:"sharedSecret"`
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
			// Example: CMS_BASEURL -> cms.baseUrl (not cms.baseurl)
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
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.CMS != nil {
		if c.CMS.CacheTTL <= 0 {
			c.CMS.CacheTTL = defaultCacheTTL
		}
		if c.CMS.Timeout <= 0 {
			c.CMS.Timeout = defaultClientTimeout
		}
	}
	if c.Webhooks != nil && c.Webhooks.Timeout <= 0 {
		c.Webhooks.Timeout = defaultClientTimeout
	}
	if c.Content == nil {
		c.Content = &ContentConfig{}
	}
	if c.Content.DefaultLocale == "" {
		c.Content.DefaultLocale = defaultLocale
	}
	if len(c.Content.Locales) == 0 {
		c.Content.Locales = []string{c.Content.DefaultLocale}
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
