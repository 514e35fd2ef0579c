package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultPaymentBaseURL     = "https://api.mercadopago.com"
	defaultSentinelPaymentID  = 12345
	defaultIVA                = 0.21
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
		CORS CORSConfig `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// Payment configures the Mercado Pago gateway client
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	Order *OrderConfig `json:"order" yaml:"order"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Storage configures the S3-compatible bucket for product images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Images *ImagesConfig `json:"images" yaml:"images"`

	Search *SearchConfig `json:"search" yaml:"search"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// PubSub configures order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

// AuthConfig defines session token and password settings
type AuthConfig struct {
	// JWTSecret signs access, refresh and password-reset tokens
	JWTSecret         string        `json:"jwtSecret" yaml:"jwtSecret"`
	AccessTTL         time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL        time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	PasswordResetTTL  time.Duration `json:"passwordResetTTL" yaml:"passwordResetTTL"`
	ResetCodeTTL      time.Duration `json:"resetCodeTTL" yaml:"resetCodeTTL"`
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	CookieSecure      bool          `json:"cookieSecure" yaml:"cookieSecure"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// PaymentConfig defines the payment gateway settings
type PaymentConfig struct {
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	AccessToken string        `json:"accessToken" yaml:"accessToken"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`

	// SentinelPaymentID skips the gateway lookup for demo orders
	SentinelPaymentID int64 `json:"sentinelPaymentId" yaml:"sentinelPaymentId"`

	// RequireApproved rejects orders whose payment status is not "approved"
	RequireApproved bool `json:"requireApproved" yaml:"requireApproved"`

	ClientDomain    string        `json:"clientDomain" yaml:"clientDomain"`
	NotificationURL string        `json:"notificationUrl" yaml:"notificationUrl"`
	MaxInstallments int           `json:"maxInstallments" yaml:"maxInstallments"`
	PreferenceTTL   time.Duration `json:"preferenceTTL" yaml:"preferenceTTL"`
}

type OrderConfig struct {
	DefaultIVA float64 `json:"defaultIVA" yaml:"defaultIVA"`
}

// MailConfig defines outbound email settings. An empty provider logs messages instead of sending them.
type MailConfig struct {
	Provider     string `json:"provider" yaml:"provider"`
	APIKey       string `json:"apiKey" yaml:"apiKey"`
	FromAddress  string `json:"fromAddress" yaml:"fromAddress"`
	FromName     string `json:"fromName" yaml:"fromName"`
	AdminAddress string `json:"adminAddress" yaml:"adminAddress"`
}

type StorageConfig struct {
	S3 S3Config `json:"s3" yaml:"s3"`
}

type S3Config struct {
	Bucket    string `json:"bucket" yaml:"bucket"`
	Region    string `json:"region" yaml:"region"`
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"accessKey" yaml:"accessKey"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`
	PublicURL string `json:"publicUrl" yaml:"publicUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

type ImagesConfig struct {
	ThumbnailSize int   `json:"thumbnailSize" yaml:"thumbnailSize"`
	MaxUploadSize int64 `json:"maxUploadSize" yaml:"maxUploadSize"`
}

type SearchConfig struct {
	Elasticsearch ElasticsearchConfig `json:"elasticsearch" yaml:"elasticsearch"`
}

type ElasticsearchConfig struct {
	Addresses []string `json:"addresses" yaml:"addresses"`
	Username  string   `json:"username" yaml:"username"`
	Password  string   `json:"password" yaml:"password"`
	Index     string   `json:"index" yaml:"index"`
}

type CacheConfig struct {
	Redis RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	Kafka KafkaConfig `json:"kafka" yaml:"kafka"`
}

type KafkaConfig struct {
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
	// GroupID is the consumer group of the notifier
	GroupID string `json:"groupId" yaml:"groupId"`
}

type RateLimitConfig struct {
	GeneralRPM int `json:"generalRPM" yaml:"generalRPM"`
	AuthRPM    int `json:"authRPM" yaml:"authRPM"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// PAYMENT_ACCESSTOKEN -> payment.accessToken (aligned with the YAML key casing)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// Local .env files are optional; deployed environments inject variables directly.
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug("No .env file loaded", slog.Any("error", err))
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see a nil section.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	c.Auth.AccessTTL = durationOr(c.Auth.AccessTTL, time.Hour)
	c.Auth.RefreshTTL = durationOr(c.Auth.RefreshTTL, 2*time.Hour)
	c.Auth.PasswordResetTTL = durationOr(c.Auth.PasswordResetTTL, 5*time.Minute)
	c.Auth.ResetCodeTTL = durationOr(c.Auth.ResetCodeTTL, 2*time.Minute)
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Auth.MinPasswordLength == 0 {
		c.Auth.MinPasswordLength = 8
	}

	if c.GoogleOAuth == nil {
		c.GoogleOAuth = &GoogleOAuthConfig{}
	}

	if c.Payment == nil {
		c.Payment = &PaymentConfig{}
	}
	if c.Payment.BaseURL == "" {
		c.Payment.BaseURL = defaultPaymentBaseURL
	}
	if c.Payment.SentinelPaymentID == 0 {
		c.Payment.SentinelPaymentID = defaultSentinelPaymentID
	}
	c.Payment.Timeout = durationOr(c.Payment.Timeout, 5*time.Second)
	c.Payment.PreferenceTTL = durationOr(c.Payment.PreferenceTTL, 15*time.Minute)
	if c.Payment.MaxInstallments == 0 {
		c.Payment.MaxInstallments = 12
	}

	if c.Order == nil {
		c.Order = &OrderConfig{}
	}
	if c.Order.DefaultIVA == 0 {
		c.Order.DefaultIVA = defaultIVA
	}

	if c.Mail == nil {
		c.Mail = &MailConfig{}
	}
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}

	if c.Images == nil {
		c.Images = &ImagesConfig{}
	}
	if c.Images.ThumbnailSize == 0 {
		c.Images.ThumbnailSize = 320
	}
	if c.Images.MaxUploadSize == 0 {
		c.Images.MaxUploadSize = 5 << 20
	}

	if c.Search == nil {
		c.Search = &SearchConfig{}
	}
	if c.Search.Elasticsearch.Index == "" {
		c.Search.Elasticsearch.Index = "products"
	}

	if c.Cache == nil {
		c.Cache = &CacheConfig{}
	}
	c.Cache.Redis.TTL = durationOr(c.Cache.Redis.TTL, 10*time.Minute)

	if c.PubSub == nil {
		c.PubSub = &PubSubConfig{}
	}
	if c.PubSub.Kafka.GroupID == "" {
		c.PubSub.Kafka.GroupID = "padelpoint-notifier"
	}
	if c.RateLimit == nil {
		c.RateLimit = &RateLimitConfig{}
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}

	return value
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
