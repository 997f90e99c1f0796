package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "rvconsign.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTTTL          = "24h"
	defaultCookieName      = "rv_session"
	defaultCookieSecure    = "false"
	defaultHubSpotBaseURL  = "https://api.hubapi.com"
	defaultHubSpotTimeout  = "10s"
	defaultStorageBackend  = StorageLocal
	defaultUploadsDir      = "./uploads"
	defaultUploadsURLBase  = "/static/uploads"
	defaultCloudinaryDir   = "documents"
	defaultMailFromName    = "RV Consignments"
	defaultOutboxMaxTries  = "5"
	defaultShutdownTimeout = "10s"
)

const (
	StorageLocal      = "local"
	StorageCloudinary = "cloudinary"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	ShutdownTimeout time.Duration

	JWTSecret    string
	JWTTTL       time.Duration
	CookieName   string
	CookieSecure bool

	CORSAllowedOrigins []string

	// InternalAPIToken guards /api/internal; empty disables those routes.
	InternalAPIToken   string
	InternalAllowedIPs []string

	HubSpot HubSpotConfig
	Storage StorageConfig
	Mail    MailConfig

	// CRMSyncCron is a robfig/cron spec; empty disables scheduled sync.
	CRMSyncCron    string
	OutboxMaxTries int
}

type HubSpotConfig struct {
	AccessToken  string
	BaseURL      string
	ClientSecret string
	StageMapFile string
	Timeout      time.Duration
}

type StorageConfig struct {
	Backend          string
	UploadsDir       string
	UploadsURLBase   string
	CloudinaryURL    string
	CloudinaryFolder string
}

type MailConfig struct {
	SendGridAPIKey  string
	FromEmail       string
	FromName        string
	TeamNotifyEmail string
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.CookieName = strings.TrimSpace(getEnv("SESSION_COOKIE_NAME", defaultCookieName))
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.InternalAPIToken = strings.TrimSpace(os.Getenv("INTERNAL_API_TOKEN"))
	cfg.InternalAllowedIPs = splitList(os.Getenv("INTERNAL_ALLOWED_IPS"))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return nil, err
	}

	cfg.HubSpot = HubSpotConfig{
		AccessToken:  strings.TrimSpace(os.Getenv("HUBSPOT_ACCESS_TOKEN")),
		BaseURL:      strings.TrimRight(strings.TrimSpace(getEnv("HUBSPOT_BASE_URL", defaultHubSpotBaseURL)), "/"),
		ClientSecret: strings.TrimSpace(os.Getenv("HUBSPOT_CLIENT_SECRET")),
		StageMapFile: strings.TrimSpace(os.Getenv("HUBSPOT_STAGE_MAP_FILE")),
	}
	cfg.HubSpot.Timeout, err = parseDurationEnv("HUBSPOT_TIMEOUT", defaultHubSpotTimeout)
	if err != nil {
		return nil, err
	}

	cfg.Storage = StorageConfig{
		Backend:          strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", defaultStorageBackend))),
		UploadsDir:       strings.TrimSpace(getEnv("UPLOADS_DIR", defaultUploadsDir)),
		UploadsURLBase:   strings.TrimRight(strings.TrimSpace(getEnv("UPLOADS_URL_BASE", defaultUploadsURLBase)), "/"),
		CloudinaryURL:    strings.TrimSpace(os.Getenv("CLOUDINARY_URL")),
		CloudinaryFolder: strings.TrimSpace(getEnv("CLOUDINARY_FOLDER", defaultCloudinaryDir)),
	}

	cfg.Mail = MailConfig{
		SendGridAPIKey:  strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		FromEmail:       strings.TrimSpace(os.Getenv("MAIL_FROM_EMAIL")),
		FromName:        strings.TrimSpace(getEnv("MAIL_FROM_NAME", defaultMailFromName)),
		TeamNotifyEmail: strings.TrimSpace(os.Getenv("TEAM_NOTIFY_EMAIL")),
	}

	cfg.CRMSyncCron = strings.TrimSpace(os.Getenv("CRM_SYNC_CRON"))
	cfg.OutboxMaxTries, err = parseIntEnv("CRM_OUTBOX_MAX_TRIES", defaultOutboxMaxTries)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s storage=%s hubspot=%t sendgrid=%t crm_cron=%q",
		cfg.AppEnv, cfg.Storage.Backend, cfg.HubSpot.AccessToken != "", cfg.Mail.SendGridAPIKey != "", cfg.CRMSyncCron)

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.HubSpot.Timeout <= 0 {
		return fmt.Errorf("HUBSPOT_TIMEOUT must be > 0")
	}
	if cfg.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME must not be empty")
	}
	if cfg.OutboxMaxTries <= 0 {
		return fmt.Errorf("CRM_OUTBOX_MAX_TRIES must be > 0")
	}

	switch cfg.Storage.Backend {
	case StorageLocal:
		if cfg.Storage.UploadsDir == "" {
			return fmt.Errorf("UPLOADS_DIR must not be empty")
		}
	case StorageCloudinary:
		if cfg.Storage.CloudinaryURL == "" {
			return fmt.Errorf("CLOUDINARY_URL is required when STORAGE_BACKEND=cloudinary")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: local, cloudinary")
	}

	if cfg.Mail.SendGridAPIKey != "" && cfg.Mail.FromEmail == "" {
		return fmt.Errorf("MAIL_FROM_EMAIL is required when SENDGRID_API_KEY is set")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
