package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort   = "5000"
	defaultDBName = "petCere"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:5175",
}

// Config holds everything read from the process environment at startup.
type Config struct {
	Port        string
	Env         string
	MongoURI    string
	DBName      string
	JWTSecret   string
	StripeKey   string
	CORSOrigins []string
	LogLevel    string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	MailgunDomain string
	MailgunAPIKey string
	EmailFrom     string
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	cfg := &Config{
		Port:        getenv("PORT", defaultPort),
		Env:         firstNonEmpty(os.Getenv("NODE_ENV"), os.Getenv("APP_ENV"), "development"),
		DBName:      getenv("DB_NAME", defaultDBName),
		JWTSecret:   os.Getenv("SECRET_KEY"),
		StripeKey:   os.Getenv("STRIPE_SECRET_KEY"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		MailgunDomain: os.Getenv("MAILGUN_DOMAIN"),
		MailgunAPIKey: os.Getenv("MAILGUN_API_KEY"),
		EmailFrom:     getenv("EMAIL_FROM", "PetCare <no-reply@petcare.app>"),
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultOrigins
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("SECRET_KEY is required")
	}

	uri, err := mongoURI()
	if err != nil {
		return nil, err
	}
	cfg.MongoURI = uri

	return cfg, nil
}

// IsProduction reports whether cookies must be cross-site and secure.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// CookieSecure is true only in production.
func (c *Config) CookieSecure() bool {
	return c.IsProduction()
}

// CookieSameSite allows the session cookie cross-site only in production.
func (c *Config) CookieSameSite() http.SameSite {
	if c.IsProduction() {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// CloudinaryEnabled reports whether image hosting credentials are present.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// MailEnabled reports whether outbound notifications can be sent.
func (c *Config) MailEnabled() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}

func mongoURI() (string, error) {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri, nil
	}

	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	host := getenv("DB_HOST", "cluster0.rwhf0.mongodb.net")
	if user == "" || pass == "" {
		return "", errors.New("MONGO_URI or DB_USER/DB_PASS must be set")
	}

	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(user), url.QueryEscape(pass), host), nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
