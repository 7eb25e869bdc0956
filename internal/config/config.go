package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN          string `yaml:"url"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
		AutoMigrate  bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		Type       string `yaml:"type"`        // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"`   // local only
		BaseURL    string `yaml:"base_url"`    // public URL base
		Bucket     string `yaml:"bucket"`      // S3/R2
		Region     string `yaml:"region"`      // S3
		AccessKey  string `yaml:"access_key"`  // S3/R2
		SecretKey  string `yaml:"secret_key"`  // S3/R2
		Endpoint   string `yaml:"endpoint"`    // R2 or custom S3
		UseSSL     bool   `yaml:"use_ssl"`     // S3/R2
		PublicRead bool   `yaml:"public_read"` // CVs stay private by default
		CVPrefix   string `yaml:"cv_prefix"`   // key prefix for CV objects
	} `yaml:"storage"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`           // bytes
		AllowedTypes      []string `yaml:"allowed_types"`      // MIME types
		AllowedExtensions []string `yaml:"allowed_extensions"` // with leading dot
		SignedURLTTL      int      `yaml:"signed_url_ttl"`     // seconds
		ExtractText       bool     `yaml:"extract_text"`       // run docconv on CVs
	} `yaml:"upload"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		InboxEmail   string `yaml:"inbox_email"` // receives inquiries and contact messages
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`

	Admin struct {
		FirstAdminEmail      string `yaml:"first_admin_email"`
		FirstAdminPassword   string `yaml:"first_admin_password"`
		StrictStatusWorkflow bool   `yaml:"strict_status_workflow"`
	} `yaml:"admin"`

	Worker struct {
		Enabled            bool   `yaml:"enabled"`
		OrphanSweepSpec    string `yaml:"orphan_sweep_spec"`    // cron spec
		OrphanGraceMinutes int    `yaml:"orphan_grace_minutes"` // how old an unreferenced CV must be
		JobExpirySpec      string `yaml:"job_expiry_spec"`      // cron spec for closing jobs past their deadline
	} `yaml:"worker"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Forms struct {
		SuccessResetDelayMS int `yaml:"success_reset_delay_ms"`
	} `yaml:"forms"`
}

var AppConfig *Config

// LoadConfig fills AppConfig. A .env file is loaded first when present.
// With DATABASE_URL set the configuration comes from the environment
// (containers, tests), otherwise from the yaml file at CONFIG_PATH.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env: %v", err)
	}

	if os.Getenv("DATABASE_URL") != "" {
		log.Println("Loading configuration from environment variables")
		AppConfig = FromEnv()
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Loading configuration from %s", configPath)

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load reads and decodes a yaml config file and applies defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file at %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file at %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FromEnv builds the configuration from environment variables.
func FromEnv() *Config {
	var cfg Config

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.AutoMigrate = envBool("DATABASE_AUTO_MIGRATE", true)
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port = envInt("SERVER_PORT", 0)
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = envInt("JWT_TTL", 0)

	cfg.Storage.Type = os.Getenv("STORAGE_TYPE")
	cfg.Storage.BasePath = os.Getenv("STORAGE_BASE_PATH")
	cfg.Storage.BaseURL = os.Getenv("STORAGE_BASE_URL")
	cfg.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
	cfg.Storage.Region = os.Getenv("STORAGE_REGION")
	cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")
	cfg.Storage.UseSSL = envBool("STORAGE_USE_SSL", true)

	cfg.Storage.CVPrefix = os.Getenv("STORAGE_CV_PREFIX")
	cfg.Upload.ExtractText = envBool("CV_EXTRACT_TEXT", false)

	cfg.Email.Enabled = envBool("EMAIL_ENABLED", false)
	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort = envInt("SMTP_PORT", 587)
	cfg.Email.SMTPUser = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("EMAIL_FROM")
	cfg.Email.InboxEmail = os.Getenv("EMAIL_INBOX")

	cfg.Admin.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.Admin.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
	cfg.Admin.StrictStatusWorkflow = envBool("STRICT_STATUS_WORKFLOW", false)

	cfg.Worker.Enabled = envBool("WORKER_ENABLED", false)
	cfg.Worker.OrphanSweepSpec = os.Getenv("ORPHAN_SWEEP_SPEC")
	cfg.Worker.OrphanGraceMinutes = envInt("ORPHAN_GRACE_MINUTES", 0)
	cfg.Worker.JobExpirySpec = os.Getenv("JOB_EXPIRY_SPEC")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}

	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.JWT.TTL == 0 {
		c.JWT.TTL = 60
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}

	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Storage.BasePath == "" {
		c.Storage.BasePath = "./uploads"
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "candidate-cvs"
	}
	if c.Storage.CVPrefix == "" {
		c.Storage.CVPrefix = "cvs/"
	}

	if c.Upload.MaxSize == 0 {
		c.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		c.Upload.AllowedExtensions = []string{".pdf", ".doc", ".docx"}
	}
	if c.Upload.SignedURLTTL == 0 {
		c.Upload.SignedURLTTL = 60
	}

	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "JobLink"
	}

	if c.Worker.OrphanSweepSpec == "" {
		c.Worker.OrphanSweepSpec = "@hourly"
	}
	if c.Worker.OrphanGraceMinutes == 0 {
		c.Worker.OrphanGraceMinutes = 24 * 60
	}
	if c.Worker.JobExpirySpec == "" {
		c.Worker.JobExpirySpec = "@daily"
	}

	if c.Forms.SuccessResetDelayMS == 0 {
		c.Forms.SuccessResetDelayMS = 2000
	}
}

// SignedURLTTL is the validity of signed CV references.
func (c *Config) SignedURLTTL() time.Duration {
	return time.Duration(c.Upload.SignedURLTTL) * time.Second
}

// JWTTTL is the access token lifetime.
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}

// OrphanGrace is the minimum age of an unreferenced CV before the sweeper removes it.
func (c *Config) OrphanGrace() time.Duration {
	return time.Duration(c.Worker.OrphanGraceMinutes) * time.Minute
}

// SuccessResetDelay is how long a submitted form stays in the success state.
func (c *Config) SuccessResetDelay() time.Duration {
	return time.Duration(c.Forms.SuccessResetDelayMS) * time.Millisecond
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
