package config

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DbTypePostgres = "pgsql"
	DbTypeSqlite   = "sqlite"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"savvy"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass" json:"-"`
}

type svcConfig struct {
	Address           string   `envconfig:"SAVVY_ADDRESS" default:":3443"`
	MetricsAddress    string   `envconfig:"SAVVY_METRICS_ADDRESS" default:":8080"`
	LogLevel          string   `envconfig:"SAVVY_LOG_LEVEL" default:"info"`
	UploadFolder      string   `envconfig:"SAVVY_UPLOAD_FOLDER" default:"/tmp/savvy/uploads"`
	UploadChunkSize   int      `envconfig:"SAVVY_UPLOAD_CHUNK_SIZE" default:"1048576"`
	MaxUploadSize     int64    `envconfig:"SAVVY_MAX_UPLOAD_SIZE" default:"104857600"`
	AllowedExtensions []string `envconfig:"SAVVY_ALLOWED_EXTENSIONS" default:".xlsx,.xlsm"`
	OutputFolder      string   `envconfig:"SAVVY_OUTPUT_FOLDER" default:"/tmp/savvy/output"`
	MigrationFolder   string   `envconfig:"SAVVY_MIGRATIONS_FOLDER" default:""`
	FlashSecret       string   `envconfig:"SAVVY_FLASH_SECRET" default:"" json:"-"`
	// CorsAllowedOrigins is empty by default: cross-origin requests are not
	// answered with CORS headers at all.
	CorsAllowedOrigins []string  `envconfig:"SAVVY_CORS_ALLOWED_ORIGINS" default:""`
	LatencyBuckets     []float64 `envconfig:"SAVVY_METRICS_LATENCY_BUCKETS" default:"50,300,1000,5000,30000"`
	Queue              queueConfig
	Auth               Auth
	S3                 S3
}

type queueConfig struct {
	Workers int `envconfig:"SAVVY_QUEUE_WORKERS" default:"4"`
	Size    int `envconfig:"SAVVY_QUEUE_SIZE" default:"100"`
}

type Auth struct {
	AuthenticationType string `envconfig:"SAVVY_AUTH" default:""`
	JwkCertURL         string `envconfig:"SAVVY_JWK_URL" default:""`
}

type S3 struct {
	Endpoint  string `envconfig:"S3_ENDPOINT" default:""`
	Bucket    string `envconfig:"S3_BUCKET" default:"savvy"`
	AccessKey string `envconfig:"S3_ACCESS_KEY" default:"" json:"-"`
	SecretKey string `envconfig:"S3_SECRET_KEY" default:"" json:"-"`
	UseSSL    bool   `envconfig:"S3_USE_SSL" default:"false"`
}

// New loads the configuration once per process. A .env file in the working
// directory is read first; variables already set in the environment win.
func New() (*Config, error) {
	if singleConfig == nil {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg, err := load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// NewDefault returns a fresh configuration built from defaults and the
// current environment, bypassing the process-wide singleton.
func NewDefault() *Config {
	cfg, err := load()
	if err != nil {
		return &Config{Database: &dbConfig{}, Service: &svcConfig{}}
	}
	return cfg
}

func load() (*Config, error) {
	cfg := &Config{Database: &dbConfig{}, Service: &svcConfig{}}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) String() string {
	val, _ := json.Marshal(c)
	return string(val)
}
