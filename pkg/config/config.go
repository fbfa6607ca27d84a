package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"DeceptionIndex/internal/domain/models"
	xutil "DeceptionIndex/pkg/util"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"local" validate:"required"`
	Log         struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Server struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool `yaml:"enabled" default:"true"`
	} `yaml:"metrics"`
	Provider struct {
		LookupURL string        `yaml:"lookup_url" default:"https://statsapi.mlb.com/api/v1" validate:"required,url"`
		SavantURL string        `yaml:"savant_url" default:"https://baseballsavant.mlb.com" validate:"required,url"`
		Timeout   time.Duration `yaml:"timeout" default:"90s"`
		UserAgent string        `yaml:"user_agent" default:"deception-index/1.0"`
		RPS       float64       `yaml:"rps" default:"2" validate:"gt=0"`
		Burst     int           `yaml:"burst" default:"1" validate:"min=1"`
		PaceDelay time.Duration `yaml:"pace_delay" default:"1s"`
		Breaker   struct {
			MaxFailures uint32        `yaml:"max_failures" default:"5" validate:"min=1"`
			OpenTimeout time.Duration `yaml:"open_timeout" default:"60s"`
		} `yaml:"breaker"`
	} `yaml:"provider"`
	Season struct {
		Start  string `yaml:"start" default:"2023-01-01" validate:"required"`
		End    string `yaml:"end" default:"2025-03-25" validate:"required"`
		Months []int  `yaml:"months" default:"[4,5,6,7,8,9,10]" validate:"min=1,dive,min=1,max=12"`
	} `yaml:"season"`
	Roster []models.Pitcher `yaml:"roster" validate:"min=1,dive"`
	Output struct {
		Dir    string `yaml:"dir" default:"."`
		CSV    string `yaml:"csv" default:"rays_deception_scores_2025.csv" validate:"required"`
		Team   string `yaml:"team" default:"Tampa Bay Rays"`
		Label  string `yaml:"label" default:"2025"`
		Charts struct {
			Score      string `yaml:"score" default:"Rays Deception Score.png"`
			ReleaseVar string `yaml:"release_var" default:"Rays Release Point Variance.png"`
			VeloSep    string `yaml:"velo_sep" default:"Rays Velo Sep.png"`
			SpinDiff   string `yaml:"spin_diff" default:"Rays Spin Axis Diff.png"`
		} `yaml:"charts"`
	} `yaml:"output"`
	Cache struct {
		Type          string        `yaml:"type" default:"memory" validate:"oneof=none memory redis layered"`
		TTL           time.Duration `yaml:"ttl" default:"24h"`
		MemoryMaxSize int           `yaml:"memory_max_size" default:"256" validate:"min=1"`
		Redis         struct {
			Host     string `yaml:"host" default:"localhost"`
			Port     int    `yaml:"port" default:"6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"deception"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Backend struct {
		Type string `yaml:"type" default:"none" validate:"oneof=none kafka clickhouse"`
	} `yaml:"backend"`
	Kafka struct {
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic" default:"deception.scores"`
		RequiredAcks int           `yaml:"required_acks" default:"-1"`
		Compression  string        `yaml:"compression" default:"gzip"`
		MaxAttempts  int           `yaml:"max_attempts" default:"3"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
		AutoCreate   bool          `yaml:"auto_create_topic"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host        string        `yaml:"host" default:"localhost"`
		Port        int           `yaml:"port" default:"9000"`
		Database    string        `yaml:"database" default:"deception"`
		User        string        `yaml:"user" default:"default"`
		Password    string        `yaml:"password"`
		UseHTTP     bool          `yaml:"use_http"`
		DialTimeout time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout time.Duration `yaml:"read_timeout" default:"10s"`
		MaxExecTime time.Duration `yaml:"max_execution_time" default:"60s"`
	} `yaml:"clickhouse"`
}

// DefaultRoster is the Tampa Bay Rays pitching staff scored when no roster is configured.
var DefaultRoster = []models.Pitcher{
	{First: "Shane", Last: "Baz"}, {First: "Hunter", Last: "Bigge"}, {First: "Joe", Last: "Boyle"},
	{First: "Taj", Last: "Bradley"}, {First: "Garrett", Last: "Cleavinger"}, {First: "Yoniel", Last: "Curet"},
	{First: "Mason", Last: "Englert"}, {First: "Alex", Last: "Faedo"}, {First: "Pete", Last: "Fairbanks"},
	{First: "Kevin", Last: "Kelly"}, {First: "Nate", Last: "Lavender"}, {First: "Zack", Last: "Littell"},
	{First: "Shane", Last: "McClanahan"}, {First: "Mason", Last: "Montgomery"}, {First: "Ian", Last: "Seymour"},
	{First: "Cole", Last: "Sulser"}, {First: "Edwin", Last: "Uceta"}, {First: "Jacob", Last: "Waguespack"},
}

var validate = validator.New()

// Default returns a Config populated only from struct defaults.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	c.Roster = append([]models.Pitcher(nil), DefaultRoster...)
	return &c, nil
}

// Load reads and parses a YAML configuration file over the defaults.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A missing file at path is tolerated when optional is true.
func LoadWithEnv(path string, optional bool) (*Config, error) {
	if optional && path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("DECEPTION_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("CACHE_TYPE"); v != "" {
		c.Cache.Type = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		c.Cache.Redis.Host = host
		if ok {
			c.Cache.Redis.Port = xutil.ParseIntDefault(port, c.Cache.Redis.Port)
		}
	}
	if v := os.Getenv("BACKEND"); v != "" {
		c.Backend.Type = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := c.Window(); err != nil {
		return err
	}
	if c.Backend.Type == "kafka" && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when backend.type is kafka")
	}
	return nil
}

// Window returns the configured season date range.
func (c *Config) Window() (models.DateRange, error) {
	start, ok := xutil.ParseDay(c.Season.Start)
	if !ok {
		return models.DateRange{}, fmt.Errorf("season.start: invalid day %q", c.Season.Start)
	}
	end, ok := xutil.ParseDay(c.Season.End)
	if !ok {
		return models.DateRange{}, fmt.Errorf("season.end: invalid day %q", c.Season.End)
	}
	if end.Before(start) {
		return models.DateRange{}, fmt.Errorf("season.end %s is before season.start %s", c.Season.End, c.Season.Start)
	}
	return models.DateRange{Start: start, End: end}, nil
}

// RedisAddr returns host:port for the cache redis.
func (c *Config) RedisAddr() string {
	return c.Cache.Redis.Host + ":" + strconv.Itoa(c.Cache.Redis.Port)
}
