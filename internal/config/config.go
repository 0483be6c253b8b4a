package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	LLM      LLMConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DatabaseConfig is optional. With no DB_HOST the sample catalog is served.
type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout  time.Duration
	PoolMaxConns    int32
	PoolMinConns    int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

func (d DatabaseConfig) Enabled() bool {
	return d.DBHost != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
	Enabled  bool
}

type LLMConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	APIKey    string        `yaml:"-"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit int           `yaml:"rate_limit"`
}

// MatchingConfig is the policy block of the optional YAML file.
type MatchingConfig struct {
	Managers               []string      `yaml:"managers"`
	EmployeeThreshold      int           `yaml:"employee_threshold"`
	TaskThreshold          int           `yaml:"task_threshold"`
	ValidationWindow       time.Duration `yaml:"validation_window"`
	SkillMatcher           string        `yaml:"skill_matcher"`
	BusinessUnitRelevance  int           `yaml:"business_unit_relevance"`
	FallbackEmployeeCount  int           `yaml:"fallback_employee_count"`
	FallbackTaskCount      int           `yaml:"fallback_task_count"`
	RecommendationCacheTTL time.Duration `yaml:"recommendation_cache_ttl"`
}

type FileConfig struct {
	Matching MatchingConfig `yaml:"matching"`
	LLM      LLMConfig      `yaml:"llm"`
}

const (
	defaultLLMBaseURL = "http://localhost:11434/v1"
	defaultLLMModel   = "llama3"
	defaultLLMTimeout = 60 * time.Second
	defaultRedisTTL   = 600 * time.Second
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func DefaultMatching() MatchingConfig {
	return MatchingConfig{
		Managers:               []string{"emp005", "emp007", "emp008"},
		EmployeeThreshold:      50,
		TaskThreshold:          70,
		ValidationWindow:       90 * 24 * time.Hour,
		SkillMatcher:           "substring",
		BusinessUnitRelevance:  4,
		FallbackEmployeeCount:  3,
		FallbackTaskCount:      2,
		RecommendationCacheTTL: defaultRedisTTL,
	}
}

func Load() (Config, error) {
	cfg := Config{Matching: DefaultMatching()}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	if path := opt("CONFIG_FILE"); path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Matching = mergeMatching(cfg.Matching, fc.Matching)
		cfg.LLM = fc.LLM
	}

	cfg.Database = DatabaseConfig{
		DBHost:          opt("DB_HOST"),
		DBPort:          opt("DB_PORT"),
		DBName:          opt("DB_NAME"),
		DBUser:          opt("DB_USER"),
		DBPassword:      opt("DB_PASSWORD"),
		DBSSLMode:       opt("DB_SSL_MODE"),
		ConnectTimeout:  durationSeconds(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:    int32(intOr(opt("DB_POOL_MAX_CONNS"), 0)),
		PoolMinConns:    int32(intOr(opt("DB_POOL_MIN_CONNS"), 0)),
		MaxConnLifetime: durationSeconds(opt("DB_POOL_MAX_CONN_LIFETIME"), 0),
		MaxConnIdleTime: durationSeconds(opt("DB_POOL_MAX_CONN_IDLE_TIME"), 0),
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      durationSeconds(opt("REDIS_TTL"), cfg.Matching.RecommendationCacheTTL),
		Enabled:  opt("REDIS_HOST") != "",
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}

	if v := opt("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := opt("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	cfg.LLM.APIKey = opt("LLM_API_KEY")
	if cfg.LLM.Timeout <= 0 {
		cfg.LLM.Timeout = defaultLLMTimeout
	}
	cfg.LLM.Timeout = durationSeconds(opt("LLM_TIMEOUT"), cfg.LLM.Timeout)
	cfg.LLM.RateLimit = intOr(opt("LLM_RATE_LIMIT"), cfg.LLM.RateLimit)
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = defaultLLMBaseURL
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultLLMModel
	}

	if v := opt("MANAGER_IDS"); v != "" {
		cfg.Matching.Managers = splitList(v)
	}
	if v := opt("SKILL_MATCHER"); v != "" {
		cfg.Matching.SkillMatcher = strings.ToLower(v)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadFile parses the YAML policy file. Durations use Go syntax ("2160h").
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

func mergeMatching(base, over MatchingConfig) MatchingConfig {
	if len(over.Managers) > 0 {
		base.Managers = over.Managers
	}
	if over.EmployeeThreshold > 0 {
		base.EmployeeThreshold = over.EmployeeThreshold
	}
	if over.TaskThreshold > 0 {
		base.TaskThreshold = over.TaskThreshold
	}
	if over.ValidationWindow > 0 {
		base.ValidationWindow = over.ValidationWindow
	}
	if over.SkillMatcher != "" {
		base.SkillMatcher = strings.ToLower(over.SkillMatcher)
	}
	if over.BusinessUnitRelevance > 0 {
		base.BusinessUnitRelevance = over.BusinessUnitRelevance
	}
	if over.FallbackEmployeeCount > 0 {
		base.FallbackEmployeeCount = over.FallbackEmployeeCount
	}
	if over.FallbackTaskCount > 0 {
		base.FallbackTaskCount = over.FallbackTaskCount
	}
	if over.RecommendationCacheTTL > 0 {
		base.RecommendationCacheTTL = over.RecommendationCacheTTL
	}
	return base
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intOr(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func durationSeconds(raw string, def time.Duration) time.Duration {
	v := intOr(raw, -1)
	if v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
