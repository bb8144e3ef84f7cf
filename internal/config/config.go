package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJQL is the single query definition driving the fetch pipeline.
const DefaultJQL = "project = L2 AND updated >= -300d ORDER BY updated DESC"

// Config aggregates runtime configuration for both pipelines.
type Config struct {
	Jira   JiraConfig
	Ollama OllamaConfig
	Fetch  FetchConfig
	Logger LoggerConfig
}

// JiraConfig holds Jira connection values. Credentials come from the
// environment or a .env file; they are never prompted for or stored here.
type JiraConfig struct {
	BaseURL        string
	Username       string
	Token          string
	TimeoutSeconds int
}

// OllamaConfig holds the local text-completion service endpoint.
type OllamaConfig struct {
	Host           string
	Model          string
	TimeoutSeconds int
}

// FetchConfig controls the pagination loop.
type FetchConfig struct {
	JQL      string
	PageSize int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level    string
	FilePath string
}

// Load reads configuration from environment variables, applying defaults
// where possible. A .env file in the working directory is honored.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Jira: JiraConfig{
			BaseURL:        os.Getenv("JIRA_URL"),
			Username:       os.Getenv("JIRA_USERNAME"),
			Token:          os.Getenv("JIRA_TOKEN"),
			TimeoutSeconds: getEnvAsInt("JIRA_TIMEOUT_SECONDS", 30),
		},
		Ollama: OllamaConfig{
			Host:           getEnv("OLLAMA_HOST", "http://localhost:11434"),
			Model:          getEnv("OLLAMA_MODEL", "llama3.2"),
			TimeoutSeconds: getEnvAsInt("OLLAMA_TIMEOUT_SECONDS", 300),
		},
		Fetch: FetchConfig{
			JQL:      getEnv("JIRA_JQL", DefaultJQL),
			PageSize: getEnvAsInt("FETCH_PAGE_SIZE", 100),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE", "jira_requests.log"),
		},
	}

	return cfg, nil
}

// Validate checks that the values required to reach Jira are present.
func (j JiraConfig) Validate() error {
	if j.BaseURL == "" || j.Username == "" || j.Token == "" {
		return errors.New("JIRA_URL, JIRA_USERNAME and JIRA_TOKEN must be set (environment or .env file)")
	}
	return nil
}

// Timeout returns the per-request Jira timeout duration.
func (j JiraConfig) Timeout() time.Duration {
	if j.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(j.TimeoutSeconds) * time.Second
}

// Timeout returns the completion request timeout duration.
func (o OllamaConfig) Timeout() time.Duration {
	if o.TimeoutSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(o.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
