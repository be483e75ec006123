package config

import (
	"os"
)

type Config struct {
	LogLevel        string
	Debug           bool
	ServiceName     string
	Environment     string
	Hostname        string
	ServerPort      string
	AllowedOrigins  []string
	OpenAIAPIKey    string
	GeminiAPIKeys   []string
	LLMProvider     string
	ChatModel       string
	StyleDBPath     string
	StyleCorpusPath string
	DatabaseURL     string
}

func LoadConfig() (*Config, error) {
	allowedOrigins := []string{"*"}
	if ao := os.Getenv("ALLOWED_ORIGINS"); ao != "" {
		allowedOrigins = splitList(ao)
	}

	// Load comma-separated Gemini API keys
	var geminiAPIKeys []string
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		geminiAPIKeys = splitList(keys)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	debug := os.Getenv("DEBUG")
	if debug == "" {
		debug = "false"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "kue-brain"
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "kue-brain"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = os.Getenv("PORT")
	}
	if serverPort == "" {
		serverPort = "8080"
	}

	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = "openai"
	}

	chatModel := os.Getenv("CHAT_MODEL")
	if chatModel == "" {
		if llmProvider == "gemini" {
			chatModel = "gemini-2.0-flash-lite"
		} else {
			chatModel = "gpt-4o-mini"
		}
	}

	styleDBPath := os.Getenv("STYLE_DB_PATH")
	if styleDBPath == "" {
		styleDBPath = "user_style.db"
	}

	return &Config{
		AllowedOrigins:  allowedOrigins,
		LogLevel:        logLevel,
		Debug:           debug == "true",
		ServiceName:     serviceName,
		Hostname:        hostname,
		Environment:     environment,
		ServerPort:      serverPort,
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKeys:   geminiAPIKeys,
		LLMProvider:     llmProvider,
		ChatModel:       chatModel,
		StyleDBPath:     styleDBPath,
		StyleCorpusPath: os.Getenv("STYLE_CORPUS_PATH"),
		DatabaseURL:     os.Getenv("DATABASE_URL"), // optional: exchange history is skipped when unset
	}, nil
}

// splitList splits a comma-separated env value, dropping whitespace around entries.
func splitList(raw string) []string {
	var out []string
	current := ""
	for _, ch := range raw {
		if ch == ',' {
			if current != "" {
				out = append(out, current)
				current = ""
			}
			continue
		}
		if ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r' {
			continue
		}
		current += string(ch)
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}
