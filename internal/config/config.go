package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig collects everything the server needs from the environment.
type AppConfig struct {
	ListenAddr      string
	Port            string
	DatabasePath    string
	SessionSecret   string
	GinMode         string
	DataDir         string
	GeminiAPIKey    string
	ChatAPIKey      string
	Model           string
	BlogsPerPage    int
	AttributionRoot string
	AdminUsername   string
	AdminEmail      string
	AdminPassword   string
}

// Load reads the application config from environment variables and fills
// missing entries with safe defaults.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "blogsmith.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "blogsmith-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	dataDir := strings.TrimSpace(os.Getenv("DATA_DIR"))
	if dataDir == "" {
		dataDir = "data"
	}

	model := strings.TrimSpace(os.Getenv("LLM_MODEL"))
	if model == "" {
		model = "gemini-2.5-flash"
	}

	blogsPerPage := 20
	if raw := strings.TrimSpace(os.Getenv("BLOGS_PER_PAGE")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			blogsPerPage = n
		}
	}

	attributionRoot := strings.TrimSpace(os.Getenv("ATTRIBUTION_ROOT"))
	if attributionRoot == "" {
		attributionRoot = "."
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		DatabasePath:    databasePath,
		SessionSecret:   sessionSecret,
		GinMode:         ginMode,
		DataDir:         dataDir,
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		ChatAPIKey:      strings.TrimSpace(os.Getenv("CHAT_ASSISTANT_API_KEY")),
		Model:           model,
		BlogsPerPage:    blogsPerPage,
		AttributionRoot: attributionRoot,
		AdminUsername:   strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminEmail:      strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:   strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
	}
}
