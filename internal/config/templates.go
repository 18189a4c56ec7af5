package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# LockedIn client configuration

[backend]
base_url = "http://localhost:8080/api"

[chat]
model = "llama-3.3-70b-versatile"
base_url = "https://api.groq.com/openai/v1"

[cache]
ttl_minutes = 5
# path = "~/.config/lockedin/session.db"

[ui]
color_enabled = true
`

const credentialsTemplate = `# LockedIn credentials
# The Groq key can also be supplied via the GROQ_API_KEY environment variable.

[groq]
api_key = ""
`

func createTemplateConfig(configDir string) error {
	return writeTemplate(filepath.Join(configDir, "config.toml"), configTemplate)
}

func createTemplateCredentials(configDir string) error {
	return writeTemplate(filepath.Join(configDir, "credentials.toml"), credentialsTemplate)
}

func writeTemplate(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing template %s: %w", filepath.Base(path), err)
	}
	return nil
}
