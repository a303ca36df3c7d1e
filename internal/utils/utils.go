package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configTemplate = `# Optional log level, default "info"
loglevel = "info"

[gofile]
# Optional. Gofile API token, found under https://gofile.io/myProfile.
# Leave empty for anonymous use; account endpoints then require no token
# but will be rejected by the service.
api_token = "{{GOFILE_API_TOKEN}}"

# Optional. Pin uploads to a regional upload host. One of:
# eu-par, na-phx, ap-sgp, ap-hkg, ap-tyo, sa-sao
# Leave empty to let the service route uploads automatically.
region = ""

# Optional. Default destination folder id for uploads and folder creation.
root_folder = ""
`

// GenerateConfig generates a configuration file with the given API token
func GenerateConfig(configPath, apiToken string) error {
	fmt.Printf("Generating config %s\n", configPath)

	config := strings.Replace(configTemplate, "{{GOFILE_API_TOKEN}}", apiToken, 1)

	// Don't clobber an existing config
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write config file
	fmt.Printf("Writing %s\n", configPath)
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// FormatSize renders a byte count in a human-readable unit
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
