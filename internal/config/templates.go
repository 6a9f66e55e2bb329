package config

import (
	"fmt"
	"os"
)

func Template() string {
	return dumpTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(dumpTemplate), 0o600)
}

const dumpTemplate = `# payload encoding on the command line: hex or base64
input = "hex"

# exit cleanly when no struct codec is registered for -emsg
skip_unregistered = false

# echo the raw body (hex) above the rendering
show_body = false

log_level = "info"
`
