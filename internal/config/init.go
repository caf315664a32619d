package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// scaffold is the commented starter file written by "ecotrace config init".
const scaffold = `# ecotrace configuration
logging:
  level: info      # trace, debug, info, warn, error
  format: console  # console or json
  # file: /tmp/ecotrace.log

server:
  host: localhost
  port: 8080
  enable_cors: true

output:
  format: table    # table or json
`

// Init writes the scaffold config file at path, creating parent directories.
// It refuses to overwrite an existing file unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(scaffold), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
