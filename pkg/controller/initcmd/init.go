package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# selint - https://github.com/selint-dev/selint
# files:
#   - pattern: \.py$
#   - pattern: ^scripts/.*\.py$

# patterns replaces the built-in catalog of forbidden signatures.
# patterns:
#   - id: legacy-chrome-options
#     regexp: \bchrome_options\s*=
#     message: the chrome_options keyword argument was removed in Selenium 4. Use options= instead
`
	filePermission os.FileMode = 0o644
)

// Init creates a new selint configuration file if it doesn't exist.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
