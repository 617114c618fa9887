package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// gitignoreContent covers both supported toolchains so a template switch
// never leaves build output tracked.
const gitignoreContent = `# Dependencies
node_modules/

# Secrets
.env

# Hardhat
artifacts/
cache/
typechain-types/

# Foundry
contracts/out/
contracts/cache/
contracts/broadcast/
contracts/lib/

# Frontend build
frontend/dist/

# Coverage
coverage/
coverage.json

# Editor and OS
.vscode/
.idea/
.DS_Store
`

// WriteGitignore writes the project ignore-list file.
func WriteGitignore(projectDir string) error {
	path := filepath.Join(projectDir, ".gitignore")
	if err := os.WriteFile(path, []byte(gitignoreContent), 0644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return nil
}
