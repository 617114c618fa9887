package scaffold

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rootstock-community/create-rsk-dapp/internal/logger"
	"github.com/rootstock-community/create-rsk-dapp/internal/network"
)

//go:embed templates
var templatesFS embed.FS

type (
	// theme carries the cosmetic values that distinguish the two stacks'
	// otherwise identical frontends.
	theme struct {
		Title      string
		Accent     string
		Background string
	}

	templateData struct {
		Testnet network.Config
		Mainnet network.Config
		Theme   theme
	}

	// fileSpec maps one embedded template file to its location in the
	// generated tree. Files ending in .tmpl are rendered with templateData;
	// everything else is copied byte for byte.
	fileSpec struct {
		src string
		dst string
	}

	// Materializer produces the complete file tree for a template. When a
	// pre-packaged template directory exists under templatesDir, that tree
	// is copied verbatim instead of generating files.
	Materializer struct {
		templatesDir string
		logger       *slog.Logger
	}
)

var themes = map[Template]theme{
	TemplateHardhat: {Title: "Rootstock Hardhat dApp", Accent: "#ff9100", Background: "#0b0b12"},
	TemplateFoundry: {Title: "Rootstock Foundry dApp", Accent: "#2bb673", Background: "#101314"},
}

var frontendFiles = []fileSpec{
	{"templates/frontend/package.json", "frontend/package.json"},
	{"templates/frontend/vite.config.js", "frontend/vite.config.js"},
	{"templates/frontend/index.html.tmpl", "frontend/index.html"},
	{"templates/frontend/src/main.jsx", "frontend/src/main.jsx"},
	{"templates/frontend/src/App.jsx.tmpl", "frontend/src/App.jsx"},
	{"templates/frontend/src/App.css.tmpl", "frontend/src/App.css"},
	{"templates/frontend/src/index.css.tmpl", "frontend/src/index.css"},
	{"templates/frontend/src/contracts/RootstockGreeter.json", "frontend/src/contracts/RootstockGreeter.json"},
}

var hardhatFiles = append([]fileSpec{
	{"templates/hardhat/package.json", "package.json"},
	{"templates/hardhat/hardhat.config.js.tmpl", "hardhat.config.js"},
	{"templates/contract/Greeter.sol", "contracts/Greeter.sol"},
	{"templates/hardhat/test/Greeter.js", "test/Greeter.js"},
	{"templates/hardhat/scripts/deploy.js", "scripts/deploy.js"},
}, frontendFiles...)

var foundryFiles = append([]fileSpec{
	{"templates/foundry/package.json", "package.json"},
	{"templates/foundry/foundry.toml.tmpl", "contracts/foundry.toml"},
	{"templates/contract/Greeter.sol", "contracts/src/Greeter.sol"},
	{"templates/foundry/test/Greeter.t.sol", "contracts/test/Greeter.t.sol"},
	{"templates/foundry/script/Deploy.s.sol", "contracts/script/Deploy.s.sol"},
}, frontendFiles...)

// Empty directories the scaffold promises even though no file lands there
// at generation time.
var scaffoldDirs = map[Template][]string{
	TemplateHardhat: {
		"frontend/src/components", "frontend/src/hooks", "frontend/src/utils", "frontend/public",
	},
	TemplateFoundry: {
		"frontend/src/components", "frontend/src/hooks", "frontend/src/utils", "frontend/public",
	},
}

// NewMaterializer creates a materializer. templatesDir may be empty; when
// set and containing a directory named after the template, that directory
// is copied instead of generating files.
func NewMaterializer(templatesDir string) *Materializer {
	return &Materializer{
		templatesDir: templatesDir,
		logger:       logger.Named("materializer"),
	}
}

// Materialize writes the full project tree for tpl under targetDir. The
// caller guarantees targetDir exists and is freshly created; partial output
// cleanup on failure is the orchestrator's responsibility.
func (m *Materializer) Materialize(tpl Template, targetDir string) error {
	if m.templatesDir != "" {
		packaged := filepath.Join(m.templatesDir, tpl.String())
		if info, err := os.Stat(packaged); err == nil && info.IsDir() {
			m.logger.With("template", tpl.String()).With("source", packaged).
				Info("copying pre-packaged template")
			return copyTree(packaged, targetDir)
		}
	}

	m.logger.With("template", tpl.String()).With("target", targetDir).
		Info("generating template files")

	return m.generate(tpl, targetDir)
}

func (m *Materializer) generate(tpl Template, targetDir string) error {
	testnet, err := network.Lookup(network.Testnet)
	if err != nil {
		return err
	}
	mainnet, err := network.Lookup(network.Mainnet)
	if err != nil {
		return err
	}

	data := templateData{Testnet: testnet, Mainnet: mainnet, Theme: themes[tpl]}

	var files []fileSpec
	switch tpl {
	case TemplateHardhat:
		files = hardhatFiles
	case TemplateFoundry:
		files = foundryFiles
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, tpl)
	}

	for _, spec := range files {
		if err := m.emit(spec, targetDir, data); err != nil {
			return err
		}
	}

	for _, dir := range scaffoldDirs[tpl] {
		if err := os.MkdirAll(filepath.Join(targetDir, dir), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return nil
}

func (m *Materializer) emit(spec fileSpec, targetDir string, data templateData) error {
	content, err := templatesFS.ReadFile(spec.src)
	if err != nil {
		return fmt.Errorf("failed to read embedded template %s: %w", spec.src, err)
	}

	if strings.HasSuffix(spec.src, ".tmpl") {
		tmpl, err := template.New(filepath.Base(spec.src)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", spec.src, err)
		}

		var rendered strings.Builder
		if err := tmpl.Execute(&rendered, data); err != nil {
			return fmt.Errorf("failed to render template %s: %w", spec.src, err)
		}
		content = []byte(rendered.String())
	}

	dst := filepath.Join(targetDir, spec.dst)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", spec.dst, err)
	}
	if err := os.WriteFile(dst, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", spec.dst, err)
	}

	return nil
}
