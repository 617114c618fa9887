package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rootstock-community/create-rsk-dapp/configs"
	"github.com/rootstock-community/create-rsk-dapp/internal/execx"
	"github.com/rootstock-community/create-rsk-dapp/internal/naming"
	"github.com/rootstock-community/create-rsk-dapp/internal/scaffold"
	"github.com/rootstock-community/create-rsk-dapp/internal/ui"
)

var CMD = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Scaffold a new full-stack Rootstock dapp project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configs.Values.Init
		if err := cfg.Validate(); err != nil {
			return err
		}

		printer := ui.NewPrinter()
		prompter := ui.NewStdinPrompter()

		name, err := resolveName(args, prompter)
		if err != nil {
			return err
		}

		template, err := resolveTemplate(cfg.Template, prompter)
		if err != nil {
			return err
		}

		packageManager, err := resolvePackageManager(cfg.PackageManager, prompter)
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		spec := Spec{
			Name:           name,
			Template:       template,
			TargetPath:     filepath.Join(cwd, name),
			PackageManager: packageManager,
			SkipInstall:    cfg.SkipInstall,
			SkipGit:        cfg.SkipGit,
		}

		orchestrator := NewOrchestrator(
			scaffold.NewMaterializer(cfg.TemplatesDir),
			execx.NewOSRunner(),
			printer,
		)

		if err := orchestrator.Create(cmd.Context(), spec); err != nil {
			return err
		}

		printer.Success("Created %s in %s", name, spec.TargetPath)
		printer.Info("Next steps:")
		printer.Hint("cd %s", name)
		if cfg.SkipInstall {
			printer.Hint("%s install", packageManager)
		}
		printer.Hint("%s run dev       # start the frontend", packageManager)
		printer.Hint("%s run deploy    # deploy RootstockGreeter to testnet", packageManager)

		return nil
	},
}

func resolveName(args []string, prompter ui.Prompter) (string, error) {
	if len(args) > 0 {
		res := naming.Validate(args[0])
		if !res.Valid {
			return "", fmt.Errorf("invalid project name %q:\n  %s", args[0], strings.Join(res.Errors, "\n  "))
		}
		return args[0], nil
	}

	return prompter.Ask(ui.Question{
		Text: "Project name",
		Validate: func(answer string) error {
			if res := naming.Validate(answer); !res.Valid {
				return errors.New(strings.Join(res.Errors, "; "))
			}
			return nil
		},
	})
}

func resolveTemplate(configured string, prompter ui.Prompter) (scaffold.Template, error) {
	if configured != "" {
		return scaffold.ParseTemplate(configured)
	}

	choices := make([]string, 0, len(scaffold.Templates))
	for _, tpl := range scaffold.Templates {
		choices = append(choices, tpl.String())
	}

	answer, err := prompter.Ask(ui.Question{
		Text:    "Which template?",
		Choices: choices,
	})
	if err != nil {
		return "", err
	}

	return scaffold.ParseTemplate(answer)
}

func resolvePackageManager(configured string, prompter ui.Prompter) (string, error) {
	if configured != "" {
		if !configs.ValidPackageManager(configured) {
			return "", fmt.Errorf("unsupported package manager %q", configured)
		}
		return configured, nil
	}

	return prompter.Ask(ui.Question{
		Text:    "Which package manager?",
		Choices: configs.PackageManagers,
		Default: configs.PackageManagerNpm,
	})
}
