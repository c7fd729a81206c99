package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/sfac/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/sfac.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new sfac configuration file",
		Long: `Initialize creates a new .sfac configuration file in the current directory.

The generated file includes:
- The enumeration sources used when --sources is not given
- Tuning for the built-in subfinder source
- External enumeration commands such as Sublist3r
- Probe settings (User-Agent and extra headers)

Examples:
  # Create .sfac in current directory
  sfac init

  # Create config file at a specific path
  sfac init -o myconfig.yaml

  # Create the config file in the XDG config directory
  sfac init --xdg

  # Force overwrite existing file
  sfac init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().Bool("xdg", false,
		"Write to the XDG config directory (overrides --output)")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	useXDG, err := cmd.Flags().GetBool("xdg")
	if err != nil {
		return err
	}
	if useXDG {
		outputPath = filepath.Join(config.XDGConfigDir(), "config.yaml")
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/sfac.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// The file may hold API keys and auth headers.
	if err := os.WriteFile(outputPath, content, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure settings such as:")
	fmt.Fprintln(out, "  - Enumeration sources and subfinder tuning")
	fmt.Fprintln(out, "  - External enumeration commands")
	fmt.Fprintln(out, "  - Probe User-Agent and headers")

	return nil
}
