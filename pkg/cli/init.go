package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/getechod/echod/pkg/bindaddr"
	"github.com/getechod/echod/pkg/config"
	"github.com/spf13/cobra"
)

var (
	initOutput      string
	initForce       bool
	initInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long: `Create a starter echod configuration file.

The generated file holds the server defaults; edit it or re-run with
--interactive to be prompted for the bind address, port, and verbosity.`,
	Example: `  # Create default echod.yaml
  echod init

  # Interactive setup
  echod init -i

  # Create with custom filename
  echod init -o my-echod.yaml

  # Overwrite existing config
  echod init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutput, "output", "o", "echod.yaml", "Output filename")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Prompt for configuration values")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check if file already exists
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return fmt.Errorf("file already exists: %s\n\nUse --force to overwrite", initOutput)
	}

	settings := config.Default()

	if initInteractive {
		if err := runInteractiveInit(settings); err != nil {
			return err
		}
	}

	data, err := generateYAMLWithComments(settings)
	if err != nil {
		return fmt.Errorf("failed to generate YAML: %w", err)
	}

	if err := os.WriteFile(initOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Created %s\n", initOutput)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  echod serve --config %s\n", initOutput)
	fmt.Printf("  curl -i http://%s:%d/hello\n", settings.Host, settings.Port)

	return nil
}

// runInteractiveInit fills settings from a terminal form.
func runInteractiveInit(settings *config.Settings) error {
	host := settings.Host
	port := strconv.Itoa(settings.Port)
	verbose := settings.Verbose

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which address should the server bind?").
				Description("Must be a literal IP, e.g. 127.0.0.1 or 0.0.0.0").
				Value(&host).
				Validate(func(s string) error {
					_, err := bindaddr.ParseHost(s)
					return err
				}),
			huh.NewInput().
				Title("Which port should the server listen on?").
				Value(&port).
				Validate(func(s string) error {
					_, err := bindaddr.ParsePort(s)
					return err
				}),
			huh.NewConfirm().
				Title("Trace exchanges on stdout (verbose)?").
				Value(&verbose),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	n, err := bindaddr.ParsePort(port)
	if err != nil {
		return err
	}
	settings.Host = host
	settings.Port = int(n)
	settings.Verbose = verbose
	return nil
}

// generateYAMLWithComments renders settings as YAML with a usage header.
func generateYAMLWithComments(settings *config.Settings) ([]byte, error) {
	yamlData, err := config.ToYAML(settings)
	if err != nil {
		return nil, err
	}

	header := `# echod.yaml
# Generated by: echod init
#
# Start server:  echod serve --config echod.yaml
# Test endpoint: curl -i http://127.0.0.1:3001/hello

`
	return append([]byte(header), yamlData...), nil
}
