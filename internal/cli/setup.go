package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khanglvm/launchd/internal/config"
)

// NewSetupCmd creates the 'setup' command for writing a starter config.
func NewSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a default configuration file",
		Long: `Create ~/.launchd.json with the default settings and the built-in web
search engines. Existing configuration is left alone unless --force is given.`,
		Example: `  launchd setup
  launchd setup --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	return cmd
}

func runSetup(force bool) error {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		fmt.Printf("Config already exists at %s (use --force to overwrite).\n", path)
		return nil
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return err
	}

	fmt.Printf("Wrote default config to %s\n", path)
	fmt.Println("\nNext steps:")
	fmt.Println("  - Add custom commands under \"commands\"")
	fmt.Println("  - Adjust \"settings\" (matcher, thresholds, result limits)")
	fmt.Println("  - Try: launchd search firefox")
	return nil
}
