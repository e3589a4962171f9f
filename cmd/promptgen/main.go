package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "go.uber.org/automaxprocs"

	"github.com/sozercan/prompt-generator/internal/config"
	"github.com/sozercan/prompt-generator/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries state shared by all subcommands of one command tree.
type cli struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
}

// newRootCmd builds the command tree. Each call gets its own viper instance so
// tests can run commands side by side.
func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.SetEnvPrefix("PROMPTGEN")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "promptgen",
		Short: "Generate and optimize prompts for images, workflows, code, and automation",
		Long: `promptgen assembles random prompts from a fixed template catalog and
rewrites vague instructions into explicit ones using keyword rules.

Run "promptgen serve" to start the HTTP API.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info for serve, warn otherwise)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	_ = c.v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = c.v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(
		c.newServeCmd(),
		newGenerateCmd(),
		newOptimizeCmd(),
		newTypesCmd(),
		newCatalogCmd(),
	)
	return rootCmd
}

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	config.ApplyOverrides(cfg, c.v)
	if cmd.Name() != "serve" && !c.v.IsSet("log.level") {
		cfg.Log.Level = "warn"
	}

	if err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}
