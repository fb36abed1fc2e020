package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/aegis/internal/app"
	"github.com/zhubert/aegis/internal/catalog"
	"github.com/zhubert/aegis/internal/chat"
	"github.com/zhubert/aegis/internal/config"
	"github.com/zhubert/aegis/internal/logger"
)

var (
	debugMode             bool
	mockMode              bool
	catalogPath           string
	configPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "aegis",
	Short: "Terminal cloud drive with an AI assistant",
	Long: `Aegis is a terminal cloud drive demo. Browse, search and preview a file
catalog next to a streaming AI assistant, behind a shared access code.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&mockMode, "mock", false, "Use the canned assistant instead of the API")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Load the file catalog from a YAML file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.aegis/config.json)")
}

func initConfig() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("aegis %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("aegis %s\n", version)
}

// loadCatalog returns the YAML catalog at path, or the built-in demo drive.
func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

// newGenerator picks the text generator. Without an API key the canned
// assistant keeps the demo usable offline.
func newGenerator(cfg *config.Config, secrets config.Secrets, forceMock bool) chat.Generator {
	if forceMock || secrets.APIKey == "" {
		logger.WithComponent("cmd").Info("using mock generator", "forced", forceMock)
		return &chat.MockGenerator{Delay: chat.DefaultMockDelay}
	}
	return chat.NewOpenAIGenerator(secrets.APIKey, secrets.ResolveBaseURL(cfg))
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Ensure logger is closed on exit
	defer logger.Close()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	secrets := config.LoadSecrets()

	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	m := app.New(cfg, app.Deps{
		Catalog:    cat,
		Generator:  newGenerator(cfg, secrets, mockMode),
		AccessCode: secrets.AccessCode,
		Version:    version,
		Now:        time.Now,
	})
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
