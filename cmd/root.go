package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"housing-cli/api"
)

var (
	outputJSON bool
	verbose    bool
	cfg        Config
	client     *api.Client
	logger     *slog.Logger
)

type Config struct {
	APIURL        string `json:"api_url"`
	PageSize      int    `json:"page_size"`
	DefaultPeople string `json:"default_people"`
}

var rootCmd = &cobra.Command{
	Use:   "housing",
	Short: "Housing Easy CLI for browsing and booking rooms",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
		client = api.NewClient(resolveAPIURL())
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(roomsCmd())
	rootCmd.AddCommand(roomCmd())
	rootCmd.AddCommand(bookCmd())
	rootCmd.AddCommand(bookingsCmd())
	rootCmd.AddCommand(reviewCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(visitsCmd())
	rootCmd.AddCommand(authCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")
}

func initConfig() {
	// A missing .env is fine, the environment may be set some other way.
	_ = godotenv.Load()

	loaded, err := loadConfig()
	if err == nil {
		cfg = loaded
	}
}

func resolveAPIURL() string {
	if url := os.Getenv("HOUSING_API_URL"); url != "" {
		return url
	}
	return cfg.APIURL
}

func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var conf Config
	if err := json.NewDecoder(file).Decode(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "housing", "config.json"), nil
}
