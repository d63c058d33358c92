package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app       = "workfit"
	envPrefix = "WORKFIT"
)

type Config struct {
	WeightsFile string      `mapstructure:"weights-file"`
	CatalogFile string      `mapstructure:"catalog-file"`
	Match       MatchConfig `mapstructure:"match"`
}

type MatchConfig struct {
	MinimumScore *float64 `mapstructure:"minimum-score" validate:"omitempty,gte=-2,lte=2"`
	Limit        int      `mapstructure:"limit" validate:"gte=0"`
	Workers      int      `mapstructure:"workers" validate:"gte=0,lte=256"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "workfit matches job seekers and postings by work-style compatibility",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, key := range []string{"weights-file", "catalog-file", "match.minimum-score", "match.limit", "match.workers"} {
		if err := viper.BindEnv(key); err != nil {
			log.Fatalf("binding environment variable for %s: %v", key, err)
		}
	}

	viper.SetDefault("match.workers", 1)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is workfit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("weights-file", "", "weight table file (default is the built-in table)")
	rootCmd.PersistentFlags().String("catalog-file", "", "archetype and tag catalog file (default is the built-in catalog)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("weights-file", rootCmd.PersistentFlags().Lookup("weights-file"))
	viper.BindPFlag("catalog-file", rootCmd.PersistentFlags().Lookup("catalog-file"))
}

func initConfig() {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// An explicit config must parse; the default one may be absent.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

var validate = validator.New()

func getConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
