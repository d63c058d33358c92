package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/workfit/internal/logger"
	"github.com/spigell/workfit/internal/reference"
	"github.com/spigell/workfit/internal/weights"
)

// env is what every command needs: a logger, the config and the reference data.
type env struct {
	log     *zap.Logger
	config  *Config
	table   *weights.Table
	catalog *reference.Catalog
}

func setup() *env {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	table := weights.Default()
	if config.WeightsFile != "" {
		table, err = weights.Load(config.WeightsFile)
		if err != nil {
			l.Fatal("loading weight table", zap.Error(err), zap.String("path", config.WeightsFile))
		}
	}
	l.Debug("weight table loaded", zap.Int("entries", table.Len()), zap.String("path", config.WeightsFile))

	catalog := reference.Default()
	if config.CatalogFile != "" {
		catalog, err = reference.Load(config.CatalogFile)
		if err != nil {
			l.Fatal("loading catalog", zap.Error(err), zap.String("path", config.CatalogFile))
		}
	}

	return &env{log: l, config: config, table: table, catalog: catalog}
}

func printJSON(w io.Writer, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(pretty))
	return err
}
