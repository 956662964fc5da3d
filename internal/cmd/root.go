// SPDX-License-Identifier: MIT

// Package cmd implements the glacmb command line.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/glacmb/gdir"
	"github.com/katalvlaran/glacmb/internal/config"
	"github.com/katalvlaran/glacmb/internal/logging"
)

// app carries the state shared by subcommands once the config is loaded.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	log    *logging.Logger
	store  *gdir.Store
	logged bool // log is file-backed and must be closed
}

// NewRootCmd builds the command tree around v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}

	root := &cobra.Command{
		Use:   "glacmb",
		Short: "Glacier directory adapter and stochastic mass-balance driver",
		Long: `glacmb reads preprocessed glacier directories (gridded topography,
flowlines) and turns them into inputs for a glacier evolution model:
altitude/width/thickness tables and a random-ELA linear mass balance.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/glacmb/config.yaml)")
	root.PersistentFlags().StringP("workdir", "w", "", "working directory holding per_glacier/")
	root.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	_ = v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("store.working_dir", root.PersistentFlags().Lookup("workdir"))
	_ = v.BindPFlag("logging.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newRGIIDCmd(),
		newZWHCmd(a),
		newELACmd(a),
		newSimulateCmd(a),
	)
	for _, c := range root.Commands() {
		if c.RunE != nil {
			c.RunE = a.logFailure(c.RunE)
		}
	}

	return root
}

// Execute runs the root command on the global viper instance
func Execute() error {
	return NewRootCmd(viper.GetViper()).Execute()
}

// initConfig resolves defaults, config file and environment into a.v.
func (a *app) initConfig() error {
	config.SetDefaults(a.v)

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(config.ConfigDir())
		a.v.AddConfigPath(".")
	}

	a.v.SetEnvPrefix("GLACMB")
	// GLACMB_MODEL_SIGMA_ELA for model.sigma_ela
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.v.GetString("config") != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Logging.Dir != "" {
		if a.log, err = logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level); err != nil {
			return err
		}
		a.logged = true
	} else {
		a.log = logging.NewStreamLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
	}
	a.log = a.log.WithCommand(cmd.Name())

	a.store, err = gdir.NewStore(cfg.Store.WorkingDir, gdir.WithLogger(a.log))
	return err
}

// logFailure logs an error returned by run and releases the logger, since
// cobra skips PersistentPostRunE when RunE fails.
func (a *app) logFailure(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil && a.log != nil {
			a.log.Error("command failed", "args", args, "error", err.Error())
			_ = a.teardown()
		}
		return err
	}
}

func (a *app) teardown() error {
	if a.logged && a.log != nil {
		return a.log.Close()
	}
	return nil
}
