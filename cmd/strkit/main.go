package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/c9s/strkit"
)

var log = logrus.WithField("application", "strkit")

var config *strkit.Config

var RootCmd = &cobra.Command{
	Use:   "strkit",
	Short: "strkit string toolkit",
	Long:  "strkit measures, converts and validates strings: edit distance, identifier cases, Persian digits and Iranian identifiers",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}

		configFile := viper.GetString("config")
		if _, err := os.Stat(configFile); err != nil {
			if !os.IsNotExist(err) {
				return err
			}

			log.Debugf("config file %s does not exist, using defaults", configFile)
			configFile = ""
		}

		var err error
		config, err = strkit.LoadConfig(configFile)
		return err
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "strkit.yaml", "config file")

	viper.SetEnvPrefix("STRKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}
}

func main() {
	logrus.SetFormatter(&prefixed.TextFormatter{})

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
