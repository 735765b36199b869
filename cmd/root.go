package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "secded",
	Short: "SEC-DED (10,6)+1 encoder, decoder and channel simulator",
	Long: `secded encodes 6 bit words into 11 bit codewords and decodes them again,
correcting any single bit error and detecting any double bit error.
It also ships channel simulators to measure the code under noise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogging(); err != nil {
			return err
		}
		return applyConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml); flags may also be set with SECDED_<COMMAND>_<FLAG> variables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose info")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write log entries as json to this file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("secded")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("Unable to read config file: ", err)
		return
	}
	logrus.Debugf("Using config file: %v", viper.ConfigFileUsed())
}

func initLogging() error {
	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	path := viper.GetString("log-file")
	if path == "" {
		return nil
	}

	logrus.AddHook(lfshook.NewHook(path, &logrus.JSONFormatter{}))
	return nil
}

// applyConfig fills every flag of cmd that was not given on the command line
// from the config file or the environment, keyed as <command>.<flag>.
func applyConfig(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := cmd.Name() + "." + f.Name
		if err != nil || f.Changed || !viper.IsSet(key) {
			return
		}

		value := viper.Get(key)
		if list, ok := value.([]interface{}); ok {
			parts := make([]string, len(list))
			for i, v := range list {
				parts[i] = fmt.Sprint(v)
			}
			value = strings.Join(parts, ",")
		}

		if serr := cmd.Flags().Set(f.Name, fmt.Sprint(value)); serr != nil {
			err = fmt.Errorf("invalid value for %v: %w", key, serr)
		}
	})
	return err
}
