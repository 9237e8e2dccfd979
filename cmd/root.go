/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/perelay/internal/config"
	"github.com/valpere/perelay/internal/relay"
)

var version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "perelay",
	Short: "Translation relay for browser clients",
	Long: `A small HTTP service that relays translation requests from a browser
to a translation provider and returns a flat JSON result.

Supported providers: gtx (default, keyless), google (Cloud Translation), mymemory

Use "perelay serve --help" for server options.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.perelay.yaml)")
	rootCmd.PersistentFlags().String("provider", "gtx", "Translation provider: gtx, google, mymemory")
	rootCmd.PersistentFlags().String("provider-url", "", "Override the provider endpoint URL")
	rootCmd.PersistentFlags().Duration("timeout", relay.DefaultTimeout, "Timeout for the outbound provider call")
	rootCmd.PersistentFlags().String("google-credentials", "", "Path to Google Cloud credentials (google provider)")
	rootCmd.PersistentFlags().String("google-project", "", "Google Cloud quota project (google provider)")
	rootCmd.PersistentFlags().String("mymemory-email", "", "MyMemory contact email (for higher limits)")

	viper.BindPFlag("provider.name", rootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("provider.base_url", rootCmd.PersistentFlags().Lookup("provider-url"))
	viper.BindPFlag("provider.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("google.credentials", rootCmd.PersistentFlags().Lookup("google-credentials"))
	viper.BindPFlag("google.project_id", rootCmd.PersistentFlags().Lookup("google-project"))
	viper.BindPFlag("mymemory.email", rootCmd.PersistentFlags().Lookup("mymemory-email"))
}

// initConfig wires defaults, PERELAY_* environment variables and the optional
// config file into the global viper instance.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".perelay")
	}

	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Failed to read config file %s: %v\n", cfgFile, err)
	}
}
