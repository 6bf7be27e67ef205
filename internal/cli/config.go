package cli

import (
	"github.com/spf13/viper"

	"github.com/cognicore/lexiscan/pkg/lexiscan/config"
)

// runConfig loads the run configuration file named by --config, or
// the one viper discovered. Commands overlay their flag values on
// top, so no file just means flag values only.
func runConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = viper.ConfigFileUsed()
	}
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(path)
}
