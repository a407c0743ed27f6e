package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server Server `mapstructure:"server"`
	Log    Log    `mapstructure:"log"`
	Market Market `mapstructure:"market"`
	Auth   Auth   `mapstructure:"auth"`
}

type Server struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// Market holds the protocol economics. Amounts are in smallest units. The
// creation fee and bid bond are flat amounts, never derived from the bid.
type Market struct {
	CreationFee     uint64 `mapstructure:"creation_fee"`
	BidBond         uint64 `mapstructure:"bid_bond"`
	Treasury        string `mapstructure:"treasury"`
	DisplayDecimals int32  `mapstructure:"display_decimals"`
}

type Auth struct {
	AdminSecret string `mapstructure:"admin_secret"`
}

// Load reads config.yaml (optional) with LE_-prefixed env overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("market.creation_fee", 1000)
	v.SetDefault("market.bid_bond", 300)
	v.SetDefault("market.treasury", "0xtreasury")
	v.SetDefault("market.display_decimals", 18)
	v.SetDefault("auth.admin_secret", "")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
