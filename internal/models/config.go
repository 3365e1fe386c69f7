package models

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// MenuEntry is one catalog seed tuple from the config file.
type MenuEntry struct {
	Type  string  `mapstructure:"type"`
	ID    int     `mapstructure:"id"`
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
	Size  string  `mapstructure:"size"`
}

type Config struct {
	CafeName       string      `mapstructure:"cafe_name"`
	CurrencySymbol string      `mapstructure:"currency_symbol"`
	StaffName      string      `mapstructure:"staff_name"`
	DemoMenuSize   int         `mapstructure:"demo_menu_size"`
	Menu           []MenuEntry `mapstructure:"menu"`
}

// LoadConfig initializes and reads the configuration using Viper. A missing
// config file is not an error when none was asked for explicitly; the
// built-in menu below is used instead.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("cafe")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("cafe_name", "Cafe")
	viper.SetDefault("currency_symbol", "£")
	viper.SetDefault("staff_name", "Front Counter")
	viper.SetDefault("demo_menu_size", 8)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	// Weakly typed input tolerates prices written as strings in YAML.
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.WeaklyTypedInput = true
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if len(config.Menu) == 0 {
		config.Menu = DefaultMenu()
	}
	return &config, nil
}

// DefaultMenu is the built-in catalog used when the config supplies none.
func DefaultMenu() []MenuEntry {
	return []MenuEntry{
		{Type: ItemTypeFood, ID: 1, Name: "Chuna Sandwich", Price: 3.50},
		{Type: ItemTypeFood, ID: 2, Name: "Chicken Wrap", Price: 4.50},
		{Type: ItemTypeFood, ID: 3, Name: "Turkey Sandwich", Price: 1.80},
		{Type: ItemTypeDrink, ID: 4, Name: "Latte", Price: 2.80, Size: "Medium"},
		{Type: ItemTypeDrink, ID: 5, Name: "Espresso", Price: 2.20, Size: "Small"},
		{Type: ItemTypeDrink, ID: 6, Name: "Diet Coke", Price: 1.20, Size: "Can"},
		{Type: ItemTypeDrink, ID: 7, Name: "Water", Price: 0.80, Size: "Bottle"},
		{Type: ItemTypeDrink, ID: 8, Name: "Flat White", Price: 2.00, Size: "Medium"},
	}
}
