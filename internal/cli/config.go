package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gduarte/massing/pkg/settings"
)

// configCommand creates the config command for persisted run defaults.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and change persisted run defaults",
		Long: `View and change persisted run defaults.

Settings live in a TOML file under the user config directory and pre-fill
the solve command's module, floor height, tolerance and pass count.
Explicit solve flags always win over persisted values.`,
	}

	cmd.AddCommand(c.configListCommand())
	cmd.AddCommand(c.configGetCommand())
	cmd.AddCommand(c.configSetCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

// configListCommand creates the "config list" subcommand.
func (c *CLI) configListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, saved, err := loadSettings()
			if err != nil {
				return err
			}
			for _, key := range settings.Keys {
				value, _ := saved.Get(key)
				printKeyValue(key, value)
			}
			printDetail("file: %s", store.Path())
			return nil
		},
	}
}

// configGetCommand creates the "config get" subcommand.
func (c *CLI) configGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, saved, err := loadSettings()
			if err != nil {
				return err
			}
			value, err := saved.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
}

// configSetCommand creates the "config set" subcommand.
func (c *CLI) configSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, saved, err := loadSettings()
			if err != nil {
				return err
			}
			if err := saved.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := store.Save(saved); err != nil {
				return err
			}
			value, _ := saved.Get(args[0])
			printSuccess("%s = %s", args[0], value)
			return nil
		},
	}
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := settings.NewStore("")
			if err != nil {
				return err
			}
			fmt.Println(store.Path())
			return nil
		},
	}
}

func loadSettings() (*settings.Store, settings.Settings, error) {
	store, err := settings.NewStore("")
	if err != nil {
		return nil, settings.Settings{}, err
	}
	saved, err := store.Load()
	if err != nil {
		return nil, settings.Settings{}, err
	}
	return store, saved, nil
}
