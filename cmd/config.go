package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/color"
	"github.com/whisperdoll/aria-client/config"
	"github.com/whisperdoll/aria-client/constant"
	"github.com/whisperdoll/aria-client/filesystem"
	"github.com/whisperdoll/aria-client/icon"
	"github.com/whisperdoll/aria-client/key"
	"github.com/whisperdoll/aria-client/playlist"
	"github.com/whisperdoll/aria-client/style"
	"github.com/whisperdoll/aria-client/util"
	"github.com/whisperdoll/aria-client/viewport"
	"github.com/whisperdoll/aria-client/where"
)

// validators reject values viper would store but the application could not use.
var validators = map[string]func(string) error{
	key.PlaylistSortBy: func(s string) error {
		_, err := playlist.ParseSortKey(s)
		return err
	},
	key.TUIScrollAlign: func(s string) error {
		_, err := viewport.ParseAlign(s)
		return err
	},
	key.IconsVariant: func(s string) error {
		if !lo.Contains(icon.AvailableVariants(), s) {
			return fmt.Errorf("unknown icons variant %q", s)
		}
		return nil
	},
}

func errUnknownKey(key string) error {
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(config.Closest(key)),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func configFilePath() string {
	return filepath.Join(where.Config(), constant.Aria+".toml")
}

func writeConfig() {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = viper.SafeWriteConfig()
	}

	handleErr(err)
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Keys to describe")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		if len(keys) == 0 {
			keys = config.Keys()
		}

		picked := util.PickKeys(config.Default, keys...)
		fields := make([]*config.Field, 0, len(keys))
		for _, k := range keys {
			field, ok := picked[k]
			if !ok {
				handleErr(errUnknownKey(k))
			}
			fields = append(fields, &field)
		}

		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())

			if i < len(fields)-1 {
				cmd.Print("\n\n")
			}
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Set a configuration value",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, raw := args[0], args[1]

		field, ok := config.Default[name]
		if !ok {
			handleErr(errUnknownKey(name))
		}

		if validate, ok := validators[name]; ok {
			handleErr(validate(raw))
		}

		var value any
		switch field.Value.(type) {
		case bool:
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				handleErr(fmt.Errorf("invalid boolean value: %s", raw))
			}
			value = parsed
		case int:
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				handleErr(fmt.Errorf("invalid integer value: %s", raw))
			}
			value = parsed
		default:
			value = raw
		}

		viper.Set(name, value)
		writeConfig()

		success("set %s to %s", style.Fg(color.Purple)(name), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print a configuration value",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		if _, ok := config.Default[args[0]]; !ok {
			handleErr(errUnknownKey(args[0]))
		}

		fmt.Println(viper.Get(args[0]))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			name = lo.Must(cmd.Flags().GetString("key"))
			all  = lo.Must(cmd.Flags().GetBool("all"))
		)

		if all {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			writeConfig()
			success("reset all config values")
			return
		}

		field, ok := config.Default[name]
		if !ok {
			handleErr(errUnknownKey(name))
		}

		viper.Set(name, field.Value)
		writeConfig()
		success("reset %s to %s", style.Fg(color.Purple)(name), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !util.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		success("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFilePath()))
		success("deleted config")
	},
}
