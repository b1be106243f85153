package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration values.

Settings live in ~/.partsbin/config.toml; a partsbin.toml in the
working directory overrides them per project. Useful keys:

  storage.backend            sqlite or json
  storage.sqlite_path        database file location
  storage.json_path          JSON inventory location
  ocr.service                mistral, openai, or ocrspace
  ocr.timeout_seconds        per-photo OCR timeout
  ocr.requests_per_minute    client-side OCR rate limit
  ingest.preprocess          text hooks run before extraction
  ingest.postprocess         record hooks run after review`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}
