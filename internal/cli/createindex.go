package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createIndexCmd = &cobra.Command{
	Use:   "create-index",
	Short: "Provision the remote vector index",
	Long: `Create the configured index on the remote vector store. The index
dimension and space type are taken from the config and must match the
embedding model used at ingestion time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		index := buildIndexClient(cfg)

		if err := index.Create(cfg.Index.Name, cfg.Index.Dimension, cfg.Index.SpaceType); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}

		fmt.Printf("Created index %q (dim=%d, space=%s) at %s\n",
			cfg.Index.Name, cfg.Index.Dimension, cfg.Index.SpaceType, cfg.Index.BaseURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createIndexCmd)
}
