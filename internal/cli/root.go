package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"ragpipe/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "ragpipe",
	Short: "Retrieval-augmented question answering over indexed documents",
	Long: `ragpipe ingests text documents into a remote vector index, retrieves
semantically relevant chunks for a question, and composes an answer.

Example usage:
  ragpipe create-index                 # Provision the remote vector index
  ragpipe ingest ./docs                # Chunk, embed, and index documents
  ragpipe ask "What is Paris known for?"
  ragpipe serve                        # Serve GET /ask over HTTP`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ragpipe.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
