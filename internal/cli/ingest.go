package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"ragpipe/internal/adapter/chunker"
	"ragpipe/internal/adapter/fs"
	"ragpipe/internal/usecase"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file-or-directory>",
	Short: "Chunk, embed, and index documents",
	Long: `Ingest a single text file or a directory tree. Directories are walked
with the configured include and exclude patterns. Each document is split into
sentence chunks, the chunks are embedded in batches, chunk texts are saved to
the local metadata store, and the vectors are inserted into the remote index.

Re-running ingestion replaces the previous run's metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		paths, err := collectSources(args[0])
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no documents matched under %s", args[0])
		}

		embedder, err := buildEmbedder(cfg)
		if err != nil {
			return err
		}
		index := buildIndexClient(cfg)
		store, err := openMetadataStore(cfg, GetRootDir())
		if err != nil {
			return err
		}
		defer store.Close()

		ingest := usecase.NewIngestUseCase(
			chunker.NewSentenceChunker(cfg.Ingest.SentencesPerChunk),
			embedder,
			index,
			store,
			cfg.Index.Name,
			cfg.Embedding.BatchSize,
		)

		var bar *progressbar.ProgressBar
		ingest.SetProgress(func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionEnableColorCodes(true),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionSetDescription("[cyan]Embedding[reset]"),
					progressbar.OptionClearOnFinish(),
				)
			}
			_ = bar.Set(done)
		})

		result, err := ingest.Ingest(paths)
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}

		fmt.Printf("Ingested %d document(s), %d chunk(s) into index %q\n",
			result.Documents, result.Chunks, cfg.Index.Name)
		return nil
	},
}

// collectSources resolves a file or directory argument into document paths.
func collectSources(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", arg, err)
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}

	cfg := GetConfig()
	walker := fs.NewWalker(cfg.Ingest.Includes, cfg.Ingest.Excludes)
	return walker.Walk(arg)
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
