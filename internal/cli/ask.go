package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"ragpipe/internal/adapter/llm"
	"ragpipe/internal/usecase"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question against the indexed documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		question := strings.Join(args, " ")

		embedder, err := buildEmbedder(cfg)
		if err != nil {
			return err
		}
		store, err := openMetadataStore(cfg, GetRootDir())
		if err != nil {
			return err
		}
		defer store.Close()

		retriever := usecase.NewRetriever(embedder, buildIndexClient(cfg), store, cfg.Index.Name)
		composer := usecase.NewComposer(llm.NewRuleGenerator())
		ask := usecase.NewAskUseCase(retriever, composer, cfg.Retrieve.TopK)

		answer, err := ask.Ask(question)
		if err != nil {
			return fmt.Errorf("failed to answer: %w", err)
		}

		fmt.Println(answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
