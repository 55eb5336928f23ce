package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"ragpipe/internal/adapter/cache"
	"ragpipe/internal/adapter/llm"
	"ragpipe/internal/httpapi"
	"ragpipe/internal/usecase"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the question-answering API over HTTP",
	Long: `Start an HTTP server exposing GET /ask?question=... Pipeline errors
are reported in the response body rather than as HTTP error statuses, so a
broken vector store degrades answers without failing requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

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
		if cfg.Retrieve.CacheSize > 0 {
			ttl := time.Duration(cfg.Retrieve.CacheTTLSecs) * time.Second
			ask.WithCache(cache.NewAnswerCache(cfg.Retrieve.CacheSize, ttl))
		}

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		server := &http.Server{
			Addr:         addr,
			Handler:      httpapi.NewHandler(ask).Routes(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		}

		fmt.Printf("Serving on %s (index %q, model %s)\n", addr, cfg.Index.Name, embedder.ModelName())
		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
