package httpapi

import (
	"encoding/json"
	"net/http"

	"ragpipe/internal/usecase"
)

// Handler exposes the question-answering pipeline over HTTP. Pipeline
// failures never become transport-level errors: every outcome is a normal
// response carrying either an answer or a structured error payload.
type Handler struct {
	ask *usecase.AskUseCase
}

func NewHandler(ask *usecase.AskUseCase) *Handler {
	return &Handler{ask: ask}
}

// Routes returns the request mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/ask", h.handleAsk)
	return mux
}

type rootResponse struct {
	Message string `json:"message"`
	Example string `json:"example"`
}

type askResponse struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
	Error    string `json:"error,omitempty"`
	Note     string `json:"note,omitempty"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, rootResponse{
		Message: "RAG API is running. Use GET /ask?question=Your+question",
		Example: "/ask?question=RAG",
	})
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("question")

	answer, err := h.ask.Ask(question)
	if err != nil {
		writeJSON(w, askResponse{
			Error: err.Error(),
			Note:  "error occurred inside the RAG pipeline (retrieval / vector search)",
		})
		return
	}

	writeJSON(w, askResponse{Question: question, Answer: answer})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
