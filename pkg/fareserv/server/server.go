package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/quote"
)

// NewHTTPServer returns a new HTTP server
func NewHTTPServer(addr string, svc *quote.Service) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: newHTTPServer(svc, nil).routes(),
	}
}

// NewDiagnosticServer returns a server that answers every request with the
// model load failure. No prediction is attempted.
func NewDiagnosticServer(addr string, loadErr error) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: newHTTPServer(nil, loadErr).routes(),
	}
}

type httpServer struct {
	log     *log.Logger
	quote   *quote.Service
	loadErr error
	now     func() time.Time
}

func newHTTPServer(svc *quote.Service, loadErr error) *httpServer {
	return &httpServer{
		log:     log.New(os.Stdout, "logs: ", log.LstdFlags),
		quote:   svc,
		loadErr: loadErr,
		now:     time.Now,
	}
}

func (h *httpServer) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestID)
	if h.loadErr != nil {
		r.PathPrefix("/").HandlerFunc(h.Halted)
		return r
	}
	r.HandleFunc("/", h.GetForm).Methods(http.MethodGet)
	r.HandleFunc("/", h.PostForm).Methods(http.MethodPost)
	r.HandleFunc("/api/options", h.GetOptions).Methods(http.MethodGet)
	r.HandleFunc("/api/predict", h.PostPredict).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	return r
}

type ctxKey struct{}

func (h *httpServer) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		h.log.Printf("%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}
