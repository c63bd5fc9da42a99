package httphandler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/guicpereira/LojaVOKA/internal/adapter/sheety"
	"github.com/guicpereira/LojaVOKA/internal/core/domain"
	"github.com/guicpereira/LojaVOKA/internal/core/port"
)

// AdminGate is the password gate in front of the catalog mutation
// endpoints. One shared session: unlocking opens the gate for everyone
// until logout.
type AdminGate struct {
	password string
	unlocked atomic.Bool
}

func NewAdminGate(password string) *AdminGate {
	return &AdminGate{password: password}
}

func (g *AdminGate) Unlock(password string) bool {
	ok := subtle.ConstantTimeCompare(
		[]byte(password), []byte(g.password),
	) == 1
	if ok {
		g.unlocked.Store(true)
	}
	return ok
}

func (g *AdminGate) Lock() {
	g.unlocked.Store(false)
}

func (g *AdminGate) Require(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if !g.unlocked.Load() {
			writeError(w, http.StatusUnauthorized, "acesso negado")
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

// AdminHandler serves the back-office surface: session management plus
// product create and delete.
type AdminHandler struct {
	admin port.CatalogAdmin
	gate  *AdminGate
}

func RegisterAdmin(mux *http.ServeMux, admin port.CatalogAdmin, gate *AdminGate) {
	h := AdminHandler{admin, gate}
	mux.HandleFunc("POST /v1/admin/session", h.Login)
	mux.HandleFunc("DELETE /v1/admin/session", h.Logout)
	mux.Handle("POST /v1/admin/products",
		gate.Require(http.HandlerFunc(h.CreateProduct)))
	mux.Handle("DELETE /v1/admin/products/{id}",
		gate.Require(http.HandlerFunc(h.DeleteProduct)))
}

func (h AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.Login"
	log := slog.With("op", op)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, "JSON invalido")
		return
	}

	if !h.gate.Unlock(req.Password) {
		log.Warn("rejected login attempt")
		writeError(w, http.StatusUnauthorized, "senha incorreta")
		return
	}

	log.Info("admin session opened")
	w.WriteHeader(http.StatusNoContent)
}

func (h AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.Logout"

	h.gate.Lock()
	slog.With("op", op).Info("admin session closed")
	w.WriteHeader(http.StatusNoContent)
}

func (h AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.CreateProduct"
	log := slog.With("op", op)

	var draft ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, "JSON invalido")
		return
	}

	err := h.admin.CreateProduct(r.Context(), draft.toDomain())
	if err != nil {
		var validationErr *domain.ValidationError
		var remoteErr *sheety.RemoteError
		switch {
		case errors.As(err, &validationErr):
			writeError(w, http.StatusUnprocessableEntity, validationErr.Error())
		case errors.As(err, &remoteErr):
			log.Error("remote store rejected create", "err", err)
			writeError(w, http.StatusBadGateway, "loja remota indisponivel")
		default:
			log.Error("failed to create product", "err", err)
			writeError(w, http.StatusInternalServerError, "erro interno")
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	const op = "AdminHandler.DeleteProduct"
	log := slog.With("op", op)

	err := h.admin.DeleteProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		var remoteErr *sheety.RemoteError
		if errors.As(err, &remoteErr) {
			log.Error("remote store rejected delete", "err", err)
			writeError(w, http.StatusBadGateway, "loja remota indisponivel")
			return
		}
		log.Error("failed to delete product", "err", err)
		writeError(w, http.StatusInternalServerError, "erro interno")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
