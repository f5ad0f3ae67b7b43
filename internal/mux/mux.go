package mux

import (
	"context"
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"texasholdem-server/internal/config"
	"texasholdem-server/pkg/bot"
	"texasholdem-server/pkg/room"
	"texasholdem-server/pkg/table"
)

type ctxKey int

const ctxTableKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version    string
	registry   *table.Registry
	hub        *room.Hub
	supervisor *bot.Supervisor

	defaultChips int
	defaultBots  int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	hub := room.NewHub()
	supervisor := bot.NewSupervisor(
		logrus.StandardLogger(),
		bot.RuleBased{},
		time.Duration(cfg.BotActionDelayMS)*time.Millisecond,
		hub.Broadcast,
	)

	this := &Mux{
		Router:       gmux.NewRouter(),
		version:      version,
		registry:     table.NewRegistry(),
		hub:          hub,
		supervisor:   supervisor,
		defaultChips: cfg.StartingChips,
		defaultBots:  cfg.BotCount,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodPost).Path("/next").Handler(this.postTableUUIDNext())
	tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl, err := m.registry.Get(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, tbl)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
