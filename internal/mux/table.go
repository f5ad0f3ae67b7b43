package mux

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"texasholdem-server/internal/util"
	"texasholdem-server/pkg/table"
)

type createTableRequest struct {
	Name  string `json:"name"`
	Bots  int    `json:"bots"`
	Chips int    `json:"chips"`
}

// postTable seats a human at seat 0 along with a number of automated
// opponents. The hand does not start until the client posts to /next.
func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := createTableRequest{Bots: -1}
		if !decodeRequest(w, r, &req) {
			return
		}

		if req.Name == "" {
			req.Name = "Player"
		}

		if req.Bots < 0 {
			req.Bots = m.defaultBots
		}

		if req.Chips <= 0 {
			req.Chips = m.defaultChips
		}

		seats := make([]table.Seat, 0, req.Bots+1)
		seats = append(seats, table.Seat{Name: req.Name, Chips: req.Chips, IsHuman: true})
		for i := 0; i < req.Bots; i++ {
			seats = append(seats, table.Seat{Name: util.GetRandomName(), Chips: req.Chips})
		}

		tbl, err := table.New(logrus.StandardLogger(), seats)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.registry.Add(tbl)
		logrus.WithFields(logrus.Fields{
			"table": tbl.ID(),
			"seats": len(seats),
		}).Info("created table")

		writeJSON(w, http.StatusCreated, tbl.State(0))
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		writeJSON(w, http.StatusOK, tbl.State(playerID(r)))
	}
}

func (m *Mux) postTableUUIDNext() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)

		if err := tbl.StartNewHand(); err != nil {
			if errors.Is(err, table.ErrNotEnoughPlayers) {
				writeJSONError(w, http.StatusConflict, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}

			return
		}

		state := tbl.State(playerID(r))
		m.hub.Broadcast(tbl)
		m.supervisor.Wake(tbl)

		writeJSON(w, http.StatusOK, state)
	}
}

type actionRequest struct {
	Player int    `json:"player"`
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)

		var req actionRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		action, err := table.ActionFromString(req.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := tbl.ProcessAction(req.Player, action, req.Amount); err != nil {
			if errors.Is(err, table.ErrNotYourTurn) {
				writeJSONError(w, http.StatusConflict, err)
			} else {
				writeJSONError(w, http.StatusBadRequest, err)
			}

			return
		}

		state := tbl.State(req.Player)
		m.hub.Broadcast(tbl)
		m.supervisor.Wake(tbl)

		writeJSON(w, http.StatusOK, state)
	}
}

// playerID is the seat a request wants its snapshot scoped to. The human is
// always at seat 0, so that's the default.
func playerID(r *http.Request) int {
	if val := r.FormValue("player"); val != "" {
		if id, err := strconv.Atoi(val); err == nil {
			return id
		}
	}

	return 0
}
