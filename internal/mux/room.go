package mux

import (
	"errors"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"

	"holdempoker-server/pkg/room"
)

type createRoomRequest struct {
	Name          string `json:"name"`
	StartingChips int    `json:"startingChips"`
}

type joinRoomRequest struct {
	Name          string `json:"name"`
	StartingChips int    `json:"startingChips"`
}

type playerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Seat  int    `json:"seat"`
	Chips int    `json:"chips"`
}

type roomResponse struct {
	RoomCode string         `json:"roomCode"`
	Player   playerResponse `json:"player"`
	IsHost   bool           `json:"isHost"`
}

func newRoomResponse(code string, p *room.Player, isHost bool) roomResponse {
	return roomResponse{
		RoomCode: code,
		Player: playerResponse{
			ID:    p.ID,
			Name:  p.Name,
			Seat:  p.Seat,
			Chips: p.Chips,
		},
		IsHost: isHost,
	}
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createRoomRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		name := strings.TrimSpace(payload.Name)
		if name == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("name is required"))
			return
		}

		rm, host, err := m.registry.CreateRoom(name, payload.StartingChips)
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newRoomResponse(rm.Code(), host, true))
	}
}

func (m *Mux) postRoomJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload joinRoomRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		name := strings.TrimSpace(payload.Name)
		if name == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("name is required"))
			return
		}

		rm, err := m.registry.Room(gmux.Vars(r)["code"])
		if err != nil {
			writeRoomError(w, err)
			return
		}

		player, err := rm.Join(name, payload.StartingChips)
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newRoomResponse(rm.Code(), player, false))
	}
}

func (m *Mux) getRoomState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm, err := m.registry.Room(gmux.Vars(r)["code"])
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rm.Snapshot(r.FormValue("playerId")))
	}
}
