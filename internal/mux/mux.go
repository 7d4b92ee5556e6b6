package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"holdempoker-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry
}

// NewMux returns a new HTTP mux backed by the given room registry
func NewMux(version string, registry *room.Registry) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

	rr := r.PathPrefix("/room/{code:[0-9]{5}}").Subrouter()
	rr.Methods(http.MethodPost).Path("/join").Handler(this.postRoomJoin())
	rr.Methods(http.MethodGet).Path("/state").Handler(this.getRoomState())
	rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomWS())

	return this
}
