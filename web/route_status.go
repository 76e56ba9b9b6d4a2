package web

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/bazarkua/molexa/pubchem"
)

type statusResponse struct {
	Status pubchem.Status `json:"status"`
}

func (h *handler) statusHandler(ctx context.Context) (statusResponse, error) {
	return statusResponse{Status: h.status.Current()}, nil
}

var statusUpgrader = websocket.Upgrader{
	// The api is anonymous and read only, same as the cors policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// statusWebsocketHandler pushes upstream status changes to the frontend so
// it can drop its wake-up polling loop once connected.
func (h *handler) statusWebsocketHandler(w http.ResponseWriter, r *http.Request) {
	connection, upgradeErr := statusUpgrader.Upgrade(w, r, nil)
	if upgradeErr != nil {
		log.Warnf("websocket upgrade failed: %v", upgradeErr)
		return
	}
	defer connection.Close()

	updates, cancel := h.status.Subscribe()
	defer cancel()

	if writeErr := connection.WriteJSON(statusResponse{Status: h.status.Current()}); writeErr != nil {
		return
	}

	// Reading keeps close frames processed and signals a gone client.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, readErr := connection.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-clientGone:
			return
		case status := <-updates:
			if writeErr := connection.WriteJSON(statusResponse{Status: status}); writeErr != nil {
				return
			}
		}
	}
}
