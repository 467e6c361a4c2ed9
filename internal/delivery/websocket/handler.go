package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"stock-screener-backend/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// Handler pushes the latest scan results to connected clients.
type Handler struct {
	repo     domain.ScreenerRepository
	interval time.Duration
}

func NewHandler(repo domain.ScreenerRepository, interval time.Duration) *Handler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Handler{
		repo:     repo,
		interval: interval,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()

	log.Println("New client connected")

	// Send the current result set immediately.
	stocks := h.repo.GetStocks()
	if err := conn.WriteJSON(stocks); err != nil {
		log.Println("Write error:", err)
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			current := h.repo.GetStocks()
			if err := conn.WriteJSON(current); err != nil {
				log.Println("Write error:", err)
				return
			}
		}
	}
}
