package webd

import (
	"encoding/json"

	"github.com/olahol/melody"
	"github.com/rotblauer/pintour/events"
	"github.com/rotblauer/pintour/geo/tour"
	"github.com/rotblauer/pintour/locdb/cache"
	"github.com/rotblauer/pintour/types/location"
)

type websocketAction string

const (
	websocketActionTour     websocketAction = "tour"
	websocketActionPopulate websocketAction = "populate"
)

type broadcast struct {
	Action websocketAction   `json:"action"`
	Tour   *tour.Tour        `json:"tour,omitempty"`
	Pins   []location.Record `json:"pins,omitempty"`
}

// initMelody sets up the websocket handler.
// New clients get the last tour; everyone gets new tours and pushed pins as they happen.
func (s *WebDaemon) initMelody() {
	s.melodyInstance = melody.New()

	s.melodyInstance.HandleConnect(func(sess *melody.Session) {
		s.logger.Debug("Websocket connected", "remote", sess.Request.RemoteAddr)
		last := cache.GetLastTour()
		if last == nil {
			return
		}
		b, err := json.Marshal(broadcast{Action: websocketActionTour, Tour: last})
		if err != nil {
			s.logger.Error("Failed to marshal last tour", "error", err)
			return
		}
		if err := sess.Write(b); err != nil {
			s.logger.Warn("Failed to replay last tour", "error", err)
		}
	})

	// Clients have nothing to say. Log and drop.
	s.melodyInstance.HandleMessage(func(sess *melody.Session, msg []byte) {
		s.logger.Debug("Websocket message", "remote", sess.Request.RemoteAddr, "msg", string(msg))
	})

	s.melodyInstance.HandleDisconnect(func(sess *melody.Session) {
		s.logger.Debug("Websocket disconnected", "remote", sess.Request.RemoteAddr)
	})

	s.melodyInstance.HandleError(func(sess *melody.Session, e error) {
		s.logger.Debug("Websocket error", "error", e, "remote", sess.Request.RemoteAddr)
	})

	tours := make(chan *tour.Tour)
	tourSub := events.TourGeneratedFeed.Subscribe(tours)
	pushes := make(chan []location.Record)
	pushSub := events.HTTPPopulateFeed.Subscribe(pushes)
	m := s.melodyInstance
	go func() {
		defer tourSub.Unsubscribe()
		defer pushSub.Unsubscribe()
		for {
			var msg broadcast
			select {
			case t := <-tours:
				msg = broadcast{Action: websocketActionTour, Tour: t}
			case pins := <-pushes:
				msg = broadcast{Action: websocketActionPopulate, Pins: pins}
			case err := <-tourSub.Err():
				if err != nil {
					s.logger.Error("Tour feed subscription failed", "error", err)
				}
				return
			case err := <-pushSub.Err():
				if err != nil {
					s.logger.Error("Populate feed subscription failed", "error", err)
				}
				return
			}
			if m.IsClosed() {
				return
			}
			b, err := json.Marshal(msg)
			if err != nil {
				s.logger.Error("Failed to marshal broadcast", "error", err)
				continue
			}
			if err := m.Broadcast(b); err != nil {
				s.logger.Warn("Failed to broadcast", "action", msg.Action, "error", err)
			}
		}
	}()
}
