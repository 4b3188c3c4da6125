package web

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

// session is the per-connection state. Only the read loop goroutine touches
// it, so it needs no locking.
type session struct {
	srv    *Server
	conn   *Conn
	player string
	runs   int
	active *activeRun
}

// activeRun is a runner plus the goroutine forwarding its events.
type activeRun struct {
	runner *runner.Runner
	events *runner.ChannelSession
	done   chan struct{} // Closed when the forwarder returns
}

// readLoop handles incoming messages until the client disconnects.
//
//	"j" = join, "i" = intent, "r" = restart
func (s *session) readLoop() {
	defer s.stop()

	log := s.srv.logger
	for {
		_, raw, err := s.conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("read error", "conn", s.conn.ID, "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Debug("bad message", "conn", s.conn.ID, "error", err)
			continue
		}

		switch msg.Type {
		case MsgJoin:
			s.player = playerName(msg.Name, s.srv.config.Game.Player)
			s.start()

		case MsgRestart:
			if s.player == "" {
				s.conn.Send(newErrorMsg("join first")) //nolint:errcheck
				continue
			}
			s.start()

		case MsgIntent:
			if s.active == nil {
				s.conn.Send(newErrorMsg("join first")) //nolint:errcheck
				continue
			}
			// Unknown symbols are dropped silently
			if d, ok := core.ParseIntent(msg.Dir); ok {
				s.active.runner.Turn(d)
			}

		default:
			log.Debug("unknown message type", "conn", s.conn.ID, "type", msg.Type)
		}
	}
}

// nextSeed returns the configured seed for the first run of a connection
// when one is set, and a time-based seed otherwise.
func (s *session) nextSeed() int64 {
	s.runs++
	if s.runs == 1 && s.srv.config.Game.Seed != 0 {
		return s.srv.config.Game.Seed
	}
	return time.Now().UnixNano()
}

// start replaces the active run with a fresh engine. The old runner is fully
// stopped first so its events never interleave with the new run's.
func (s *session) start() {
	s.stop()

	cfg := s.srv.config.Game
	cfg.Player = s.player
	cfg.Seed = s.nextSeed()

	game, err := registry.NewRun(s.srv.config.Variant, cfg)
	if game == nil {
		s.srv.logger.Error("cannot start run", "conn", s.conn.ID, "error", err)
		s.conn.Send(newErrorMsg(err.Error())) //nolint:errcheck
		return
	}
	if err != nil {
		// Board full from the start; the runner reports the terminal state.
		s.srv.logger.Warn("run ended at start", "conn", s.conn.ID, "error", err)
	}

	id := runner.RunID(uuid.New().String())
	s.conn.Send(NewWelcomeMsg(string(id), game.ID(), cfg.Bounds())) //nolint:errcheck

	events := runner.NewChannelSession(64)
	run := &activeRun{
		runner: runner.New(id, game, cfg.TickInterval, events),
		events: events,
		done:   make(chan struct{}),
	}
	s.active = run

	s.srv.logger.Info("run started", "conn", s.conn.ID, "run", id, "player", cfg.Player, "seed", cfg.Seed)
	go run.runner.Run(s.srv.ctx, func(res runner.Result) {
		s.srv.logger.Info("run ended",
			"conn", s.conn.ID,
			"run", res.RunID,
			"stop", res.Stop,
			"reason", res.Snapshot.Reason,
			"score", res.Snapshot.Score,
		)
		if res.Stop == runner.StopGameOver {
			s.srv.saveRun(cfg, res)
		}
	})
	go s.forward(run)
}

// stop ends the active run, if any, and waits for its forwarder.
func (s *session) stop() {
	if s.active == nil {
		return
	}
	s.active.runner.Stop()
	<-s.active.done
	s.active.events.Close()
	s.active = nil
}

// forward converts runner events to wire messages until the run ends.
func (s *session) forward(run *activeRun) {
	defer close(run.done)

	for {
		select {
		case evt := <-run.events.Events():
			switch e := evt.(type) {
			case runner.SnapshotEvent:
				s.conn.Send(NewStateMsg(e.Snapshot)) //nolint:errcheck
			case runner.RunEndedEvent:
				if e.Result.Stop == runner.StopGameOver {
					s.conn.Send(NewGameOverMsg(e.Result.Snapshot)) //nolint:errcheck
				}
				return
			}
		case <-run.events.Done():
			return
		}
	}
}
