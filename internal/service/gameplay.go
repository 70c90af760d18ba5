package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/rocketscienceinc/monopoly-backend/internal/replica"
)

var ErrMatchNotFound = errors.New("match not found")

// BroadcastFunc pushes the full snapshot to every participant of the game.
type BroadcastFunc func(gameID string, snapshot replica.Snapshot)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	DeleteByID(ctx context.Context, id string) error
}

// envelope carries one unit of work through a match's intent channel.
// resolveCard marks the internal card-resolution step that only the host
// pipeline itself may enqueue.
type envelope struct {
	intent      monopoly.Intent
	resolveCard bool
	reply       chan error
}

type match struct {
	game    *entity.Game
	intents chan envelope
	cancel  context.CancelFunc
}

// GamePlay is the host side of the protocol: every mutation of every match
// runs on that match's single loop goroutine, so intents are applied in
// arrival order with no locking around the aggregate.
type GamePlay struct {
	logger  *slog.Logger
	engine  *monopoly.Engine
	decider Decider

	gameRepo  gameRepo
	cardDelay time.Duration
	botDelay  time.Duration

	broadcast BroadcastFunc

	mu      sync.RWMutex
	matches map[string]*match
}

func NewGamePlay(logger *slog.Logger, engine *monopoly.Engine, decider Decider, gameRepo gameRepo, cardDelay, botDelay time.Duration) *GamePlay {
	return &GamePlay{
		logger:    logger.With("component", "gameplay"),
		engine:    engine,
		decider:   decider,
		gameRepo:  gameRepo,
		cardDelay: cardDelay,
		botDelay:  botDelay,
		matches:   make(map[string]*match),
	}
}

// SetBroadcast wires the relay's snapshot fan-out. Must be called before
// the first match starts.
func (that *GamePlay) SetBroadcast(broadcast BroadcastFunc) {
	that.broadcast = broadcast
}

// StartMatch creates the authoritative game from a started room's roster
// and launches its intent loop.
func (that *GamePlay) StartMatch(ctx context.Context, room *entity.Room) (*entity.Game, error) {
	rules := that.engine.Rules()

	game := entity.NewGame(room.ID)
	for _, seat := range room.Seats {
		game.Players = append(game.Players, &entity.Player{
			ID:    seat.ID,
			Name:  seat.Name,
			Money: rules.StartMoney,
			Bot:   seat.IsAutomated,
			Host:  seat.IsHost,
		})
	}

	game.Status = entity.StatusOngoing
	game.Phase = entity.PhaseRoll
	game.Seq = 1
	game.LogEvent(entity.EventInfo, "the game begins, it is %s's turn", game.Players[0].Name)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to persist game: %w", err)
	}

	matchCtx, cancel := context.WithCancel(ctx)
	m := &match{
		game:    game,
		intents: make(chan envelope),
		cancel:  cancel,
	}

	that.mu.Lock()
	that.matches[game.ID] = m
	that.mu.Unlock()

	go that.runMatch(matchCtx, m)

	if that.broadcast != nil {
		that.broadcast(game.ID, replica.NewSnapshot(game))
	}

	that.driveBot(matchCtx, m.game, m)

	return game, nil
}

// Submit queues the intent for the match and reports the validation result.
// A returned apperror sentinel means the intent was a no-op.
func (that *GamePlay) Submit(ctx context.Context, gameID string, intent monopoly.Intent) error {
	that.mu.RLock()
	m, ok := that.matches[gameID]
	that.mu.RUnlock()

	if !ok {
		return ErrMatchNotFound
	}

	env := envelope{intent: intent, reply: make(chan error, 1)}

	select {
	case m.intents <- env:
	case <-ctx.Done():
		return fmt.Errorf("submit cancelled: %w", ctx.Err())
	}

	select {
	case err := <-env.reply:
		return err
	case <-ctx.Done():
		return fmt.Errorf("submit cancelled: %w", ctx.Err())
	}
}

// GameByID returns the current authoritative state of a running match.
func (that *GamePlay) GameByID(gameID string) (*entity.Game, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	m, ok := that.matches[gameID]
	if !ok {
		return nil, false
	}
	return m.game, true
}

// StopMatch tears the match down; any scheduled card reveal dies with it.
func (that *GamePlay) StopMatch(gameID string) {
	that.mu.Lock()
	m, ok := that.matches[gameID]
	if ok {
		delete(that.matches, gameID)
	}
	that.mu.Unlock()

	if ok {
		m.cancel()
	}
}

func (that *GamePlay) runMatch(ctx context.Context, m *match) {
	log := that.logger.With("gameID", m.game.ID)

	for {
		select {
		case <-ctx.Done():
			return
		case env := <-m.intents:
			that.step(ctx, m, env, log)

			if m.game.IsFinished() {
				log.Info("match finished", "winner", m.game.Winner)
				if err := that.gameRepo.DeleteByID(ctx, m.game.ID); err != nil {
					log.Error("failed to delete finished game", "error", err)
				}
				that.StopMatch(m.game.ID)
				return
			}
		}
	}
}

// step applies exactly one envelope. It runs on the match loop goroutine
// only.
func (that *GamePlay) step(ctx context.Context, m *match, env envelope, log *slog.Logger) {
	var (
		next   *entity.Game
		events []entity.Event
		err    error
	)

	if env.resolveCard {
		next, events, err = that.engine.ResolveCard(m.game)
	} else {
		next, events, err = that.engine.Apply(m.game, env.intent)
	}

	if err != nil {
		if env.reply != nil {
			env.reply <- err
		}
		log.Warn("intent rejected",
			"kind", env.intent.Kind,
			"playerID", env.intent.PlayerID,
			"error", err,
		)
		return
	}

	next.Seq++

	// GameByID readers hold the same mutex
	that.mu.Lock()
	m.game = next
	that.mu.Unlock()

	for _, event := range events {
		log.Info(event.Text)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, next); err != nil {
		log.Error("failed to persist game", "error", err)
	}

	if that.broadcast != nil {
		that.broadcast(next.ID, replica.NewSnapshot(next))
	}

	// the submitter returns only after the new state is out
	if env.reply != nil {
		env.reply <- nil
	}

	if next.PendingCard != nil {
		that.scheduleCardReveal(ctx, m)
	}

	that.driveBot(ctx, next, m)
}

// scheduleCardReveal arms the one-shot reveal timer. It is cancelled only
// by match teardown, never by later intents.
func (that *GamePlay) scheduleCardReveal(ctx context.Context, m *match) {
	timer := time.NewTimer(that.cardDelay)

	go func() {
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		select {
		case m.intents <- envelope{resolveCard: true}:
		case <-ctx.Done():
		}
	}()
}

// driveBot synthesizes the next intent for an automated current player.
// Decisions go through the external provider; everything else is mechanical.
func (that *GamePlay) driveBot(ctx context.Context, game *entity.Game, m *match) {
	if !game.IsOngoing() || game.PendingCard != nil {
		return
	}

	player := game.CurrentPlayer()
	if player == nil || !player.IsBot() {
		return
	}

	var kind string
	switch game.Phase {
	case entity.PhaseRoll:
		kind = monopoly.IntentRoll
	case entity.PhaseEnd:
		kind = monopoly.IntentEndTurn
	case entity.PhaseDecide:
		that.driveBotDecision(ctx, game, player, m)
		return
	default:
		return
	}

	intent := monopoly.Intent{Kind: kind, PlayerID: player.ID}

	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(that.botDelay):
		}

		select {
		case m.intents <- envelope{intent: intent}:
		case <-ctx.Done():
		}
	}()
}

func (that *GamePlay) driveBotDecision(ctx context.Context, game *entity.Game, player *entity.Player, m *match) {
	log := that.logger.With("gameID", game.ID, "playerID", player.ID)

	go func() {
		decision, err := that.decider.Decide(ctx, game, player.ID)
		if err != nil {
			log.Error("decision provider failed, declining", "error", err)
			decision = Decision{Action: DecisionDecline, Rationale: "provider unavailable"}
		}

		log.Info("bot decision", "action", decision.Action, "rationale", decision.Rationale)

		kind := monopoly.IntentDecline
		if decision.Action == DecisionBuy {
			kind = monopoly.IntentBuy
		}

		select {
		case m.intents <- envelope{intent: monopoly.Intent{Kind: kind, PlayerID: player.ID}}:
		case <-ctx.Done():
		}
	}()
}
