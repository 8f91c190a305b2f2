package e2e

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"draw-lab/domain/event"
	"draw-lab/observability"
	"draw-lab/repositories"
	"draw-lab/runtime"
	"draw-lab/runtime/workers"
	"draw-lab/services"
)

// BaseSuite boots the complete pipeline in-process: in-memory BadgerDB,
// supervised workers and the controller, exactly as the binary wires
// them, minus the terminal surfaces.
type BaseSuite struct {
	suite.Suite
	Config     Config
	Controller *runtime.Controller
	Stats      *observability.DrawStats

	db     *badger.DB
	repo   *repositories.ParticipantRepository
	cancel context.CancelFunc
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest rebuilds the whole stack so scenarios never share state.
func (s *BaseSuite) SetupTest() {
	logger := logs.GetLoggerFromString(s.Config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	s.Require().NoError(err)
	s.db = db

	repo, err := repositories.NewParticipantRepository(db, logger)
	s.Require().NoError(err)
	s.repo = repo

	events := make(chan event.Event, s.Config.BufferSize)
	telemetry := make(chan event.Event, s.Config.BufferSize)
	sup := workers.NewSupervisor(logger, telemetry, s.Config.RestartInterval)

	seed := uint64(time.Now().UnixNano())
	roster := services.NewRosterService(logger, repo)
	draw := services.NewDrawService(logger, repo, sup, events,
		rand.New(rand.NewPCG(seed, seed<<17|1)),
		s.Config.RevealDuration, s.Config.RevealTickInterval)
	grouping := services.NewGroupingService(logger, repo, events,
		rand.New(rand.NewPCG(seed^0x9E3779B97F4A7C15, seed|1)))

	s.Controller = runtime.NewController(logger, sup, roster, draw, grouping,
		events, telemetry, s.Config.SinkTimeout)
	s.Stats = observability.NewDrawStats(logger)
	s.Controller.AddHandlers(s.Stats)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go func() { _ = s.Controller.Start(ctx) }()
}

func (s *BaseSuite) TearDownTest() {
	s.Controller.Stop()
	s.cancel()
	s.Require().NoError(s.repo.Close())
	s.Require().NoError(s.db.Close())
}

// Step prints a colorized header so scenario logs read as a script.
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Draw runs a full reveal and blocks until the winner is committed.
func (s *BaseSuite) Draw() {
	done, started := s.Controller.StartDraw(context.Background())
	s.Require().True(started, "Draw refused to start")
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		s.FailNow("Draw did not commit a winner within timeout")
	}
}
