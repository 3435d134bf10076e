package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/greed/internal/common/clock"
	"github.com/KirkDiggler/greed/internal/common/uuid"
	diceMocks "github.com/KirkDiggler/greed/internal/dice/mocks"
	gameRepo "github.com/KirkDiggler/greed/internal/repositories/game"
	"github.com/KirkDiggler/greed/internal/services/game"
	"github.com/KirkDiggler/greed/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/greed/internal/services/messaging/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TableTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	repo           gameRepo.Repository
	gameService    game.Service
	out            *bytes.Buffer
	ctx            context.Context
}

func (s *TableTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)

	repo, err := gameRepo.NewMemory(&gameRepo.Config{})
	s.Require().NoError(err)
	s.repo = repo

	svc, err := game.New(&game.Config{
		GameRepo:      repo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	s.gameService = svc

	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *TableTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTableTestSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}

func (s *TableTestSuite) newTable(input string, names []string, autoRoll bool) *Table {
	table, err := New(&Config{
		GameService: s.gameService,
		In:          strings.NewReader(input),
		Out:         s.out,
		PlayerNames: names,
		AutoRoll:    autoRoll,
	})
	s.Require().NoError(err)
	return table
}

func (s *TableTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Out: s.out})
	s.Error(err)

	_, err = New(&Config{GameService: s.gameService})
	s.Error(err)
}

func (s *TableTestSuite) TestPromptedGame() {
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(6).Return(2),
		s.mockDiceRoller.EXPECT().Roll(6).Return(3),
		s.mockDiceRoller.EXPECT().Roll(6).Return(4),
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
		s.mockDiceRoller.EXPECT().Roll(6).Return(2),
	)

	input := strings.Join([]string{
		"1", "x", "2", // player count
		"alice", "alice", "", "bob", // names
		"3", "1", // alice chooses manual entry
		"7", "1", "1", "1", "1", "1", // alice's dice
		"2", // bob rolls at random
		"q",
	}, "\n") + "\n"

	table := s.newTable(input, nil, false)
	s.Require().NoError(table.Run(s.ctx))

	out := s.out.String()
	s.Contains(out, "Please answer with 2 or more players.")
	s.Contains(out, `"x" is not a number.`)
	s.Contains(out, "Please answer with a name that doesn't already exist.")
	s.Contains(out, "Please answer with a (1) or (2)")
	s.Contains(out, "A roll of 7 is not possible!")
	s.Contains(out, "alice has rolled the following dice values: [1, 1, 1, 1, 1] for 1200 points (total 1200)")
	s.Contains(out, "bob has rolled the following dice values: [2, 3, 4, 6, 2] for 0 points (total 0)")
	s.Contains(out, "Round 1 has finished!")
	s.Contains(out, "1. alice (1200)\n2. bob (0)\n")
	s.Contains(out, "THE WINNERS OF THIS GAME OF GREED ARE")

	winners := out[strings.LastIndex(out, rule):]
	s.Contains(winners, "alice")
	s.NotContains(winners, "bob")

	games, err := s.repo.GetActiveGames(s.ctx, &gameRepo.GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Empty(games.Games)
}

func (s *TableTestSuite) TestAutoRollUntilInputRunsOut() {
	s.mockDiceRoller.EXPECT().Roll(6).Return(1).Times(20)

	// One blank line continues to round two, then the input runs out
	table := s.newTable("\n", []string{"bob", "alice"}, true)
	s.Require().NoError(table.Run(s.ctx))

	out := s.out.String()
	s.Less(strings.Index(out, "It is bob's turn!"), strings.Index(out, "It is alice's turn!"))
	s.Contains(out, "Round 1 has finished!")
	s.Contains(out, "1. alice (1200)\n2. bob (1200)\n")
	s.Contains(out, "Round 2 has finished!")
	s.Contains(out, "1. alice (2400)\n2. bob (2400)\n")
	s.Contains(out[strings.LastIndex(out, rule):], "alice, bob")
}

func (s *TableTestSuite) TestInputEndsMidRound() {
	// alice enters two dice and then the input runs out
	table := s.newTable("1\n5\n5\n", []string{"alice", "bob"}, false)
	s.Require().NoError(table.Run(s.ctx))

	out := s.out.String()
	s.NotContains(out, "Round 1 has finished!")
	s.Contains(out[strings.LastIndex(out, rule):], "alice, bob")
}

func (s *TableTestSuite) TestNoPlayersBeforeInputEnds() {
	table := s.newTable("", nil, false)
	s.Require().NoError(table.Run(s.ctx))

	games, err := s.repo.GetActiveGames(s.ctx, &gameRepo.GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Empty(games.Games)
}

func (s *TableTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	table := s.newTable("", []string{"alice", "bob"}, true)
	s.ErrorIs(table.Run(ctx), context.Canceled)
}

// promptWatcher records output and closes seen once want has been written
type promptWatcher struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	want string
	seen chan struct{}
	once sync.Once
}

func (w *promptWatcher) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n, err := w.buf.Write(p)
	if strings.Contains(w.buf.String(), w.want) {
		w.once.Do(func() { close(w.seen) })
	}
	return n, err
}

func (s *TableTestSuite) TestCancelWhileWaitingForInput() {
	in, writer := io.Pipe()
	defer writer.Close()

	out := &promptWatcher{want: "Press (1)", seen: make(chan struct{})}
	table, err := New(&Config{
		GameService: s.gameService,
		In:          in,
		Out:         out,
		PlayerNames: []string{"alice", "bob"},
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		result <- table.Run(ctx)
	}()

	select {
	case <-out.seen:
	case <-time.After(5 * time.Second):
		s.FailNow("table never asked for a choice")
	}
	cancel()

	select {
	case err := <-result:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		s.FailNow("Run kept waiting for input after cancel")
	}
}

func (s *TableTestSuite) TestFormatDice() {
	s.Equal("[1, 2, 3, 4, 5]", formatDice([]int{1, 2, 3, 4, 5}))
	s.Equal("[]", formatDice(nil))
}

func (s *TableTestSuite) TestCommentary() {
	mockMessaging := messagingMocks.NewMockService(s.mockCtrl)

	table, err := New(&Config{
		GameService: s.gameService,
		In:          strings.NewReader("1\n1\n1\n1\n1\n1\n1\n2\n2\n2\n3\n4\nq\n"),
		Out:         s.out,
		PlayerNames: []string{"alice", "bob"},
		Messaging:   mockMessaging,
	})
	s.Require().NoError(err)

	mockMessaging.EXPECT().
		GetRollResultMessage(gomock.Any(), &messaging.GetRollResultMessageInput{PlayerName: "alice", Points: 1200, Total: 1200}).
		Return(&messaging.GetRollResultMessageOutput{Message: "Big roll."}, nil)
	mockMessaging.EXPECT().
		GetRollResultMessage(gomock.Any(), &messaging.GetRollResultMessageInput{PlayerName: "bob", Points: 200, Total: 200}).
		Return(nil, errors.New("no words"))
	mockMessaging.EXPECT().
		GetRoundMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.GetRoundMessageInput) (*messaging.GetRoundMessageOutput, error) {
			s.Equal(1, input.Round)
			s.Equal("alice", input.Leaderboard[0].Name)
			return &messaging.GetRoundMessageOutput{Message: "alice pulls ahead."}, nil
		})
	mockMessaging.EXPECT().
		GetGameOverMessage(gomock.Any(), &messaging.GetGameOverMessageInput{Winners: []string{"alice"}, Score: 1200}).
		Return(&messaging.GetGameOverMessageOutput{Message: "Greed is good."}, nil)

	s.Require().NoError(table.Run(s.ctx))

	out := s.out.String()
	s.Contains(out, "  Big roll.\n")
	s.Contains(out, "bob has rolled the following dice values: [2, 2, 2, 3, 4] for 200 points (total 200)\n")
	s.Contains(out, "  alice pulls ahead.\n")
	s.Contains(out, "  Greed is good.\n")
}
