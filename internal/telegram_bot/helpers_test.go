package telegram_bot

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/avolkov/dau_transfer/config"
	"gitlab.com/avolkov/dau_transfer/internal/transfer"
	"gitlab.com/avolkov/dau_transfer/pkg/types"
)

const (
	testUserID int64 = 1001
	testChatID int64 = 2002
)

// fakeBot records everything the service sends.
type fakeBot struct {
	mu       sync.Mutex
	nextID   int
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	updates  chan tgbotapi.Update
	sendErr  error
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update)}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sendErr != nil {
		return tgbotapi.Message{}, b.sendErr
	}
	b.nextID++
	b.sent = append(b.sent, c)
	return tgbotapi.Message{MessageID: b.nextID, Chat: &tgbotapi.Chat{ID: testChatID}}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {}

func (b *fakeBot) texts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []string
	for _, c := range b.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func (b *fakeBot) lastText() string {
	texts := b.texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

func (b *fakeBot) sentContaining(substr string) bool {
	for _, text := range b.texts() {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) EnsureUser(ctx context.Context, telegramID int64, username string) (int64, bool, error) {
	args := m.Called(ctx, telegramID, username)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockStore) AddTransfer(ctx context.Context, dbUserID int64, tr *types.TransferRecord) error {
	args := m.Called(ctx, dbUserID, tr)
	return args.Error(0)
}

func (m *MockStore) GetLastTransfers(ctx context.Context, dbUserID int64, limit uint64) ([]types.TransferRecord, error) {
	args := m.Called(ctx, dbUserID, limit)
	tr, _ := args.Get(0).([]types.TransferRecord)
	return tr, args.Error(1)
}

type testEnv struct {
	svc   *Service
	bot   *fakeBot
	store *MockStore
}

func newTestEnv() *testEnv {
	cfg := &config.Config{
		OpeningBalanceDAU: decimal.NewFromInt(7),
		Fees:              transfer.DefaultFeeSchedule(),
		ToastTTL:          time.Hour,
		SessionTimeout:    time.Minute,
	}

	bot := newFakeBot()
	st := new(MockStore)
	return &testEnv{
		svc:   newService(bot, "dau_test_bot", st, cfg),
		bot:   bot,
		store: st,
	}
}

func (e *testEnv) do(t *testing.T, u tgbotapi.Update) {
	t.Helper()
	require.NoError(t, e.svc.handleUpdate(context.Background(), u))
}

// enterAmount walks the screen up to the confirmation message.
func (e *testEnv) enterAmount(t *testing.T, send, receive, tier, amount string) {
	t.Helper()
	e.do(t, message(btnSendTokens))
	e.do(t, callback(cbSendCurrency+send))
	e.do(t, callback(cbReceiveCurrency+receive))
	e.do(t, callback(cbFeeTier+tier))
	e.do(t, message(amount))
}

func (e *testEnv) state(t *testing.T) string {
	t.Helper()
	st, ok := e.svc.sessions.getState(testUserID)
	require.True(t, ok)
	return st
}

func message(text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 500,
			From:      &tgbotapi.User{ID: testUserID, UserName: "alice"},
			Chat:      &tgbotapi.Chat{ID: testChatID},
			Text:      text,
		},
	}
}

func command(name string) tgbotapi.Update {
	u := message("/" + name)
	u.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(name) + 1},
	}
	return u
}

func callback(data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			From: &tgbotapi.User{ID: testUserID},
			Message: &tgbotapi.Message{
				MessageID: 1,
				Chat:      &tgbotapi.Chat{ID: testChatID},
			},
			Data: data,
		},
	}
}
