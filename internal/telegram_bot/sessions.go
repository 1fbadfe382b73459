package telegram_bot

import (
	"sync"
	"time"

	"gitlab.com/avolkov/dau_transfer/internal/transfer"
)

const (
	stateMainMenu                = "main_menu"
	stateChoosingSendCurrency    = "choosing_send_currency"
	stateChoosingReceiveCurrency = "choosing_receive_currency"
	stateChoosingFeeTier         = "choosing_fee_tier"
	stateWaitingTransferAmount   = "waiting_transfer_amount"
)

// save user's state
type UserSession struct {
	State        string
	Transfer     transfer.State
	BotMessageID int
	DBUserID     int64 // 0 until the store has been asked
	UpdatedAt    time.Time
}

// manage all user's sessions
type SessionManager struct {
	sessions    map[int64]*UserSession
	mu          sync.RWMutex
	newTransfer func() transfer.State
}

// newTransfer builds the screen a new session starts with.
func NewSessionManager(newTransfer func() transfer.State) *SessionManager {
	return &SessionManager{
		sessions:    make(map[int64]*UserSession),
		newTransfer: newTransfer,
	}
}

// caller must hold sm.mu
func (sm *SessionManager) session(tgUserID int64) (*UserSession, bool) {
	session, exists := sm.sessions[tgUserID]
	if !exists {
		session = &UserSession{Transfer: sm.newTransfer()}
		sm.sessions[tgUserID] = session
	}
	session.UpdatedAt = time.Now()
	return session, exists
}

// return existing session or creates new
func (sm *SessionManager) getOrCreateSession(tgUserID int64) (UserSession, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.session(tgUserID)
	return *session, exists
}

// update user state
func (sm *SessionManager) setState(tgUserID int64, state string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, _ := sm.session(tgUserID)
	session.State = state
}

// return user state
func (sm *SessionManager) getState(tgUserID int64) (string, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[tgUserID]
	if !exists {
		return "", false
	}
	return session.State, true
}

func (sm *SessionManager) setBotMessageID(tgUserID int64, messageID int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, _ := sm.session(tgUserID)
	session.BotMessageID = messageID
}

func (sm *SessionManager) setDBUserID(tgUserID, dbUserID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, _ := sm.session(tgUserID)
	session.DBUserID = dbUserID
}

func (sm *SessionManager) getSessionVars(tgUserID int64) (UserSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[tgUserID]
	if !exists {
		return UserSession{}, false
	}
	return *session, true
}

func (sm *SessionManager) getTransfer(tgUserID int64) transfer.State {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, _ := sm.session(tgUserID)
	return session.Transfer
}

func (sm *SessionManager) setTransfer(tgUserID int64, st transfer.State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, _ := sm.session(tgUserID)
	session.Transfer = st
}

// drop the pending transfer, balances stay
func (sm *SessionManager) resetPending(tgUserID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, _ := sm.session(tgUserID)
	session.Transfer = session.Transfer.Reset()
}

// delete user session
func (sm *SessionManager) clearSession(tgUserID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, tgUserID)
}

// delete sessions, that were not updated more then defined period
func (sm *SessionManager) cleanOldSessions(timeout time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	for tgUserID, session := range sm.sessions {
		if now.Sub(session.UpdatedAt) > timeout {
			delete(sm.sessions, tgUserID)
		}
	}
}
