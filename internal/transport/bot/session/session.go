package session

import (
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"deal_browser/internal/domain/service/browser"
)

// Session is the browsing state of one chat.
type Session struct {
	Controller *browser.Controller
	Display    *ChatDisplay
}

// Sessions keeps one Session per chat and forgets chats idle for longer than ttl.
type Sessions struct {
	source      browser.DealSource
	messages    browser.Messages
	searchLimit int
	ttl         time.Duration

	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessions(source browser.DealSource, ttl time.Duration) *Sessions {
	return &Sessions{
		source:      source,
		messages:    browser.SpanishMessages,
		searchLimit: browser.DefaultSearchLimit,
		ttl:         ttl,
		cache:       cache.New(ttl, ttl),
	}
}

func (s *Sessions) WithMessages(messages browser.Messages) *Sessions {
	s.messages = messages
	return s
}

func (s *Sessions) WithSearchLimit(limit int) *Sessions {
	s.searchLimit = limit
	return s
}

func (s *Sessions) Messages() browser.Messages {
	return s.messages
}

// Get returns the session of chatID, creating it when there is none. Every
// call restarts the idle timer. created reports a new session.
func (s *Sessions) Get(api Sender, chatID int64) (sess *Session, created bool) {
	key := strconv.FormatInt(chatID, 10)

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Get(key); ok {
		sess = v.(*Session) //nolint:forcetypeassert // only sessions are stored
		s.cache.Set(key, sess, s.ttl)
		return sess, false
	}

	display := NewChatDisplay(api, chatID, s.messages)
	sess = &Session{
		Controller: browser.NewController(s.source, display).
			WithMessages(s.messages).
			WithSearchLimit(s.searchLimit),
		Display: display,
	}
	s.cache.Set(key, sess, s.ttl)

	return sess, true
}

// Lookup returns the session of chatID without creating one. A hit restarts
// the idle timer the same way Get does.
func (s *Sessions) Lookup(chatID int64) (*Session, bool) {
	key := strconv.FormatInt(chatID, 10)

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}

	sess := v.(*Session) //nolint:forcetypeassert // only sessions are stored
	s.cache.Set(key, sess, s.ttl)

	return sess, true
}

func (s *Sessions) Len() int {
	return s.cache.ItemCount()
}
