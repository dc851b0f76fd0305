package services

import (
	"errors"
	"sync"
	"time"

	"Mainu/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("menu session not found")
	ErrDishNotFound    = errors.New("dish not found in menu")
)

// MenuSession is one processed menu and the order being built from it.
type MenuSession struct {
	Template       models.MenuTemplate
	RecognizedText string
	Debug          *models.DebugPayload
	Cart           *models.OrderCart
	CreatedAt      time.Time
}

// SessionService keeps menu sessions in memory only; a restart forgets them.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*MenuSession
}

func NewSessionService() *SessionService {
	return &SessionService{sessions: map[uuid.UUID]*MenuSession{}}
}

// Save starts (or restarts) the session for the template with an empty cart.
func (s *SessionService) Save(template models.MenuTemplate, recognizedText string, debug *models.DebugPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[template.ID] = &MenuSession{
		Template:       template,
		RecognizedText: recognizedText,
		Debug:          debug,
		Cart:           models.NewOrderCart(),
		CreatedAt:      time.Now(),
	}
}

// Get returns a copy of the session without its cart; use Cart or UpdateCart for that.
func (s *SessionService) Get(id uuid.UUID) (MenuSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return MenuSession{}, ErrSessionNotFound
	}
	copied := *session
	copied.Cart = nil
	return copied, nil
}

// CartSnapshot is a read-only view of a session cart.
type CartSnapshot struct {
	Lines        []models.CartLine `json:"lines"`
	TotalItems   int               `json:"total_items"`
	SummaryLines []string          `json:"summary_lines"`
}

// UpdateCart runs fn against the session cart under the write lock. dishID may
// be uuid.Nil for operations that do not target a dish.
func (s *SessionService) UpdateCart(id uuid.UUID, dishID uuid.UUID, fn func(cart *models.OrderCart, dish models.MenuDish)) (CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return CartSnapshot{}, ErrSessionNotFound
	}

	var dish models.MenuDish
	if dishID != uuid.Nil {
		found, ok := session.Template.FindDish(dishID)
		if !ok {
			return CartSnapshot{}, ErrDishNotFound
		}
		dish = found
	}

	fn(session.Cart, dish)
	return snapshot(session.Cart), nil
}

func (s *SessionService) Cart(id uuid.UUID) (CartSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return CartSnapshot{}, ErrSessionNotFound
	}
	return snapshot(session.Cart), nil
}

func (s *SessionService) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func snapshot(cart *models.OrderCart) CartSnapshot {
	return CartSnapshot{
		Lines:        cart.Lines(),
		TotalItems:   cart.TotalItems(),
		SummaryLines: cart.SummaryLines(),
	}
}
