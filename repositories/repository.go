//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks
package repositories

import (
	"cmp"
	"slices"
	"sync"

	"support-chat/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IRepository interface {
	AddCustomer(customer domain.Customer)
	GetCustomer(id int) (domain.Customer, bool)
	ListCustomers() []domain.Customer
	AddAgent(agent domain.Agent)
	GetAgent(id int) (domain.Agent, bool)
	ListAgents() []domain.Agent
	AddSession(session domain.ChatSession)
	GetSession(id domain.SessionID) (domain.ChatSession, bool)
	UpdateSession(id domain.SessionID, update func(session *domain.ChatSession)) bool
	ListSessions() []domain.ChatSession
	AddMessage(message domain.Message)
	GetMessage(id uuid.UUID) (domain.Message, bool)
	MessagesBySession(id domain.SessionID) []domain.Message
	AddTicket(ticket domain.SupportTicket)
	GetTicket(id domain.TicketID) (domain.SupportTicket, bool)
	UpdateTicket(id domain.TicketID, update func(ticket *domain.SupportTicket)) bool
}

// storedMessage remembers insertion order to break timestamp ties.
type storedMessage struct {
	message domain.Message
	seq     uint64
}

// Repository keeps every entity in process memory.
// A single mutex serializes all accesses, whatever the collection.
// Nothing is evicted and nothing survives the process.
type Repository struct {
	mu        sync.Mutex
	customers map[int]domain.Customer
	agents    map[int]domain.Agent
	sessions  map[domain.SessionID]domain.ChatSession
	messages  map[uuid.UUID]storedMessage
	tickets   map[domain.TicketID]domain.SupportTicket
	seq       uint64
}

func NewRepository() *Repository {
	return &Repository{
		customers: make(map[int]domain.Customer),
		agents:    make(map[int]domain.Agent),
		sessions:  make(map[domain.SessionID]domain.ChatSession),
		messages:  make(map[uuid.UUID]storedMessage),
		tickets:   make(map[domain.TicketID]domain.SupportTicket),
	}
}

// AddCustomer inserts or overwrites the customer under its own id.
func (r *Repository) AddCustomer(customer domain.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = customer
}

func (r *Repository) GetCustomer(id int) (domain.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[id]
	return customer, ok
}

func (r *Repository) ListCustomers() []domain.Customer {
	r.mu.Lock()
	customers := lo.Values(r.customers)
	r.mu.Unlock()

	slices.SortFunc(customers, func(a, b domain.Customer) int { return cmp.Compare(a.ID, b.ID) })
	return customers
}

func (r *Repository) AddAgent(agent domain.Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[agent.ID] = agent
}

func (r *Repository) GetAgent(id int) (domain.Agent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agent, ok := r.agents[id]
	return agent, ok
}

func (r *Repository) ListAgents() []domain.Agent {
	r.mu.Lock()
	agents := lo.Values(r.agents)
	r.mu.Unlock()

	slices.SortFunc(agents, func(a, b domain.Agent) int { return cmp.Compare(a.ID, b.ID) })
	return agents
}

func (r *Repository) AddSession(session domain.ChatSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
}

func (r *Repository) GetSession(id domain.SessionID) (domain.ChatSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	return session, ok
}

// UpdateSession applies update to the stored session while holding the lock.
// It reports false, without calling update, when the session is unknown.
func (r *Repository) UpdateSession(id domain.SessionID, update func(session *domain.ChatSession)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return false
	}
	update(&session)
	r.sessions[id] = session
	return true
}

// ListSessions returns sessions from the oldest to the newest.
func (r *Repository) ListSessions() []domain.ChatSession {
	r.mu.Lock()
	sessions := lo.Values(r.sessions)
	r.mu.Unlock()

	slices.SortStableFunc(sessions, func(a, b domain.ChatSession) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return sessions
}

func (r *Repository) AddMessage(message domain.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.messages[message.ID] = storedMessage{message: message, seq: r.seq}
}

func (r *Repository) GetMessage(id uuid.UUID) (domain.Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.messages[id]
	return stored.message, ok
}

// MessagesBySession returns the messages of a session ordered by timestamp,
// insertion order deciding between equal timestamps.
func (r *Repository) MessagesBySession(id domain.SessionID) []domain.Message {
	r.mu.Lock()
	stored := lo.Filter(lo.Values(r.messages), func(m storedMessage, _ int) bool {
		return m.message.SessionID == id
	})
	r.mu.Unlock()

	slices.SortFunc(stored, func(a, b storedMessage) int {
		if c := a.message.CreatedAt.Compare(b.message.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return lo.Map(stored, func(m storedMessage, _ int) domain.Message { return m.message })
}

func (r *Repository) AddTicket(ticket domain.SupportTicket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[ticket.ID] = ticket
}

func (r *Repository) GetTicket(id domain.TicketID) (domain.SupportTicket, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	return ticket, ok
}

func (r *Repository) UpdateTicket(id domain.TicketID, update func(ticket *domain.SupportTicket)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return false
	}
	update(&ticket)
	r.tickets[id] = ticket
	return true
}
