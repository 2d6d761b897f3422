package participants

import (
	"fmt"
	"log/slog"

	"support-chat/domain"
	"support-chat/errors"
	"support-chat/repositories"
	"support-chat/services"
)

// Args gathers the constructor arguments of every participant kind.
// Only the fields of the requested kind are read.
type Args struct {
	CustomerID int
	AgentID    int
	BotID      string
	BotName    string
}

type Factory struct {
	repository repositories.IRepository
	service    services.IChatService
	log        *slog.Logger
}

func NewFactory(repository repositories.IRepository, service services.IChatService, log *slog.Logger) Factory {
	return Factory{repository: repository, service: service, log: log}
}

func (f Factory) Create(kind domain.ParticipantType, args Args) (Participant, error) {
	switch kind {
	case domain.CustomerParticipant:
		customer, err := f.Customer(args.CustomerID)
		if err != nil {
			return nil, err
		}
		return customer, nil
	case domain.AgentParticipant:
		agent, err := f.Agent(args.AgentID)
		if err != nil {
			return nil, err
		}
		return agent, nil
	case domain.BotParticipant:
		return NewBot(args.BotID, args.BotName, f.service), nil
	default:
		f.log.Error("Unable to create participant", "kind", kind, "error", errors.ErrUnknownParticipantType)
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownParticipantType, kind)
	}
}

// Customer and Agent narrow Create to the concrete variant.
func (f Factory) Customer(customerID int) (Customer, error) {
	return NewCustomer(customerID, f.repository, f.service, f.log)
}

func (f Factory) Agent(agentID int) (Agent, error) {
	return NewAgent(agentID, f.repository, f.service, f.log)
}

func (f Factory) Bot(id, name string) Bot {
	return NewBot(id, name, f.service)
}
