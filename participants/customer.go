package participants

import (
	"fmt"
	"log/slog"

	"support-chat/domain"
	"support-chat/errors"
	"support-chat/repositories"
	"support-chat/services"
)

// Customer holds a copy of the customer taken at construction time.
type Customer struct {
	customer domain.Customer
	service  services.IChatService
}

func NewCustomer(customerID int, repository repositories.IRepository, service services.IChatService, log *slog.Logger) (Customer, error) {
	customer, ok := repository.GetCustomer(customerID)
	if !ok {
		log.Error("Unable to build customer", "customer_id", customerID, "error", errors.ErrCustomerNotFound)
		return Customer{}, fmt.Errorf("%w: %d", errors.ErrCustomerNotFound, customerID)
	}
	return Customer{customer: customer, service: service}, nil
}

func (c Customer) ID() int       { return c.customer.ID }
func (c Customer) Name() string  { return c.customer.Name }
func (c Customer) Email() string { return c.customer.Email }

func (c Customer) SendMessage(sessionID domain.SessionID, content string) error {
	return c.service.SendMessage(domain.SendMessageCommand{
		SessionID:  sessionID,
		SenderID:   domain.NumericSender(c.customer.ID),
		SenderType: domain.CustomerParticipant,
		Content:    content,
	})
}

func (c Customer) InitiateSession(topic string, pipeline []domain.MessageProcessor) (domain.SessionID, error) {
	return c.service.InitiateSession(c.customer.ID, topic, pipeline)
}
