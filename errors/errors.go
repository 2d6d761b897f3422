package errors

import "fmt"

var (
	ErrInvalidSession         = fmt.Errorf("invalid chat session ID")
	ErrInvalidAgent           = fmt.Errorf("invalid agent ID")
	ErrInvalidCustomer        = fmt.Errorf("invalid customer ID")
	ErrInvalidTicket          = fmt.Errorf("invalid ticket ID")
	ErrCustomerNotFound       = fmt.Errorf("customer does not exist")
	ErrAgentNotFound          = fmt.Errorf("agent does not exist")
	ErrUnknownParticipantType = fmt.Errorf("unknown participant type")
	ErrUnknownStep            = fmt.Errorf("unknown pipeline step")
	ErrEmptyWords             = fmt.Errorf("no words have been found")
)
