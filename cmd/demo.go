package main

import (
	"fmt"
	"os"
	"path/filepath"

	"support-chat/domain"
	"support-chat/moderation"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	demoAttachment string
	demoTranslate  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play a scripted support conversation and print its history",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoAttachment, "attachment", "/path/to/payment_error.png", "File attached by the customer")
	demoCmd.Flags().BoolVar(&demoTranslate, "translate", false, "Add a translation step to the main session")
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()
	f := a.facade
	log := a.log

	f.CreateCustomer(1, "John Doe", "john.doe@example.com")
	f.CreateAgent(101, "Jane Smith", "jane.smith@support.com")

	names := []string{moderation.SpamStep, moderation.ProfanityStep}
	if demoTranslate {
		names = append(names, moderation.TranslationStep)
	}
	pipeline, err := moderation.ParseSteps(names, a.stepOptions, log)
	if err != nil {
		return err
	}

	// Without a session there is nothing left to play
	sessionID, err := f.InitiateChat(1, "Payment Issue", pipeline)
	if err != nil {
		return err
	}

	if err = f.CustomerSendMessage(sessionID, 1, "I am unable to process my payment."); err != nil {
		log.Error("Error sending message", "error", err)
	}
	if err = f.AgentHandleSession(sessionID, 101); err != nil {
		log.Error("Error assigning agent", "error", err)
	}
	if err = f.AgentSendMessage(sessionID, 101, "I'm sorry to hear that. Could you provide more details?"); err != nil {
		log.Error("Error sending message", "error", err)
	}
	attach(a, sessionID, demoAttachment)
	if err = f.ChatbotSendMessage(sessionID, "Bot-501", "HelpBot", "Have you tried clearing your browser cache?"); err != nil {
		log.Error("Error sending chatbot message", "error", err)
	}
	if err = f.CustomerSendMessage(sessionID, 1, "Yes, I tried that but it didn't help."); err != nil {
		log.Error("Error sending message", "error", err)
	}

	ticketID, err := f.CreateSupportTicket(101, sessionID, "Customer unable to process payment")
	if err != nil {
		log.Error("Error creating support ticket", "error", err)
	} else if err = f.ResolveSupportTicket(101, ticketID); err != nil {
		log.Error("Error resolving ticket", "error", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, header("Simulate concurrent sessions"))
	if err = simulateConcurrentSessions(a); err != nil {
		log.Error("Error in customer interaction", "error", err)
	}

	fmt.Fprintln(out, header("Chat Session Messages"))
	renderHistory(out, f.GetChatHistory(sessionID))

	fmt.Fprintln(out, header("Transcript keys"))
	return renderTranscriptKeys(out, a.db)
}

// attach sniffs the file type when the file is reachable, the attachment is recorded either way.
func attach(a *app, sessionID domain.SessionID, path string) {
	if _, err := os.Stat(path); err == nil {
		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			a.log.Warn("Unable to detect attachment type", "path", path, "error", err)
		} else {
			a.log.Info("Attachment detected", "path", path, "mime_type", mtype.String())
		}
	}
	if err := a.facade.AttachFile(sessionID, filepath.Base(path)); err != nil {
		a.log.Error("Error attaching file", "error", err)
	}
}

func simulateConcurrentSessions(a *app) error {
	f := a.facade
	f.CreateCustomer(2, "Alice", "alice@example.com")
	f.CreateCustomer(3, "Bob", "bob@example.com")

	interaction := func(customerID int, topic string) error {
		pipeline, err := moderation.ParseSteps([]string{"spam", "profanity", "translate:French"}, a.stepOptions, a.log)
		if err != nil {
			return err
		}
		sessionID, err := f.InitiateChat(customerID, topic, pipeline)
		if err != nil {
			return err
		}
		customer, _ := f.GetCustomer(customerID)
		a.log.Info(fmt.Sprintf("[%s] initiated chat session %s on topic '%s'", customer.Name, sessionID, topic))

		if err = f.CustomerSendMessage(sessionID, customerID, "I have a question regarding my account."); err != nil {
			return err
		}

		// First available agent
		agents := f.ListAgents()
		if len(agents) == 0 {
			return fmt.Errorf("no agents available")
		}
		agent := agents[0]
		if err = f.AgentHandleSession(sessionID, agent.ID); err != nil {
			return err
		}
		return f.AgentSendMessage(sessionID, agent.ID, "How can I assist you with your account?")
	}

	var g errgroup.Group
	g.Go(func() error { return interaction(2, "Account Inquiry") })
	g.Go(func() error { return interaction(3, "Technical Support") })
	return g.Wait()
}

func header(title string) string {
	return color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf("  ====== %s ======", title))
}
