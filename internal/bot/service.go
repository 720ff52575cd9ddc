// Package bot turns inbound pt-BR chat messages into storage operations and
// canned replies. All natural-language heavy lifting is delegated to nlp;
// this package owns routing, handlers and reply rendering.
package bot

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"finbot/internal/core"
	"finbot/internal/log"
	"finbot/internal/messaging"
	"finbot/internal/nlp"
	"finbot/internal/storage"
)

// SyncPublisher enqueues expense export requests. Nil disables the export
// pipeline; the worker's startup sweep still picks expenses up later.
type SyncPublisher interface {
	PublishExpenseSync(ctx context.Context, msg *messaging.ExpenseSyncMessage) error
}

type Service struct {
	store  storage.Store
	clock  core.Clock
	syncer SyncPublisher
	logger *log.Logger
}

func New(store storage.Store, clock core.Clock, syncer SyncPublisher, logger *log.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clock,
		syncer: syncer,
		logger: logger.WithComponent(log.ComponentBot),
	}
}

var (
	reminderTriggerRe = regexp.MustCompile(`(?i)(?:/lembrete|adicionar?\s+lembrete|cadastrar?\s+lembrete|criar(?:\s+um)?\s+lembrete)(.*)`)
	deleteExpenseRe   = regexp.MustCompile(`(?i)(?:apaga|remove|exclui)[\s\w]*gasto(?:\s+do)?\s+(.+)`)
	deleteReminderRe  = regexp.MustCompile(`(?i)(?:cancela|remove|exclui)[\s\w]*lembrete(?:\s+de)?\s+(.+)`)
	budgetValueRe     = regexp.MustCompile(`(?:orcamento|budget).*?(\d+[.,]?\d*)`)
)

// HandleMessage resolves one inbound message to its reply. Messages from
// unknown phones yield an empty reply and no error; the gateway drops those
// silently. Users with an unfinished payment get a fixed refusal for every
// message.
func (s *Service) HandleMessage(ctx context.Context, phone, text string) (string, error) {
	// Gateways suffix phones with a transport domain ("5511...@c.us")
	phone, _, _ = strings.Cut(phone, "@")

	user, err := s.store.FindUserByPhone(ctx, phone)
	if errors.Is(err, core.ErrNotFound) {
		s.logger.InfoContext(ctx, "Message from unknown phone ignored", log.FieldPhone, phone)
		return "", nil
	}
	if err != nil {
		return "", err
	}

	status, err := s.store.GetPaymentStatus(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if !status.Completed() {
		return paymentRequiredReply, nil
	}

	normalized := nlp.Normalize(text)
	intent := Route(normalized)
	s.logger.InfoContext(ctx, "Dispatching message",
		log.FieldUserID, user.ID,
		log.FieldIntent, intent.String())

	switch intent {
	case IntentGreeting:
		return greetingReply, nil
	case IntentRegisterExpense:
		return s.registerExpense(ctx, user, text)
	case IntentListExpenses:
		return s.listExpenses(ctx, user, normalized)
	case IntentReport:
		return s.generateReport(ctx, user, normalized)
	case IntentAddReminder:
		return s.addReminder(ctx, user, text)
	case IntentListReminders:
		return s.listReminders(ctx, user)
	case IntentDeleteLastExpense:
		return s.deleteLastExpense(ctx, user)
	case IntentDeleteExpense:
		return s.deleteExpense(ctx, user, text)
	case IntentDeleteReminder:
		return s.deleteReminder(ctx, user, text)
	case IntentBalance:
		return s.availableBalance(ctx, user)
	case IntentSetBudget:
		return s.setMonthlyBudget(ctx, user, normalized)
	case IntentPaymentAck:
		return paymentAckReply, nil
	case IntentHelp:
		return helpReply, nil
	default:
		return fallbackReply, nil
	}
}

func (s *Service) registerExpense(ctx context.Context, user core.User, text string) (string, error) {
	value, description, err := nlp.ExtractAmount(text)
	if errors.Is(err, core.ErrExtraction) {
		return amountNotFoundReply, nil
	}
	if err != nil {
		return "", err
	}

	category := nlp.Categorize(description)
	now := s.clock.Now()
	expense := core.Expense{
		UserID:      user.ID,
		Description: description,
		Value:       value,
		Category:    category,
		CreatedAt:   now,
	}

	id, err := s.store.CreateExpense(ctx, expense)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "Expense registered",
		log.FieldUserID, user.ID,
		log.FieldExpenseID, id,
		log.FieldAmountCents, value.Cents,
		log.FieldCategory, category)

	if s.syncer != nil {
		// Best effort: the worker sweeps unsynced rows on startup anyway
		if err := s.syncer.PublishExpenseSync(ctx, messaging.NewExpenseSyncMessage(id)); err != nil {
			s.logger.WarnContext(ctx, "Failed to enqueue expense sync",
				log.FieldExpenseID, id, log.FieldError, err)
		}
	}

	warning, err := s.budgetWarning(ctx, user, now)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Gasto de R$ %.2f (%s) registrado com sucesso! Categoria: %s.%s",
		value.Reais(), description, category, warning), nil
}

func (s *Service) listExpenses(ctx context.Context, user core.User, normalized string) (string, error) {
	window := resolveWindow(normalized, s.clock.Now(), "Listagem")
	expenses, err := s.store.FindExpensesInRange(ctx, user.ID, window.From, window.To)
	if err != nil {
		return "", err
	}
	if len(expenses) == 0 {
		return noExpensesInPeriodReply, nil
	}
	return renderListing(window.Header, expenses), nil
}

func (s *Service) generateReport(ctx context.Context, user core.User, normalized string) (string, error) {
	window := resolveWindow(normalized, s.clock.Now(), "Relatório")
	expenses, err := s.store.FindExpensesInRange(ctx, user.ID, window.From, window.To)
	if err != nil {
		return "", err
	}
	if len(expenses) == 0 {
		return noExpensesInPeriodReply, nil
	}
	return renderReport(window.Header, expenses), nil
}

func (s *Service) addReminder(ctx context.Context, user core.User, text string) (string, error) {
	m := reminderTriggerRe.FindStringSubmatch(text)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return reminderScheduleMissingReply, nil
	}

	sched, err := nlp.ParseSchedule(strings.TrimSpace(m[1]), s.clock.Now())
	if errors.Is(err, core.ErrExtraction) {
		return reminderScheduleMissingReply, nil
	}
	if err != nil {
		return "", err
	}

	reminder := core.Reminder{
		UserID:      user.ID,
		Description: sched.Description,
		ScheduledAt: sched.At,
		Recurrence:  sched.Recurrence,
		Active:      true,
	}
	id, err := s.store.CreateReminder(ctx, reminder)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "Reminder created",
		log.FieldUserID, user.ID,
		log.FieldReminderID, id,
		log.FieldRecurrence, string(sched.Recurrence))

	reply := fmt.Sprintf("Lembrete %q cadastrado com sucesso!", sched.Description)
	if sched.At != nil {
		reply += fmt.Sprintf("\nSerá lembrado em %s.", sched.At.Format("02/01/2006 15:04"))
	}
	if sched.Recurrence != "" {
		reply += fmt.Sprintf("\nEsse lembrete é recorrente (%s).", sched.Recurrence)
	}
	return reply, nil
}

func (s *Service) listReminders(ctx context.Context, user core.User) (string, error) {
	reminders, err := s.store.FindActiveReminders(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if len(reminders) == 0 {
		return noRemindersReply, nil
	}

	var b strings.Builder
	b.WriteString("Seus lembretes ativos:\n")
	for _, r := range reminders {
		extra := ""
		if r.ScheduledAt != nil {
			extra += fmt.Sprintf(" - Agendado para %s", r.ScheduledAt.Format("02/01/2006 15:04"))
		}
		if r.Recurrence != "" {
			extra += fmt.Sprintf(" (Recorrente: %s)", r.Recurrence)
		}
		fmt.Fprintf(&b, "• %s%s\n", r.Description, extra)
	}
	return b.String(), nil
}

func (s *Service) deleteLastExpense(ctx context.Context, user core.User) (string, error) {
	last, err := s.store.FindLastExpense(ctx, user.ID)
	if errors.Is(err, core.ErrNotFound) {
		return noExpenseToDeleteReply, nil
	}
	if err != nil {
		return "", err
	}
	if err := s.store.DeleteExpense(ctx, last.ID); err != nil {
		return "", err
	}
	return lastExpenseDeletedReply, nil
}

func (s *Service) deleteExpense(ctx context.Context, user core.User, text string) (string, error) {
	m := deleteExpenseRe.FindStringSubmatch(text)
	if m == nil {
		return expenseTargetMissingReply, nil
	}
	description := strings.TrimSpace(m[1])

	expense, err := s.store.FindExpenseByDescription(ctx, user.ID, description)
	if errors.Is(err, core.ErrNotFound) {
		return expenseNotFoundReply, nil
	}
	if err != nil {
		return "", err
	}
	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		return "", err
	}
	return expenseDeletedReply, nil
}

func (s *Service) deleteReminder(ctx context.Context, user core.User, text string) (string, error) {
	m := deleteReminderRe.FindStringSubmatch(text)
	if m == nil {
		return reminderTargetMissingReply, nil
	}
	description := strings.TrimSpace(m[1])

	reminder, err := s.store.FindReminderByDescription(ctx, user.ID, description)
	if errors.Is(err, core.ErrNotFound) {
		return reminderNotFoundReply, nil
	}
	if err != nil {
		return "", err
	}
	if err := s.store.DeactivateReminder(ctx, reminder.ID); err != nil {
		return "", err
	}
	return reminderDeletedReply, nil
}

func (s *Service) availableBalance(ctx context.Context, user core.User) (string, error) {
	if !user.HasBudget() {
		return budgetUnsetReply, nil
	}

	from, to := monthRange(s.clock.Now())
	total, err := s.store.SumExpensesInRange(ctx, user.ID, from, to)
	if err != nil {
		return "", err
	}

	available := user.MonthlyBudget.Sub(total)
	if available.Cents >= 0 {
		return fmt.Sprintf("Seu orçamento mensal é R$ %.2f e você tem R$ %.2f restantes para gastar.",
			user.MonthlyBudget.Reais(), available.Reais()), nil
	}
	overrun := core.Money{Cents: -available.Cents}
	return fmt.Sprintf("Seu orçamento mensal é R$ %.2f e você ultrapassou em R$ %.2f.",
		user.MonthlyBudget.Reais(), overrun.Reais()), nil
}

func (s *Service) setMonthlyBudget(ctx context.Context, user core.User, normalized string) (string, error) {
	m := budgetValueRe.FindStringSubmatch(normalized)
	if m == nil {
		return budgetValueMissingReply, nil
	}
	budget, err := core.ParseAmount(m[1])
	if err != nil {
		return budgetValueMissingReply, nil
	}

	if err := s.store.UpdateUserBudget(ctx, user.ID, budget); err != nil {
		return "", err
	}
	return fmt.Sprintf("Orçamento definido como R$ %.2f.", budget.Reais()), nil
}
