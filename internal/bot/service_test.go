package bot

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbot/internal/core"
	"finbot/internal/log"
	"finbot/internal/messaging"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 45, 0, time.UTC)

const testPhone = "5511999990000"

type recordingSyncer struct {
	ids []int64
}

func (r *recordingSyncer) PublishExpenseSync(_ context.Context, msg *messaging.ExpenseSyncMessage) error {
	r.ids = append(r.ids, msg.ID)
	return nil
}

func newTestService(budgetCents int64) (*Service, *fakeStore, *recordingSyncer) {
	store := newFakeStore()
	store.users["u1"] = core.User{
		ID:            "u1",
		Phone:         testPhone,
		Name:          "Teste",
		MonthlyBudget: core.Money{Cents: budgetCents},
	}
	store.payments["u1"] = core.PaymentCompleted

	syncer := &recordingSyncer{}
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	svc := New(store, core.FixedClock{Instant: testNow}, syncer, logger)
	return svc, store, syncer
}

func handle(t *testing.T, svc *Service, text string) string {
	t.Helper()
	reply, err := svc.HandleMessage(context.Background(), testPhone, text)
	require.NoError(t, err)
	return reply
}

func TestHandleMessageUnknownUser(t *testing.T) {
	svc, _, _ := newTestService(0)
	reply, err := svc.HandleMessage(context.Background(), "5500000000000", "oi")
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestHandleMessageStripsTransportSuffix(t *testing.T) {
	svc, _, _ := newTestService(0)
	reply, err := svc.HandleMessage(context.Background(), testPhone+"@c.us", "oi")
	require.NoError(t, err)
	assert.Equal(t, greetingReply, reply)
}

func TestHandleMessagePaymentPending(t *testing.T) {
	svc, store, _ := newTestService(0)
	store.payments["u1"] = core.PaymentPending

	assert.Equal(t, paymentRequiredReply, handle(t, svc, "oi"))
	assert.Equal(t, paymentRequiredReply, handle(t, svc, "gastei 50 no almoço"))
}

func TestGreetingAndHelp(t *testing.T) {
	svc, _, _ := newTestService(0)
	assert.Equal(t, greetingReply, handle(t, svc, "Bom dia!"))
	assert.Equal(t, helpReply, handle(t, svc, "/ajuda"))
	assert.Equal(t, fallbackReply, handle(t, svc, "blablabla"))
	assert.Equal(t, paymentAckReply, handle(t, svc, "já paguei"))
}

func TestRegisterExpense(t *testing.T) {
	svc, store, syncer := newTestService(100000)

	reply := handle(t, svc, "Gastei 50 no almoço")
	assert.Equal(t, "Gasto de R$ 50.00 (almoço) registrado com sucesso! Categoria: Alimentação.", reply)

	require.Len(t, store.expenses, 1)
	e := store.expenses[0]
	assert.Equal(t, "almoço", e.Description)
	assert.Equal(t, int64(5000), e.Value.Cents)
	assert.Equal(t, "Alimentação", e.Category)
	assert.True(t, e.CreatedAt.Equal(testNow))

	assert.Equal(t, []int64{1}, syncer.ids)
}

func TestRegisterExpenseNoAmount(t *testing.T) {
	svc, store, _ := newTestService(0)
	assert.Equal(t, amountNotFoundReply, handle(t, svc, "gastei 0 no almoço"))
	assert.Empty(t, store.expenses)
}

func TestAmountlessSpendingQuestionIsNotRegistration(t *testing.T) {
	svc, store, _ := newTestService(0)
	seedExpenses(store)

	reply := handle(t, svc, "quanto gastei em março?")
	assert.Contains(t, reply, "Relatório de gastos referentes ao mês de março de 2026")
	assert.Len(t, store.expenses, 2)
}

func TestRegisterExpenseBudgetWarnings(t *testing.T) {
	svc, _, _ := newTestService(10000) // R$ 100.00

	reply := handle(t, svc, "gastei 60 no mercado")
	assert.Equal(t, "Gasto de R$ 60.00 (mercado) registrado com sucesso! Categoria: Mercado.\nATENÇÃO: Você já gastou 60% do seu orçamento.", reply)

	reply = handle(t, svc, "gastei 30 em uber")
	assert.Equal(t, "Gasto de R$ 30.00 (uber) registrado com sucesso! Categoria: Transporte.\nATENÇÃO: Você já gastou 90% do seu orçamento. O orçamento está quase acabando!", reply)

	reply = handle(t, svc, "gastei 20 na farmácia")
	assert.Equal(t, "Gasto de R$ 20.00 (farmácia) registrado com sucesso! Categoria: Saúde.\nATENÇÃO: Você ultrapassou seu orçamento em R$ 10.00.", reply)
}

func seedExpenses(store *fakeStore) {
	store.expenses = append(store.expenses,
		core.Expense{ID: 1, UserID: "u1", Description: "almoço", Value: core.Money{Cents: 5000}, Category: "Alimentação", CreatedAt: time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)},
		core.Expense{ID: 2, UserID: "u1", Description: "uber", Value: core.Money{Cents: 2000}, Category: "Transporte", CreatedAt: time.Date(2026, 3, 6, 8, 0, 0, 0, time.UTC)},
	)
	store.nextExpenseID = 2
}

func TestListExpenses(t *testing.T) {
	svc, store, _ := newTestService(0)
	assert.Equal(t, noExpensesInPeriodReply, handle(t, svc, "/gastos"))

	seedExpenses(store)
	want := "Listagem de gastos referentes ao mês de março de 2026\n\n" +
		"Categoria: Alimentação 🍔\n" +
		"  - almoço(05/03): R$ 50.00\n\n" +
		"Categoria: Transporte 🚗\n" +
		"  - uber(06/03): R$ 20.00\n\n"
	assert.Equal(t, want, handle(t, svc, "me mostra meus gastos"))
}

func TestListExpensesNamedMonth(t *testing.T) {
	svc, store, _ := newTestService(0)
	store.expenses = append(store.expenses, core.Expense{
		ID: 1, UserID: "u1", Description: "presente", Value: core.Money{Cents: 9900},
		Category: "Compras", CreatedAt: time.Date(2025, 12, 20, 10, 0, 0, 0, time.UTC),
	})

	reply := handle(t, svc, "/gastos dezembro 2025")
	assert.Contains(t, reply, "Listagem de gastos referentes ao mês de dezembro de 2025")
	assert.Contains(t, reply, "presente(20/12): R$ 99.00")
}

func TestGenerateReport(t *testing.T) {
	svc, store, _ := newTestService(0)
	seedExpenses(store)

	want := "Relatório de gastos referentes ao mês de março de 2026\n\n" +
		"Categoria: Alimentação 🍔\n" +
		"  - almoço(05/03): R$ 50.00\n" +
		"  Total da categoria: R$ 50.00\n\n" +
		"Categoria: Transporte 🚗\n" +
		"  - uber(06/03): R$ 20.00\n" +
		"  Total da categoria: R$ 20.00\n\n" +
		"Total geral: R$ 70.00\n\n" +
		"Top categorias:\n" +
		"  • Alimentação: R$ 50.00\n" +
		"  • Transporte: R$ 20.00\n" +
		"\nTop itens:\n" +
		"  • almoço: R$ 50.00\n" +
		"  • uber: R$ 20.00\n" +
		"\nTotal geral: R$ 70.00"
	assert.Equal(t, want, handle(t, svc, "/relatorio"))
}

func TestAddReminderRelative(t *testing.T) {
	svc, store, _ := newTestService(0)

	reply := handle(t, svc, "Criar um lembrete pagar conta daqui a 10 minutos")
	assert.Equal(t, "Lembrete \"pagar conta\" cadastrado com sucesso!\nSerá lembrado em 10/03/2026 14:40.", reply)

	require.Len(t, store.reminders, 1)
	r := store.reminders[0]
	assert.Equal(t, "pagar conta", r.Description)
	require.NotNil(t, r.ScheduledAt)
	assert.True(t, r.ScheduledAt.Equal(time.Date(2026, 3, 10, 14, 40, 0, 0, time.UTC)))
	assert.Empty(t, r.Recurrence)
	assert.True(t, r.Active)
}

func TestAddReminderRecurring(t *testing.T) {
	svc, store, _ := newTestService(0)

	reply := handle(t, svc, "quero criar um lembrete fixo mensal para pagar a conta")
	assert.Equal(t, "Lembrete \"para pagar a conta\" cadastrado com sucesso!\nEsse lembrete é recorrente (monthly).", reply)

	require.Len(t, store.reminders, 1)
	assert.Equal(t, core.Monthly, store.reminders[0].Recurrence)
	assert.Nil(t, store.reminders[0].ScheduledAt)
}

func TestAddReminderMissingSchedule(t *testing.T) {
	svc, store, _ := newTestService(0)
	assert.Equal(t, reminderScheduleMissingReply, handle(t, svc, "criar um lembrete pagar a conta"))
	assert.Equal(t, reminderScheduleMissingReply, handle(t, svc, "/lembrete"))
	assert.Empty(t, store.reminders)
}

func TestListReminders(t *testing.T) {
	svc, store, _ := newTestService(0)
	assert.Equal(t, noRemindersReply, handle(t, svc, "quais são meus lembretes?"))

	at := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	store.reminders = append(store.reminders,
		core.Reminder{ID: 1, UserID: "u1", Description: "pagar conta", ScheduledAt: &at, Active: true},
		core.Reminder{ID: 2, UserID: "u1", Description: "feira", Recurrence: core.Weekly, Active: true},
	)

	want := "Seus lembretes ativos:\n" +
		"• pagar conta - Agendado para 15/03/2026 09:00\n" +
		"• feira (Recorrente: weekly)\n"
	assert.Equal(t, want, handle(t, svc, "quais são meus lembretes?"))
}

func TestDeleteLastExpense(t *testing.T) {
	svc, store, _ := newTestService(0)
	assert.Equal(t, noExpenseToDeleteReply, handle(t, svc, "remove o último gasto"))

	seedExpenses(store)
	assert.Equal(t, lastExpenseDeletedReply, handle(t, svc, "remove o último gasto"))
	require.Len(t, store.expenses, 1)
	assert.Equal(t, "almoço", store.expenses[0].Description)
}

func TestDeleteExpenseByDescription(t *testing.T) {
	svc, store, _ := newTestService(0)
	seedExpenses(store)

	assert.Equal(t, expenseNotFoundReply, handle(t, svc, "apaga o gasto do cinema"))
	assert.Equal(t, expenseDeletedReply, handle(t, svc, "Apaga o gasto do almoço"))
	require.Len(t, store.expenses, 1)
	assert.Equal(t, "uber", store.expenses[0].Description)
}

func TestDeleteExpenseBySubstring(t *testing.T) {
	svc, store, _ := newTestService(0)

	handle(t, svc, "gastei 45 no almoço no shopping")
	require.Len(t, store.expenses, 1)
	assert.Equal(t, "almoço shopping", store.expenses[0].Description)

	assert.Equal(t, expenseDeletedReply, handle(t, svc, "apaga o gasto do almoço"))
	assert.Empty(t, store.expenses)
}

func TestDeleteReminderBySubstring(t *testing.T) {
	svc, store, _ := newTestService(0)
	store.reminders = append(store.reminders,
		core.Reminder{ID: 1, UserID: "u1", Description: "pagar conta de luz", Recurrence: core.Monthly, Active: true},
	)

	assert.Equal(t, reminderDeletedReply, handle(t, svc, "cancela o lembrete de pagar conta"))
	assert.False(t, store.reminders[0].Active)
}

func TestDeleteReminder(t *testing.T) {
	svc, store, _ := newTestService(0)
	store.reminders = append(store.reminders,
		core.Reminder{ID: 1, UserID: "u1", Description: "pagar conta", Recurrence: core.Weekly, Active: true},
	)

	assert.Equal(t, reminderNotFoundReply, handle(t, svc, "cancela o lembrete de dentista"))
	assert.Equal(t, reminderDeletedReply, handle(t, svc, "Cancela o lembrete de pagar conta"))
	assert.False(t, store.reminders[0].Active)
}

func TestAvailableBalance(t *testing.T) {
	svc, store, _ := newTestService(0)
	assert.Equal(t, budgetUnsetReply, handle(t, svc, "quanto posso gastar?"))

	u := store.users["u1"]
	u.MonthlyBudget = core.Money{Cents: 100000}
	store.users["u1"] = u
	seedExpenses(store)

	assert.Equal(t,
		"Seu orçamento mensal é R$ 1000.00 e você tem R$ 930.00 restantes para gastar.",
		handle(t, svc, "quanto posso gastar?"))

	u.MonthlyBudget = core.Money{Cents: 5000}
	store.users["u1"] = u
	assert.Equal(t,
		"Seu orçamento mensal é R$ 50.00 e você ultrapassou em R$ 20.00.",
		handle(t, svc, "qual meu saldo disponível?"))
}

func TestSetMonthlyBudget(t *testing.T) {
	svc, store, _ := newTestService(0)

	assert.Equal(t, "Orçamento definido como R$ 500.00.", handle(t, svc, "meu orçamento é 500"))
	assert.Equal(t, int64(50000), store.users["u1"].MonthlyBudget.Cents)

	assert.Equal(t, "Orçamento definido como R$ 1250.50.", handle(t, svc, "orçamento 1250,50"))
	assert.Equal(t, int64(125050), store.users["u1"].MonthlyBudget.Cents)
}
