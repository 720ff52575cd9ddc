package bot

import "regexp"

// Intent is the command class a message resolves to.
type Intent int

const (
	IntentFallback Intent = iota
	IntentGreeting
	IntentRegisterExpense
	IntentListExpenses
	IntentReport
	IntentAddReminder
	IntentListReminders
	IntentDeleteLastExpense
	IntentDeleteExpense
	IntentDeleteReminder
	IntentBalance
	IntentSetBudget
	IntentPaymentAck
	IntentHelp
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentRegisterExpense:
		return "register_expense"
	case IntentListExpenses:
		return "list_expenses"
	case IntentReport:
		return "report"
	case IntentAddReminder:
		return "add_reminder"
	case IntentListReminders:
		return "list_reminders"
	case IntentDeleteLastExpense:
		return "delete_last_expense"
	case IntentDeleteExpense:
		return "delete_expense"
	case IntentDeleteReminder:
		return "delete_reminder"
	case IntentBalance:
		return "balance"
	case IntentSetBudget:
		return "set_budget"
	case IntentPaymentAck:
		return "payment_ack"
	case IntentHelp:
		return "help"
	default:
		return "fallback"
	}
}

type routeRule struct {
	intent Intent
	re     *regexp.Regexp
}

// Rules run top to bottom against the normalized (lowercased, accent-free)
// message, so the patterns are written without diacritics. Order encodes
// precedence: deleting the last expense must win over the generic expense
// deletion, the reminder commands over the expense ones that share verbs.
var routeRules = []routeRule{
	{IntentGreeting, regexp.MustCompile(`^(oi|ola|e ai|bom dia|boa tarde|boa noite)[!.]?$`)},
	// The numeric token keeps amount-less questions like "quanto gastei em
	// janeiro" falling through to the report rule.
	{IntentRegisterExpense, regexp.MustCompile(`gastei\s+.*\d|fiz(?:\s+um)?\s+gasto.*\d`)},
	{IntentListExpenses, regexp.MustCompile(`/gastos\b|(listar|mostrar|meus).*(gasto)`)},
	{IntentReport, regexp.MustCompile(`/relatorio\b|relatorio|quanto\s+gastei`)},
	{IntentAddReminder, regexp.MustCompile(`/lembrete|adicionar?\s+lembrete|cadastrar?\s+lembrete|criar(?:\s+um)?\s+lembrete`)},
	{IntentListReminders, regexp.MustCompile(`(quais sao|listar|mostrar).*(lembrete)`)},
	{IntentDeleteLastExpense, regexp.MustCompile(`(apaga|remove|exclui)\s+(?:o\s+)?ultimo\s+gasto`)},
	{IntentDeleteExpense, regexp.MustCompile(`(apaga|remove|exclui).*(gasto)`)},
	{IntentDeleteReminder, regexp.MustCompile(`(cancela|remove|exclui).*(lembrete)`)},
	{IntentBalance, regexp.MustCompile(`(quanto.*(posso|ainda).*gastar)|(saldo.*disponivel)`)},
	{IntentSetBudget, regexp.MustCompile(`(orcamento|budget).*?\d+`)},
	{IntentPaymentAck, regexp.MustCompile(`ja\s+paguei|pagamento.*(feito|realizado)`)},
	{IntentHelp, regexp.MustCompile(`/ajuda|ajuda|comandos`)},
}

// Route classifies an already-normalized message.
func Route(normalized string) Intent {
	for _, rule := range routeRules {
		if rule.re.MatchString(normalized) {
			return rule.intent
		}
	}
	return IntentFallback
}
