package bot

// Canned pt-BR replies. Handlers that need interpolation format their own
// strings; everything fixed lives here.
const (
	greetingReply = `Olá! Eu sou o seu assistente financeiro 🤖💰. Posso te ajudar a:
• Registrar seus gastos 📝
• Listar seus gastos por período 📆
• Gerar relatórios detalhados com resumos e top itens 📊
• Criar lembretes para suas contas ⏰
• Consultar seu saldo e definir seu orçamento 🎯

Se precisar de ajuda, digite /ajuda. Estou aqui para facilitar sua vida! 😉`

	helpReply = `Oi, tudo bem? Aqui estão alguns comandos que você pode usar:

• *Registrar gasto:*
  "Gastei 50 no almoço" ou "Fiz um gasto de 20 com transporte" 📝

• *Listar gastos:*
  "Me mostra meus gastos" ou "/gastos semana" ou "/gastos janeiro" 📆

• *Gerar relatório:*
  "Quero saber quanto gastei" ou "/relatorio" 📊

• *Criar lembrete:*
  "Quero criar um lembrete para pagar a fatura daqui a 1 minuto"
  "Quero criar um lembrete fixo mensal para pagar a conta" ⏰

• *Remover registro:*
  "Apaga o gasto do almoço" ou "Remove o último gasto" ou "Cancela o lembrete de pagar conta" ❌

• *Consultar saldo:*
  "Quanto posso gastar?" ou "Qual meu saldo disponível?" 💰

• *Definir orçamento:*
  "Meu orçamento é 500" 🎯

Estou aqui para te ajudar! 😉`

	fallbackReply = "Oi! Não consegui entender muito bem 😕. Pode me explicar de outra forma ou digitar /ajuda para ver o que posso fazer por você?"

	paymentRequiredReply = "Para utilizar o serviço, é necessário que seu pagamento seja finalizado. Por favor, verifique e complete o pagamento."

	amountNotFoundReply = "Não consegui identificar o valor do gasto 😕. Por favor, tente novamente informando um número!"

	reminderScheduleMissingReply = "Você deve informar uma data/horário ou recorrência para o lembrete."

	noRemindersReply = "Você não possui lembretes ativos."

	noExpensesInPeriodReply = "Nenhum gasto registrado no período."

	noExpenseToDeleteReply = "Nenhum gasto encontrado para ser removido."

	lastExpenseDeletedReply = "Último gasto removido com sucesso! 😊"

	expenseTargetMissingReply = "Não foi possível identificar o gasto a ser removido."

	expenseNotFoundReply = "Gasto não encontrado."

	expenseDeletedReply = "Gasto removido com sucesso! 😊"

	reminderTargetMissingReply = "Não foi possível identificar o lembrete a ser removido."

	reminderNotFoundReply = "Lembrete não encontrado."

	reminderDeletedReply = "Lembrete removido com sucesso! 😊"

	budgetUnsetReply = "Você ainda não definiu seu orçamento mensal."

	budgetValueMissingReply = "Não foi possível identificar o valor do orçamento."

	paymentAckReply = "Pagamento registrado! 😊"
)
