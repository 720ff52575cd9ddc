package bot

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"finbot/internal/core"
	"finbot/internal/nlp"
)

// reportWindow is the half-open interval [From, To) a listing or report
// covers, plus its rendered header line.
type reportWindow struct {
	From   time.Time
	To     time.Time
	Header string
}

// Month lookup keys are normalized; display names keep their accents.
var monthNumbers = map[string]time.Month{
	"janeiro": time.January, "fevereiro": time.February, "marco": time.March,
	"abril": time.April, "maio": time.May, "junho": time.June,
	"julho": time.July, "agosto": time.August, "setembro": time.September,
	"outubro": time.October, "novembro": time.November, "dezembro": time.December,
}

var monthDisplayNames = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

var categoryEmojis = map[string]string{
	"educação":              "📚",
	"alimentação":           "🍔",
	"transporte":            "🚗",
	"lazer":                 "🎬",
	"saúde":                 "💊",
	"moradia":               "🏠",
	"vestuário":             "👗",
	"serviços":              "🔧",
	"compras":               "🛍️",
	"mercado":               "🛒",
	"tecnologia":            "💻",
	"finanças":              "💰",
	"entretenimento":        "🎭",
	"pets":                  "🐶",
	"beleza":                "💄",
	"utilidades":            "🔑",
	"viagem":                "✈️",
	"assinaturas":           "📄",
	"fitness":               "🏋️",
	"investimentos":         "📈",
	"impostos":              "🧾",
	"doações":               "🤝",
	"entretenimento digital": "🎮",
	"comunicação":           "📞",
}

var yearRe = regexp.MustCompile(`\d{4}`)

// resolveWindow picks the period a listing or report refers to. A month name
// in the message selects that month (with an optional 4-digit year), the
// word "semana" selects the current Sunday-to-Saturday week, anything else
// the current month. kind is the header prefix, "Listagem" or "Relatório".
func resolveWindow(normalized string, now time.Time, kind string) reportWindow {
	loc := now.Location()

	for name, month := range monthNumbers {
		if !strings.Contains(normalized, name) {
			continue
		}
		year := now.Year()
		if m := yearRe.FindString(normalized); m != "" {
			year, _ = strconv.Atoi(m)
		}
		from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return reportWindow{
			From:   from,
			To:     from.AddDate(0, 1, 0),
			Header: fmt.Sprintf("%s de gastos referentes ao mês de %s de %d\n\n", kind, monthDisplayNames[month], year),
		}
	}

	if strings.Contains(normalized, "semana") {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		from := midnight.AddDate(0, 0, -int(now.Weekday()))
		to := from.AddDate(0, 0, 7)
		return reportWindow{
			From: from,
			To:   to,
			Header: fmt.Sprintf("%s de gastos referentes à semana de %s até %s\n\n",
				kind, from.Format("02/01/2006"), to.AddDate(0, 0, -1).Format("02/01/2006")),
		}
	}

	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	return reportWindow{
		From:   from,
		To:     from.AddDate(0, 1, 0),
		Header: fmt.Sprintf("%s de gastos referentes ao mês de %s de %d\n\n", kind, monthDisplayNames[now.Month()], now.Year()),
	}
}

// categoryGroup keeps the expenses of one category in encounter order.
type categoryGroup struct {
	Name  string
	Items []core.Expense
}

// groupByCategory preserves first-seen category order so rendered output is
// stable for a given expense sequence.
func groupByCategory(expenses []core.Expense) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, e := range expenses {
		cat := e.Category
		if cat == "" {
			cat = nlp.FallbackCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, categoryGroup{Name: cat})
		}
		groups[i].Items = append(groups[i].Items, e)
	}
	return groups
}

func renderListing(header string, expenses []core.Expense) string {
	var b strings.Builder
	b.WriteString(header)
	for _, g := range groupByCategory(expenses) {
		emoji := categoryEmojis[strings.ToLower(g.Name)]
		fmt.Fprintf(&b, "Categoria: %s %s\n", g.Name, emoji)
		for _, e := range g.Items {
			fmt.Fprintf(&b, "  - %s(%s): R$ %.2f\n", e.Description, e.CreatedAt.Format("02/01"), e.Value.Reais())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderReport(header string, expenses []core.Expense) string {
	groups := groupByCategory(expenses)

	var total core.Money
	for _, e := range expenses {
		total = total.Add(e.Value)
	}

	var b strings.Builder
	b.WriteString(header)
	for _, g := range groups {
		emoji := categoryEmojis[strings.ToLower(g.Name)]
		fmt.Fprintf(&b, "Categoria: %s %s\n", g.Name, emoji)
		var catTotal core.Money
		for _, e := range g.Items {
			fmt.Fprintf(&b, "  - %s(%s): R$ %.2f\n", e.Description, e.CreatedAt.Format("02/01"), e.Value.Reais())
			catTotal = catTotal.Add(e.Value)
		}
		fmt.Fprintf(&b, "  Total da categoria: R$ %.2f\n\n", catTotal.Reais())
	}
	fmt.Fprintf(&b, "Total geral: R$ %.2f\n\n", total.Reais())

	b.WriteString("Top categorias:\n")
	for _, tc := range topCategories(groups, 3) {
		fmt.Fprintf(&b, "  • %s: R$ %.2f\n", tc.Name, tc.Total.Reais())
	}
	b.WriteString("\nTop itens:\n")
	for _, ti := range topItems(expenses, 3) {
		fmt.Fprintf(&b, "  • %s: R$ %.2f\n", ti.Name, ti.Total.Reais())
	}
	fmt.Fprintf(&b, "\nTotal geral: R$ %.2f", total.Reais())

	return b.String()
}

type rankedEntry struct {
	Name  string
	Total core.Money
}

func topCategories(groups []categoryGroup, n int) []rankedEntry {
	entries := make([]rankedEntry, 0, len(groups))
	for _, g := range groups {
		var total core.Money
		for _, e := range g.Items {
			total = total.Add(e.Value)
		}
		entries = append(entries, rankedEntry{Name: g.Name, Total: total})
	}
	return rankTop(entries, n)
}

// topItems merges expenses whose normalized descriptions coincide, keeping
// the first original spelling for display.
func topItems(expenses []core.Expense, n int) []rankedEntry {
	index := make(map[string]int)
	var entries []rankedEntry
	for _, e := range expenses {
		key := nlp.Normalize(e.Description)
		i, ok := index[key]
		if !ok {
			i = len(entries)
			index[key] = i
			entries = append(entries, rankedEntry{Name: e.Description})
		}
		entries[i].Total = entries[i].Total.Add(e.Value)
	}
	return rankTop(entries, n)
}

// rankTop sorts by descending total; ties keep encounter order.
func rankTop(entries []rankedEntry, n int) []rankedEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total.Cents > entries[j].Total.Cents
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
