package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/stats"
	"max.ks1230/expense-tracker/internal/utils"
)

const (
	noExpensesMessage = "No expenses found for this user."
	noUsersMessage    = "No users found."

	descriptionWidth = 23
	ruleWidth        = 60
)

func money(d decimal.Decimal) string {
	return "$" + stats.FormatAmount(d)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func writeExpenses(out io.Writer, exps []user.ExpenseRecord) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDescription\tAmount\tCategory\tDate\tTime")
	for _, e := range exps {
		clock := e.Time
		if clock == "" {
			clock = "N/A"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, clip(e.Description, descriptionWidth), money(e.Amount), e.Category, utils.FormatDate(e.Date), clock)
	}
	return w.Flush()
}

func writeCategories(out io.Writer, categories []stats.CategoryTotal) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range categories {
		fmt.Fprintf(w, "  %s:\t%s\t(%d)\n", c.Category, money(c.Total), c.Count)
	}
	return w.Flush()
}

func writeStats(out io.Writer, res *stats.Stats) error {
	fmt.Fprintf(out, "Period: %s", res.Period)
	if res.Range.Bounded() {
		fmt.Fprintf(out, " (%s .. %s)", utils.FormatDate(res.Range.Start), utils.FormatDate(res.Range.End.AddDate(0, 0, -1)))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total Expenses: %d items\n", res.Count)
	fmt.Fprintf(out, "Total Amount: %s\n", money(res.Total))

	fmt.Fprintln(out, "\nCategory Breakdown:")
	if err := writeCategories(out, res.Categories); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTrend by %s:\n", res.Granularity)
	layout := utils.DateLayout
	if res.Granularity == stats.ByMonth {
		layout = "2006-01"
	}
	if err := writeTrend(out, res.Trend, layout); err != nil {
		return err
	}

	if len(res.Hourly) > 0 {
		fmt.Fprintln(out, "\nBy hour:")
		return writeTrend(out, res.Hourly, utils.TimeLayout)
	}
	return nil
}

func writeTrend(out io.Writer, points []stats.TrendPoint, layout string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, p := range points {
		fmt.Fprintf(w, "  %s\t%s\t\n", p.Bucket.Format(layout), money(p.Total))
	}
	return w.Flush()
}

func writeOverview(out io.Writer, res *stats.Overview) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Today:\t%s\n", money(res.Daily))
	fmt.Fprintf(w, "Last 7 days:\t%s\n", money(res.Weekly))
	fmt.Fprintf(w, "This month:\t%s\n", money(res.Monthly))
	fmt.Fprintf(w, "All time:\t%s\n", money(res.All))
	return w.Flush()
}

// writeUserReport prints one user's block of the report and returns the
// user's total.
func writeUserReport(out io.Writer, u user.Record, exps []user.ExpenseRecord) (decimal.Decimal, error) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(out, "\n%s\nUSER: %s (ID: %d)\nEmail: %s\n%s\n", rule, u.Username, u.ID, u.Email, rule)

	if len(exps) == 0 {
		_, err := fmt.Fprintln(out, noExpensesMessage)
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range exps {
		total = total.Add(e.Amount)
	}

	fmt.Fprintf(out, "Total Expenses: %d items\n", len(exps))
	fmt.Fprintf(out, "Total Amount: %s\n", money(total))
	fmt.Fprintln(out, "\nCategory Breakdown:")
	for _, c := range stats.GroupByCategory(exps) {
		fmt.Fprintf(out, "  %s: %s\n", c.Category, money(c.Total))
	}
	fmt.Fprintln(out, "\nDetailed Expenses:")
	return total, writeExpenses(out, exps)
}

func writeSummary(out io.Writer, users, count int, total decimal.Decimal) error {
	rule := strings.Repeat("=", ruleWidth)
	_, err := fmt.Fprintf(out, "\n%s\nSUMMARY\nTotal Users: %d\nTotal Expenses: %d\nTotal Amount: %s\n%s\n",
		rule, users, count, money(total), rule)
	return err
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
