// Command bankledger-cli is the interactive shell for the bankledger API.
// All user-facing formatting (two-decimal currency display, prompts) lives
// here; the core service only returns values and typed errors.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankledger-cli",
		Short: "Bankledger CLI tool",
		Long:  `A command line interface for interacting with the bankledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the bankledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd(), transferCmd(), loanCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var (
		name    string
		phone   string
		balance string
		rate    string
	)

	create := &cobra.Command{
		Use:   "create <id>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"id":            mustID(args[0]),
				"name":          name,
				"phone":         phone,
				"balance":       balance,
				"interest_rate": rate,
			}
			resp := post("/api/v1/accounts", body)
			fmt.Printf("Account created: %s (%s)\n", resp["name"], money(resp["balance"]))
		},
	}
	create.Flags().StringVar(&name, "name", "", "Account holder name")
	create.Flags().StringVar(&phone, "phone", "", "Phone number")
	create.Flags().StringVar(&balance, "balance", "0", "Opening balance")
	create.Flags().StringVar(&rate, "rate", "0", "Interest rate (%)")
	create.MarkFlagRequired("name")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printAccount(getJSON("/api/v1/accounts/" + args[0]))
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Run: func(cmd *cobra.Command, args []string) {
			for _, item := range getList("/api/v1/accounts") {
				printAccount(item)
			}
		},
	}

	deposit := &cobra.Command{
		Use:   "deposit <id> <amount>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			resp := post("/api/v1/accounts/"+args[0]+"/deposits", map[string]any{"amount": args[1]})
			fmt.Printf("Deposit successful. New balance: %s\n", money(resp["balance"]))
		},
	}

	withdraw := &cobra.Command{
		Use:   "withdraw <id> <amount>",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			resp := post("/api/v1/accounts/"+args[0]+"/withdrawals", map[string]any{"amount": args[1]})
			fmt.Printf("Withdrawal successful. New balance: %s\n", money(resp["balance"]))
		},
	}

	payBill := &cobra.Command{
		Use:   "pay-bill <id> <type> <amount>",
		Short: "Pay a bill from an account",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			resp := post("/api/v1/accounts/"+args[0]+"/bills", map[string]any{"type": args[1], "amount": args[2]})
			fmt.Printf("Bill paid. New balance: %s\n", money(resp["balance"]))
		},
	}

	setGoal := &cobra.Command{
		Use:   "set-goal <id> <goal>",
		Short: "Set the savings goal",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			put("/api/v1/accounts/"+args[0]+"/savings-goal", map[string]any{"goal": args[1]})
			fmt.Println("Savings goal set!")
		},
	}

	progress := &cobra.Command{
		Use:   "progress <id>",
		Short: "Show savings goal progress",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp := getJSON("/api/v1/accounts/" + args[0] + "/savings-goal")
			fmt.Printf("Savings Goal: %s of %s (%s%%)\n",
				money(resp["balance"]), money(resp["goal"]), percent(resp["percent"]))
		},
	}

	addInterest := &cobra.Command{
		Use:   "add-interest <id>",
		Short: "Accrue one round of interest",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp := post("/api/v1/accounts/"+args[0]+"/interest", nil)
			account, _ := resp["account"].(map[string]any)
			fmt.Printf("Interest added: %s. New balance: %s\n", money(resp["interest"]), money(account["balance"]))
		},
	}

	convert := &cobra.Command{
		Use:   "convert <id> <rate> <currency>",
		Short: "Show the balance in another currency",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			resp := getJSON("/api/v1/accounts/" + args[0] + "/conversion?rate=" + args[1] + "&currency=" + args[2])
			fmt.Printf("%s = %s %s\n", money(resp["balance"]), amount(resp["converted"]), resp["currency"])
		},
	}

	transactions := &cobra.Command{
		Use:   "transactions <id>",
		Short: "Show the account audit log",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, item := range getList("/api/v1/accounts/" + args[0] + "/transactions") {
				at, _ := time.Parse(time.RFC3339, fmt.Sprint(item["at"]))
				fmt.Printf("%s: %s\n", at.Format("2006-01-02"), item["text"])
			}
		},
	}

	cmd.AddCommand(create, get, list, deposit, withdraw, payBill, setGoal, progress, addInterest, convert, transactions)

	return cmd
}

func transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <from-id> <to-id> <amount>",
		Short: "Transfer between accounts",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			resp := post("/api/v1/transfers", map[string]any{
				"from_account_id": mustID(args[0]),
				"to_account_id":   mustID(args[1]),
				"amount":          args[2],
			})
			from, _ := resp["from"].(map[string]any)
			to, _ := resp["to"].(map[string]any)
			fmt.Println("Transfer successful!")
			fmt.Printf("From account new balance: %s\n", money(from["balance"]))
			fmt.Printf("To account new balance: %s\n", money(to["balance"]))
		},
	}
}

func loanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Loan operations",
	}

	var (
		name      string
		principal string
		rate      string
		term      int
	)

	create := &cobra.Command{
		Use:   "create <id>",
		Short: "Create a loan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"id":            mustID(args[0]),
				"name":          name,
				"principal":     principal,
				"interest_rate": rate,
				"term_months":   term,
			}
			resp := post("/api/v1/loans", body)
			fmt.Printf("Loan created! Total owed: %s\n", money(resp["total_owed"]))
		},
	}
	create.Flags().StringVar(&name, "name", "", "Loan name")
	create.Flags().StringVar(&principal, "principal", "0", "Loan amount")
	create.Flags().StringVar(&rate, "rate", "0", "Interest rate (%)")
	create.Flags().IntVar(&term, "term", 12, "Term in months")
	create.MarkFlagRequired("name")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one loan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printLoan(getJSON("/api/v1/loans/" + args[0]))
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all loans",
		Run: func(cmd *cobra.Command, args []string) {
			for _, item := range getList("/api/v1/loans") {
				printLoan(item)
			}
		},
	}

	pay := &cobra.Command{
		Use:   "pay <id> <amount>",
		Short: "Make a loan payment",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			resp := post("/api/v1/loans/"+args[0]+"/payments", map[string]any{"amount": args[1]})
			fmt.Printf("Payment applied. Remaining: %s\n", money(resp["remaining"]))
			if paidOff, _ := resp["paid_off"].(bool); paidOff {
				fmt.Println("Loan fully paid off!")
			}
		},
	}

	cmd.AddCommand(create, get, list, pay)

	return cmd
}

func printAccount(a map[string]any) {
	fmt.Printf("Account %v: %s, Balance: %s, Interest: %v%%\n",
		a["id"], a["name"], money(a["balance"]), a["interest_rate"])
}

func printLoan(l map[string]any) {
	fmt.Printf("Loan %v: %s, Amount: %s, Paid: %s, Term: %v months\n",
		l["id"], l["name"], money(l["principal"]), money(l["amount_paid"]), l["term_months"])
}

func mustID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Printf("invalid id %q\n", s)
		os.Exit(1)
	}

	return id
}

// money renders a decimal API value as $X.XX.
func money(v any) string {
	return "$" + amount(v)
}

func amount(v any) string {
	d, err := decimal.NewFromString(fmt.Sprint(v))
	if err != nil {
		return fmt.Sprint(v)
	}

	return d.StringFixed(2)
}

func percent(v any) string {
	d, err := decimal.NewFromString(fmt.Sprint(v))
	if err != nil {
		return fmt.Sprint(v)
	}

	return d.StringFixed(1)
}

func post(path string, body any) map[string]any {
	return doJSON(http.MethodPost, path, body)
}

func put(path string, body any) map[string]any {
	return doJSON(http.MethodPut, path, body)
}

func getJSON(path string) map[string]any {
	return doJSON(http.MethodGet, path, nil)
}

func getList(path string) []map[string]any {
	data := request(http.MethodGet, path, nil)

	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	return items
}

func doJSON(method, path string, body any) map[string]any {
	data := request(method, path, body)

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	return result
}

// request performs an HTTP request, retrying connection-level failures with
// exponential backoff so the CLI survives a server that is still starting.
func request(method, path string, body any) []byte {
	client := &http.Client{Timeout: timeout}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
	}

	var data []byte
	var status int

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = timeout

	err := backoff.Retry(func() error {
		req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) || errors.Is(err, io.EOF) {
				return err
			}

			return backoff.Permanent(err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}

		status = resp.StatusCode

		return nil
	}, b)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}

	if status >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			fmt.Printf("Error: %s", apiErr.Error)
			if apiErr.Message != "" {
				fmt.Printf(" (%s)", apiErr.Message)
			}
			fmt.Println()
		} else {
			fmt.Printf("Error: status %d\nResponse: %s\n", status, string(data))
		}
		os.Exit(1)
	}

	return data
}
