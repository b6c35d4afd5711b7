package agent

import (
	"context"
	"fmt"

	"github.com/etnz/mbank"
	"github.com/etnz/mbank/date"
	"github.com/etnz/mbank/docs"
	"github.com/etnz/mbank/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his cash flow, his spending habits and his
			budgets across the currencies of his accounts. Amounts without a currency are in TWD.

			Devise a plan of questions to ask to each experts and come up with the best reponse
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert in charge of cash flow and habit analysis.
func NewAnalyst(svc mbank.Service) *Expert {

	lib := []Function{newCashFlowFunc(svc), newFrequenciesFunc(svc), newTransactionsFunc(svc), newRatesFunc(svc)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the user's bank accounts and computes
		cash flow reports, income and spending breakdowns and the current exchange rates.
		Ask the Analyst whenever you need actual figures about the user's money.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's bank accounts.
				You know how to use the Tools to extract cash flow, income and spending figures.
				You are part of a team of experts, yours is everything measurable about the
				user's money. They might ask you questions in approximative language,
				figure out what they meant.

				Scope every question with a currency (the user's reference currency is TWD)
				and optionally a month.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewBudgeter creates the expert in charge of budgets.
func NewBudgeter(svc mbank.Service) *Expert {

	lib := []Function{newBudgetFunc(svc)}

	return &Expert{
		Name: "Budgeter",
		Description: `This is the Budgeter. He knows the user's per-category budgets and
		how actual spending compares against them, month by month and currency by currency.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are in charge of the user's budgets.
				Use the available tools to read the budget settings and the budget-vs-spent
				comparison, and point out categories that are over budget.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// scopeSchema describes the currency/month arguments shared by the analytics tools.
func scopeSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"currency": {
				Type:        genai.TypeString,
				Description: "The ISO 4217 currency code of the account to analyze, e.g. TWD or USD.",
			},
			"month": {
				Type:        genai.TypeString,
				Description: "The month to analyze in YYYY-MM format. All history is the default.",
			},
		},
		Required: []string{"currency"},
	}
}

func parseScope(args map[string]any) (mbank.Scope, error) {
	var scope mbank.Scope
	icur, ok := args["currency"]
	if !ok {
		return scope, fmt.Errorf("argument 'currency' is required")
	}
	cur, ok := icur.(string)
	if !ok {
		return scope, fmt.Errorf("argument 'currency' is not a string as expected but %T", icur)
	}
	scope.Currency = cur

	imonth, hasMonth := args["month"]
	if !hasMonth {
		return scope, nil
	}
	smonth, ok := imonth.(string)
	if !ok {
		return scope, fmt.Errorf("argument 'month' is not a string as expected but %T", imonth)
	}
	if smonth == "" {
		return scope, nil
	}
	month, err := date.ParseMonth(smonth)
	if err != nil {
		return scope, fmt.Errorf("argument 'month' must be a YYYY-MM month got %q", smonth)
	}
	scope.Month = month
	return scope, nil
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func newCashFlowFunc(svc mbank.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "CashFlow",
			Description: `CashFlow reports total income, total spending, the daily flow and the
			income and spending sources for one currency, optionally restricted to a month.

			` + must(docs.GetTopic("analytics")),
			Parameters: scopeSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted cash flow report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			scope, err := parseScope(args)
			if err != nil {
				return errResponse(id, "CashFlow", err)
			}
			report, err := svc.CashFlow(ctx, scope.Currency, scope.Month)
			if err != nil {
				return errResponse(id, "CashFlow", err)
			}
			return okResponse(id, "CashFlow", renderer.CashFlowMarkdown(scope.String(), report))
		},
	}
}

func newFrequenciesFunc(svc mbank.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Frequencies",
			Description: `Frequencies reports how often each income source and each spending
			category occurred for one currency, optionally restricted to a month.`,
			Parameters: scopeSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted income and spending breakdown.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			scope, err := parseScope(args)
			if err != nil {
				return errResponse(id, "Frequencies", err)
			}
			spending, err := svc.AnalyzeSpending(ctx, scope.Currency, scope.Month)
			if err != nil {
				return errResponse(id, "Frequencies", err)
			}
			income, err := svc.AnalyzeIncome(ctx, scope.Currency, scope.Month)
			if err != nil {
				return errResponse(id, "Frequencies", err)
			}
			report := mbank.FrequencyReport{Scope: scope, Spending: spending, Income: income}
			return okResponse(id, "Frequencies", renderer.FrequenciesMarkdown(report))
		},
	}
}

func newTransactionsFunc(svc mbank.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions lists the user's transaction history, newest last,
			optionally restricted to a month. All currencies are included.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {
						Type:        genai.TypeString,
						Description: "The month to list in YYYY-MM format. All history is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted transaction table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var month date.Month
			if smonth, ok := args["month"].(string); ok && smonth != "" {
				var err error
				if month, err = date.ParseMonth(smonth); err != nil {
					return errResponse(id, "Transactions", fmt.Errorf("argument 'month' must be a YYYY-MM month got %q", smonth))
				}
			}
			records, err := svc.Transactions(ctx, month)
			if err != nil {
				return errResponse(id, "Transactions", err)
			}
			return okResponse(id, "Transactions", renderer.TransactionsMarkdown(records))
		},
	}
}

func newRatesFunc(svc mbank.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ExchangeRates",
			Description: `ExchangeRates lists the current exchange rates of the supported currencies against TWD.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted exchange rate table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			rates, err := svc.ExchangeRates(ctx)
			if err != nil {
				return errResponse(id, "ExchangeRates", err)
			}
			return okResponse(id, "ExchangeRates", renderer.RatesMarkdown(rates))
		},
	}
}

func newBudgetFunc(svc mbank.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Budget",
			Description: `Budget reports the user's per-category budget settings and the
			budget-vs-spent comparison for one currency and month. The current month
			is the default.

			` + must(docs.GetTopic("budgets")),
			Parameters: scopeSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted budget report with an over-budget marker per category.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			scope, err := parseScope(args)
			if err != nil {
				return errResponse(id, "Budget", err)
			}
			if scope.Month.IsZero() {
				scope.Month = date.ThisMonth()
			}
			set, err := svc.Budgets(ctx, scope.Month, scope.Currency)
			if err != nil {
				return errResponse(id, "Budget", err)
			}
			comparison, err := svc.SpendingVsBudget(ctx, scope.Month, scope.Currency)
			if err != nil {
				return errResponse(id, "Budget", err)
			}
			view := mbank.BudgetView{Scope: scope, Set: set, Comparison: comparison}
			return okResponse(id, "Budget", renderer.BudgetMarkdown(view))
		},
	}
}
