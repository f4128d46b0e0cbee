package agent

import (
	"context"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert that faces the user and orchestrates
// the others.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to track his personal spending and income,
			to understand where his money goes and to stay motivated about his budget.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you already know his recorded transactions, check the ledger first.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach creates the expert for budgeting advice and general financial
// knowledge, grounded with Google Search.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a personal finance coach.
		Very well aware of budgeting methods, saving strategies and everyday money matters.
		Ask the Coach whenever you need general or grounding information about personal finance.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance. You can search and find about anything related to
			budgeting, saving, prices, currencies and everyday money decisions. You leverage Google Search
			to ground your assertions in a solid truth.
			You keep a positive and motivating tone, the user is trying to build a durable tracking habit.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of the user's ledger.
//
// It reads from the given store, amounts are rendered in currency.
func NewBookkeeper(store *fintrack.Store, currency string) *Expert {
	lib := []Function{balanceFunc(store, currency), historyFunc(store, currency)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's transaction ledger.
		He can report the current balance and list the recorded income and expense entries.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's transaction ledger.
				You know how to use the Tools to extract relevant information about the user's money.
				You are part of a team of experts, yours is everything recorded in the ledger. They might
				ask you approximate questions, figure out what they meant.

				Use the available tools to get information about the user's ledger
				  - current balance
				  - list of recorded transactions
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
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

func balanceFunc(store *fintrack.Store, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Balance",
			Description: `Balance computes the current balance of the ledger, all income minus all expenses.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The current balance, formatted as an amount of money.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Balance",
				Response: map[string]any{
					"output": renderer.Balance(store.Balance(), currency),
				},
			}
		},
	}
}

func historyFunc(store *fintrack.Store, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History lists every transaction recorded in the ledger, oldest first.
			Each entry carries its date, type (income or expense), item, quantity, unit price, signed amount and note.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all recorded transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "History",
				Response: map[string]any{
					"output": renderer.Transactions(store.Transactions(), currency),
				},
			}
		},
	}
}
