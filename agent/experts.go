package agent

import (
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the chat in charge of the conversation; it answers
// the user by consulting the experts through function calls.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to get information about his crypto assets, his portfolio
			and his bank transactions. Devise a plan of questions to ask each expert and come up
			with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the market expert. It is seeded with the current asset
// report so it knows the symbols, prices and source health.
func NewAnalyst(marketReport string) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is the market Analyst. He knows the current state of the
		cryptocurrency market view: every tracked asset, its price on each source,
		its 24h change and 7-day history, and which price sources are healthy.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
			You are a market analyst. Below is the current market report of the user's
			dashboard, in markdown. Answer questions about assets, prices, price
			divergence between sources, and source health, strictly from this report.
			When a figure shows "n/a" say that it is not available, never invent a value.

			%s`, marketReport)}}},
		},
	}
}

// NewAccountant creates the bank ledger expert, seeded with the current bank
// report.
func NewAccountant(bankReport string) *Expert {
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He knows the user's bank ledger:
		balance, income, expenses, category totals and every recorded transaction.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
			You are an accountant in charge of the user's bank ledger. Below is the
			current bank report of the user's dashboard, in markdown. Answer questions
			about the user's balance, income, spending and categories strictly from
			this report. Pardon the user's approximative language and figure out what
			they meant.

			%s`, bankReport)}}},
		},
	}
}
