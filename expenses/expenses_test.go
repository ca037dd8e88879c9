package expenses

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddExpenseRequestValidate(t *testing.T) {
	valid := addExpenseRequest{Category: "food", Price: 42.5, PaidBy: "Alice", SplitBy: "everyone"}
	require.Empty(t, valid.validate())

	// zero is a legal price (freebies get logged too)
	free := addExpenseRequest{Category: "sightseeing", Price: 0, PaidBy: "Bob", SplitBy: "Bob"}
	require.Empty(t, free.validate())

	cases := []struct {
		name string
		req  addExpenseRequest
	}{
		{"missing category", addExpenseRequest{Price: 10, PaidBy: "a", SplitBy: "b"}},
		{"blank category", addExpenseRequest{Category: "  ", Price: 10, PaidBy: "a", SplitBy: "b"}},
		{"negative price", addExpenseRequest{Category: "food", Price: -1, PaidBy: "a", SplitBy: "b"}},
		{"missing paidBy", addExpenseRequest{Category: "food", Price: 10, SplitBy: "b"}},
		{"missing splitBy", addExpenseRequest{Category: "food", Price: 10, PaidBy: "a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NotEmpty(t, tc.req.validate())
		})
	}
}
