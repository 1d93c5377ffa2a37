package testutil

import (
	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/domain/play"
	"github.com/flexprice/playbill/internal/types"
)

// BigCoStatement is the rendered statement for BigCoInvoice priced against BigCoCatalog
const BigCoStatement = "Statement for BigCo\n" +
	"  Hamlet: $650.00 (55 seats)\n" +
	"  As You Like It: $580.00 (35 seats)\n" +
	"Amount owed is $1,230.00\n" +
	"You earned 37 credits\n"

func Hamlet() *play.Play {
	return &play.Play{ID: "hamlet", Name: "Hamlet", Type: types.PlayTypeTragedy}
}

func AsYouLikeIt() *play.Play {
	return &play.Play{ID: "as-like", Name: "As You Like It", Type: types.PlayTypeComedy}
}

func Othello() *play.Play {
	return &play.Play{ID: "othello", Name: "Othello", Type: types.PlayTypeTragedy}
}

func BigCoCatalog() play.Catalog {
	return play.NewCatalog(Hamlet(), AsYouLikeIt(), Othello())
}

func BigCoInvoice() *invoice.Invoice {
	return &invoice.Invoice{
		ID:       "inv_bigco",
		Customer: "BigCo",
		Performances: []*invoice.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
		},
	}
}
