package service

import (
	"fmt"
	"strings"

	"github.com/flexprice/playbill/internal/domain/statement"
)

// RenderText renders a statement as plain text. Every line, the last included,
// ends with a newline.
//
//	Statement for BigCo
//	  Hamlet: $650.00 (55 seats)
//	Amount owed is $650.00
//	You earned 25 credits
func RenderText(s *statement.Statement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Statement for %s\n", s.Customer)
	for _, line := range s.Lines {
		fmt.Fprintf(&sb, "  %s: %s (%d seats)\n", line.PlayName, line.FormattedAmount(s.Currency), line.Audience)
	}
	fmt.Fprintf(&sb, "Amount owed is %s\n", s.FormattedTotal())
	fmt.Fprintf(&sb, "You earned %d credits\n", s.VolumeCredits)
	return sb.String()
}
