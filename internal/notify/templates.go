package notify

import (
	"fmt"
	"html"
	"strings"

	"rvconsign/internal/domain"
	"rvconsign/internal/pkg/dates"
)

// RemittanceStatement tells an owner a payout statement was issued.
func RemittanceStatement(to, toName string, r *domain.Remittance) Message {
	subject := fmt.Sprintf("Owner statement %s (%s to %s)", r.RemittanceNumber, dates.Format(r.PeriodStart), dates.Format(r.PeriodEnd))

	lines := []string{
		fmt.Sprintf("Statement: %s", r.RemittanceNumber),
		fmt.Sprintf("Period: %s to %s", dates.Format(r.PeriodStart), dates.Format(r.PeriodEnd)),
		fmt.Sprintf("Gross rental income: $%.2f", r.GrossRentalIncome),
		fmt.Sprintf("Platform fees: $%.2f", r.PlatformFees),
		fmt.Sprintf("Cleaning fees: $%.2f", r.CleaningFees),
		fmt.Sprintf("Expenses: $%.2f", r.MaintenanceExpenses),
		fmt.Sprintf("Net income: $%.2f", r.NetIncome),
		fmt.Sprintf("Your share (%.0f%%): $%.2f", r.OwnerSplitPercentage, r.OwnerPayoutAmount),
	}

	return Message{
		To:        to,
		ToName:    toName,
		Subject:   subject,
		PlainText: strings.Join(lines, "\n"),
		HTML:      htmlLines(lines),
	}
}

// OwnerOnboarded alerts the fleet team about a new owner application.
func OwnerOnboarded(to string, owner *domain.Owner, asset *domain.Asset) Message {
	lines := []string{
		fmt.Sprintf("Owner: %s", owner.BusinessName),
		fmt.Sprintf("Contact: %s <%s> %s", owner.ContactName, owner.Email, owner.Phone),
		fmt.Sprintf("Vehicle: %s", asset.Name),
		fmt.Sprintf("Requested nightly rate: $%.2f", asset.BasePricePerNight),
	}
	if owner.Notes != "" {
		lines = append(lines, "Notes: "+owner.Notes)
	}

	return Message{
		To:        to,
		ToName:    "Fleet team",
		Subject:   "New owner onboarding: " + owner.BusinessName,
		PlainText: strings.Join(lines, "\n"),
		HTML:      htmlLines(lines),
	}
}

func htmlLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(l))
		b.WriteString("</p>")
	}
	return b.String()
}
