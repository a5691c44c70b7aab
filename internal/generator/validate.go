package generator

import (
	"fmt"
	"regexp"
	"time"

	"fjacquet/siro-files/internal/dateutils"
	"fjacquet/siro-files/internal/fixedwidth"
	"fjacquet/siro-files/internal/models"
	"fjacquet/siro-files/internal/parsererror"
	"fjacquet/siro-files/internal/receipt"
)

// Field keys of validation errors.
const (
	FieldDialect          = "dialect"
	FieldReceiptMode      = "receiptMode"
	FieldClientIDMode     = "clientIdMode"
	FieldFirstDueDate     = "firstDueDate"
	FieldSecondDueDate    = "secondDueDate"
	FieldThirdDueDate     = "thirdDueDate"
	FieldFirstAmount      = "firstAmount"
	FieldSecondAmount     = "secondAmount"
	FieldThirdAmount      = "thirdAmount"
	FieldTicketMessage    = "ticketMessage"
	FieldSecondaryMessage = "secondaryMessage"
	FieldScreenMessage    = "screenMessage"
	FieldPeriod           = "period"
	FieldConceptID        = "conceptId"
)

// Message length limits.
const (
	MaxTicketMessage    = 15
	MaxSecondaryMessage = 25
	MaxScreenMessage    = 15
)

var (
	conventionIDPattern = regexp.MustCompile(`^\d{10}$`)
	clientIDPattern     = regexp.MustCompile(`^\d{9}$`)
	messagePattern      = regexp.MustCompile(`^[A-Z0-9\s]*$`)
	periodPattern       = regexp.MustCompile(`^\d{4}$`)
	conceptPattern      = regexp.MustCompile(`^[0-9]$`)
)

// ConventionField returns the error key of a convention attribute.
func ConventionField(convention int, attr string) string {
	return fmt.Sprintf("convention-%d-%s", convention, attr)
}

// ClientField returns the error key of a client attribute.
func ClientField(convention, client int, attr string) string {
	return fmt.Sprintf("client-%d-%d-%s", convention, client, attr)
}

// Validate checks ctx against the business rules and returns every
// violation. today is the reference day for the first due date.
func Validate(ctx models.GenerationContext, today time.Time) parsererror.ValidationErrors {
	var errs parsererror.ValidationErrors

	if !ctx.Dialect.Valid() {
		errs.Add(FieldDialect, "the format must be FULL or BASIC")
	}
	if ctx.ReceiptMode != models.ReceiptAutomatic && ctx.ReceiptMode != models.ReceiptManual {
		errs.Add(FieldReceiptMode, "receipt generation must be AUTOMATIC or MANUAL")
	}
	if ctx.ClientIDMode != "" && ctx.ClientIDMode != models.ClientIDAutomatic && ctx.ClientIDMode != models.ClientIDManual {
		errs.Add(FieldClientIDMode, "client id generation must be AUTOMATIC or MANUAL")
	}

	validateConventions(ctx, &errs)
	validateDates(ctx, today, &errs)
	validateAmounts(ctx, &errs)
	validateMessages(ctx, &errs)

	if !periodPattern.MatchString(ctx.Period) {
		errs.Add(FieldPeriod, "invalid format (MMYY)")
	}
	if !conceptPattern.MatchString(ctx.ConceptID) {
		errs.Add(FieldConceptID, "must be a digit from 0 to 9")
	}
	return errs
}

func validateConventions(ctx models.GenerationContext, errs *parsererror.ValidationErrors) {
	for i, conv := range ctx.Conventions {
		if !conventionIDPattern.MatchString(conv.ID) {
			errs.Add(ConventionField(i, "id"), "the convention id must have 10 digits")
		}
		if conv.RecordCount <= 0 {
			errs.Add(ConventionField(i, "count"), "the record count must be a number greater than 0")
		}

		siblings := conv.ClientIDs()
		for j, client := range conv.Clients {
			if !clientIDPattern.MatchString(client.ID) {
				errs.Add(ClientField(i, j, "id"), "the client id must have 9 digits")
			}
			if ctx.ReceiptMode == models.ReceiptManual && client.ReceiptNumber != "" {
				if msg := receipt.ManualError(client.ReceiptNumber, ctx.Dialect, client.ID, siblings); msg != "" {
					errs.Add(ClientField(i, j, "receipt"), msg)
				}
			}
		}
	}
}

func validateDates(ctx models.GenerationContext, today time.Time, errs *parsererror.ValidationErrors) {
	first, firstErr := dateutils.ParseISO(ctx.FirstDueDate)
	if ctx.FirstDueDate == "" || firstErr != nil || dateutils.CompareDates(first, today) < 0 {
		errs.Add(FieldFirstDueDate, "the date must be today or later")
	}

	var second time.Time
	var secondOK bool
	if ctx.SecondDueDate != "" {
		var err error
		second, err = dateutils.ParseISO(ctx.SecondDueDate)
		switch {
		case err != nil:
			errs.Add(FieldSecondDueDate, "invalid date (YYYY-MM-DD)")
		case firstErr == nil && dateutils.CompareDates(second, first) < 0:
			errs.Add(FieldSecondDueDate, "must be after the first due date")
		default:
			secondOK = true
		}
	}

	if ctx.ThirdDueDate != "" {
		third, err := dateutils.ParseISO(ctx.ThirdDueDate)
		switch {
		case err != nil:
			errs.Add(FieldThirdDueDate, "invalid date (YYYY-MM-DD)")
		case secondOK && dateutils.CompareDates(third, second) < 0:
			errs.Add(FieldThirdDueDate, "must be after the second due date")
		}
	}
}

func validateAmounts(ctx models.GenerationContext, errs *parsererror.ValidationErrors) {
	const msg = "invalid format (e.g. 1000.50)"
	if !models.IsValidAmount(ctx.FirstAmount) {
		errs.Add(FieldFirstAmount, msg)
	}
	if ctx.SecondAmount != "" && !models.IsValidAmount(ctx.SecondAmount) {
		errs.Add(FieldSecondAmount, msg)
	}
	if ctx.ThirdAmount != "" && !models.IsValidAmount(ctx.ThirdAmount) {
		errs.Add(FieldThirdAmount, msg)
	}
}

func validateMessages(ctx models.GenerationContext, errs *parsererror.ValidationErrors) {
	const charset = "only uppercase letters, digits and spaces"

	if ctx.TicketMessage == "" || fixedwidth.Width(ctx.TicketMessage) > MaxTicketMessage {
		errs.Add(FieldTicketMessage, fmt.Sprintf("the ticket message is required (max. %d characters)", MaxTicketMessage))
	} else if !messagePattern.MatchString(ctx.TicketMessage) {
		errs.Add(FieldTicketMessage, charset)
	}

	if fixedwidth.Width(ctx.SecondaryMessage) > MaxSecondaryMessage {
		errs.Add(FieldSecondaryMessage, fmt.Sprintf("max. %d characters", MaxSecondaryMessage))
	} else if !messagePattern.MatchString(ctx.SecondaryMessage) {
		errs.Add(FieldSecondaryMessage, charset)
	}

	if fixedwidth.Width(ctx.ScreenMessage) > MaxScreenMessage {
		errs.Add(FieldScreenMessage, fmt.Sprintf("max. %d characters", MaxScreenMessage))
	} else if !messagePattern.MatchString(ctx.ScreenMessage) {
		errs.Add(FieldScreenMessage, charset)
	}
}
