// Package record defines the terminal solicitation aggregate and its wire
// form. Field names are a downstream contract and must not change.
package record

import "github.com/govbids/harvester/internal/detail"

// Solicitation is one fully processed procurement posting.
type Solicitation struct {
	State                       string        `json:"state"`
	MainCategory                string        `json:"main_category"`
	SolicitationType            string        `json:"solicitation_type"`
	MainTitle                   string        `json:"main_title"`
	SolicitationSummary         string        `json:"solicitation_summary"`
	ID                          string        `json:"id"`
	AlternateID                 *string       `json:"alternate_id"`
	Status                      string        `json:"status"`
	DueCloseDateEST             string        `json:"due_close_date_est"`
	DueDateTime                 string        `json:"due_date_time"`
	IssuingAgency               string        `json:"issuing_agency"`
	ProcurementOfficerBuyerName *string       `json:"procurement_officer_buyer_name"`
	ProcurementOfficerEmail     *string       `json:"procurement_officer_email"`
	AdditionalInstructions      *string       `json:"additional_instructions"`
	IssueDate                   string        `json:"issue_date"`
	PDFTexts                    []string      `json:"pdf_texts"`
	ProjectCostClass            string        `json:"project_cost_class"`
	Miscellaneous               Miscellaneous `json:"miscellaneous"`
	Link                        string        `json:"link"`
}

// Miscellaneous carries fields the upstream schema has no dedicated slot for.
type Miscellaneous struct {
	DeliveryPoint string `json:"delivery_point"`
}

// Assemble builds a Solicitation from page metadata and the normalized
// document texts, in discovery order. Candidates whose extraction failed
// contribute nothing, so len(texts) never exceeds the candidate count.
func Assemble(meta detail.Metadata, texts []string, link, state string) Solicitation {
	if texts == nil {
		texts = []string{}
	}
	return Solicitation{
		State:               state,
		MainCategory:        "N/A",
		SolicitationType:    "Bid",
		MainTitle:           meta.Description,
		SolicitationSummary: "N/A",
		ID:                  meta.Number,
		Status:              "Open",
		DueCloseDateEST:     meta.DueDateTime,
		DueDateTime:         meta.DueDateTime,
		IssuingAgency:       meta.Agency,
		IssueDate:           meta.IssueDate,
		PDFTexts:            texts,
		ProjectCostClass:    "N/A",
		Miscellaneous:       Miscellaneous{DeliveryPoint: meta.DeliveryPoint},
		Link:                link,
	}
}
