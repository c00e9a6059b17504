package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"supplierwatch/internal/apperr"
)

// ExportFormat is one of the three formats GET /suppliers/{id}/export
// accepts (§6).
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportPDF  ExportFormat = "pdf"
)

// ExportPayload is the encoded export body plus its MIME type.
type ExportPayload struct {
	ContentType string
	Body        []byte
}

// ExportService renders a Dossier into one of the supported formats (§4.4).
// PDF is a deliberate stub: it always returns apperr.Unimplemented, keeping
// the surface present and testable without a real rendering dependency.
type ExportService struct{}

func NewExportService() *ExportService { return &ExportService{} }

func (e *ExportService) Export(d *Dossier, format ExportFormat) (*ExportPayload, error) {
	switch format {
	case ExportJSON:
		return e.exportJSON(d)
	case ExportCSV:
		return e.exportCSV(d)
	case ExportPDF:
		return nil, apperr.Unimplemented("PDF export is not implemented")
	default:
		return nil, apperr.InputInvalid(fmt.Sprintf("unknown export format %q", format), nil)
	}
}

func (e *ExportService) exportJSON(d *Dossier) (*ExportPayload, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return nil, apperr.StoreError("failed to encode dossier", err)
	}
	return &ExportPayload{ContentType: "application/json", Body: body}, nil
}

// exportCSV produces a multi-section document: one header line per section,
// a blank line between sections, in the fixed order cadastral, contracts,
// partners, sanctions, donations, alerts (§4.4, §8).
func (e *ExportService) exportCSV(d *Dossier) (*ExportPayload, error) {
	var buf bytes.Buffer

	writeSection := func(header []string, rows [][]string) error {
		w := csv.NewWriter(&buf)
		if err := w.Write(header); err != nil {
			return err
		}
		for _, row := range rows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	sections := []struct {
		header []string
		rows   [][]string
	}{
		{
			header: []string{"cadastral_id", "legal_name", "cadastral_status", "opening_date", "capital"},
			rows:   [][]string{cadastralRow(d)},
		},
		{
			header: []string{"org_code", "value", "subject", "tender_number", "signed_date", "valid_until"},
			rows:   contractRows(d),
		},
		{
			header: []string{"person_hash", "name", "qualification", "is_public_servant", "capital_share"},
			rows:   partnerRows(d),
		},
		{
			header: []string{"kind", "sanctioning_body", "start_date", "end_date", "active"},
			rows:   sanctionRows(d),
		},
		{
			header: []string{"candidate_name", "candidate_party", "amount", "election_year", "org_code_aligned"},
			rows:   donationRows(d),
		},
		{
			header: []string{"kind", "severity", "description", "detected_at"},
			rows:   alertRows(d),
		},
	}

	for i, section := range sections {
		if err := writeSection(section.header, section.rows); err != nil {
			return nil, apperr.StoreError("failed to encode CSV export", err)
		}
		if i < len(sections)-1 {
			buf.WriteString("\n")
		}
	}

	return &ExportPayload{ContentType: "text/csv", Body: buf.Bytes()}, nil
}

func cadastralRow(d *Dossier) []string {
	opening := ""
	if d.Supplier.OpeningDate != nil {
		opening = d.Supplier.OpeningDate.Format("2006-01-02")
	}
	capital := ""
	if d.Supplier.Capital != nil {
		capital = d.Supplier.Capital.String()
	}
	return []string{d.Supplier.ID.String(), d.Supplier.LegalName, string(d.Supplier.CadastralStatus), opening, capital}
}

func contractRows(d *Dossier) [][]string {
	rows := make([][]string, 0, len(d.Contracts))
	for _, c := range d.Contracts {
		signed, valid := "", ""
		if c.SignedDate != nil {
			signed = c.SignedDate.Format("2006-01-02")
		}
		if c.ValidUntil != nil {
			valid = c.ValidUntil.Format("2006-01-02")
		}
		rows = append(rows, []string{string(c.OrgCode), c.Value.String(), c.Subject, string(c.TenderNumber), signed, valid})
	}
	return rows
}

func partnerRows(d *Dossier) [][]string {
	rows := make([][]string, 0, len(d.Partners))
	for _, p := range d.Partners {
		rows = append(rows, []string{string(p.PersonHash), p.Name, p.Qualification, fmt.Sprintf("%t", p.IsPublicServant), p.CapitalShare.String()})
	}
	return rows
}

func sanctionRows(d *Dossier) [][]string {
	rows := make([][]string, 0, len(d.Sanctions))
	for _, s := range d.Sanctions {
		end := ""
		if s.EndDate != nil {
			end = s.EndDate.Format("2006-01-02")
		}
		rows = append(rows, []string{string(s.Kind), s.SanctioningBody, s.StartDate.Format("2006-01-02"), end, fmt.Sprintf("%t", s.Active(d.GeneratedAt))})
	}
	return rows
}

func donationRows(d *Dossier) [][]string {
	rows := make([][]string, 0, len(d.Donations))
	for _, don := range d.Donations {
		rows = append(rows, []string{don.CandidateName, don.CandidateParty, don.Amount.String(), fmt.Sprintf("%d", don.ElectionYear), string(don.OrgCodeAligned)})
	}
	return rows
}

func alertRows(d *Dossier) [][]string {
	rows := make([][]string, 0, len(d.Alerts))
	for _, a := range d.Alerts {
		rows = append(rows, []string{string(a.Kind), string(a.Severity), a.Description, a.DetectedAt.Format("2006-01-02T15:04:05Z07:00")})
	}
	return rows
}
