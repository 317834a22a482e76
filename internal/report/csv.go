// Package report renders scored prospects into the output formats the
// outreach workflow consumes: CSV, XLSX, and a plain-text run summary. It
// never re-derives signals; everything it prints is already on the
// prospect.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

var columns = []string{
	"Company", "Address", "Phone", "Contact_Phone",
	"Website", "Domain_Verified",
	"Sales_Fit_Score", "Sales_Recommendation", "Has_WordPress",
	"Server_Detected", "Security_Headers_Count",
}

// WriteCSV writes one row per prospect to path.
func WriteCSV(path string, prospects []core.ScoredProspect) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	if err := writeCSV(f, prospects); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeCSV(w io.Writer, prospects []core.ScoredProspect) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for i := range prospects {
		if err := writer.Write(prospectRow(&prospects[i])); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func prospectRow(p *core.ScoredProspect) []string {
	hasWordPress := "No"
	if p.HasWordPress() {
		hasWordPress = "Yes"
	}
	server := p.ServerDetected()
	if server == "" {
		server = "None"
	}

	return []string{
		p.Business.Name,
		p.Business.Address,
		p.Business.Phone,
		p.Business.Phone,
		p.Business.Website,
		p.Verification.Domain,
		strconv.Itoa(p.Score),
		string(p.Recommendation),
		hasWordPress,
		server,
		strconv.Itoa(p.SecurityHeaderCount()),
	}
}
