package importer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
)

// OFX statements carry their own field semantics, so they are flattened
// into a fixed three-column table and flow through the same mapping and
// coercion pipeline as CSV/XLSX uploads.
var ofxColumns = []string{"name", "amount", "date"}

// readOFX parses an OFX/QFX bank export into a Table.
func readOFX(r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	table := &Table{Columns: ofxColumns}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, txn := range stmt.BankTranList.Transactions {
				table.Rows = append(table.Rows, ofxRow(txn))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, txn := range stmt.BankTranList.Transactions {
				table.Rows = append(table.Rows, ofxRow(txn))
			}
		}
	}

	return table, nil
}

func ofxRow(txn ofxgo.Transaction) []string {
	name := string(txn.Name)
	if txn.Payee != nil && txn.Payee.Name != "" {
		name = string(txn.Payee.Name)
	}

	amount, _ := txn.TrnAmt.Float64()
	return []string{
		name,
		fmt.Sprintf("%.2f", amount),
		txn.DtPosted.Time.Format("2006-01-02"),
	}
}

var (
	ofxSeverityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	ofxTagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes common formatting issues in bank exports: leading
// whitespace before the header, mixed-case SEVERITY values and SGML-style
// tags missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = ofxSeverityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = ofxTagFixRegex.ReplaceAllString(content, "$1>")
	return content
}
