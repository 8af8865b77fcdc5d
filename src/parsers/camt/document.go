// backend/src/parsers/camt/document.go
package camt

import "encoding/xml"

// document mirrors the subset of the ISO 20022 camt.053 schema this parser
// reads. Field names follow the standard's element names.
type document struct {
	XMLName       xml.Name `xml:"Document"`
	BkToCstmrStmt struct {
		Stmt []statement `xml:"Stmt"`
	} `xml:"BkToCstmrStmt"`
}

type statement struct {
	ID   string  `xml:"Id"`
	Acct account `xml:"Acct"`
	Ntry []entry `xml:"Ntry"`
}

type account struct {
	ID struct {
		IBAN string `xml:"IBAN"`
	} `xml:"Id"`
	Ccy string `xml:"Ccy"`
}

type amount struct {
	Value string `xml:",chardata"`
	Ccy   string `xml:"Ccy,attr"`
}

type entryDate struct {
	Dt string `xml:"Dt"`
}

type entry struct {
	NtryRef      string       `xml:"NtryRef"`
	Amt          amount       `xml:"Amt"`
	CdtDbtInd    string       `xml:"CdtDbtInd"` // CRDT or DBIT
	Sts          string       `xml:"Sts"`
	BookgDt      entryDate    `xml:"BookgDt"`
	ValDt        entryDate    `xml:"ValDt"`
	AcctSvcrRef  string       `xml:"AcctSvcrRef"`
	NtryDtls     entryDetails `xml:"NtryDtls"`
	AddtlNtryInf string       `xml:"AddtlNtryInf"`
}

type entryDetails struct {
	TxDtls []transactionDetails `xml:"TxDtls"`
}

type transactionDetails struct {
	Refs struct {
		EndToEndID string `xml:"EndToEndId"`
		MndtID     string `xml:"MndtId"`
	} `xml:"Refs"`
	RltdPties relatedParties `xml:"RltdPties"`
	RmtInf    struct {
		Ustrd []string `xml:"Ustrd"`
	} `xml:"RmtInf"`
}

type relatedParties struct {
	Dbtr struct {
		Nm string `xml:"Nm"`
	} `xml:"Dbtr"`
	DbtrAcct struct {
		ID struct {
			IBAN string `xml:"IBAN"`
		} `xml:"Id"`
	} `xml:"DbtrAcct"`
	Cdtr struct {
		Nm string `xml:"Nm"`
	} `xml:"Cdtr"`
	CdtrAcct struct {
		ID struct {
			IBAN string `xml:"IBAN"`
		} `xml:"Id"`
	} `xml:"CdtrAcct"`
}
