package qrbill_test

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/qrbill-api/internal/domain/qrbill"
	"github.com/jhoicas/qrbill-api/pkg/swissqr"
)

const (
	testIban    = "CH93 0076 2011 6238 5295 7"
	testQrIban  = "CH44 3199 9123 0008 8901 2"
	testRf      = "RF89 2424 1001"
	testBilling = "//S1/10/1001/11/240315/20/42/30/123456789/31/240315/32/8.1:1803.65/40/0:30"
)

// fakeIbans: checksum ISO 13616 real y rango IID 30000-31999 para QR-IBAN.
type fakeIbans struct{}

func (fakeIbans) IsValidIban(iban string) bool { return swissqr.IbanChecksumOK(iban) }

func (fakeIbans) IsQrIban(iban string) bool {
	iban = swissqr.NormalizeIban(iban)
	if len(iban) < 9 {
		return false
	}
	iid, err := strconv.Atoi(iban[4:9])
	return err == nil && iid >= 30000 && iid <= 31999
}

type fakeCountries struct{}

func (fakeCountries) IsValidCountryCode(code string) bool {
	switch code {
	case "CH", "LI", "DE", "FR", "IT", "AT":
		return true
	}
	return false
}

func (fakeCountries) IsSwissCountry(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ch", "schweiz", "suisse", "svizzera", "switzerland":
		return true
	}
	return false
}

type report struct{ message, code string }

type recordingSink struct{ reports []report }

func (s *recordingSink) Report(message, code string) {
	s.reports = append(s.reports, report{message, code})
}

func newBuilder(opts ...qrbill.Option) *qrbill.Builder {
	return qrbill.NewBuilder(fakeIbans{}, fakeCountries{}, opts...)
}

func buildTestConfig(scheme qrbill.ReferenceScheme) *qrbill.Config {
	return &qrbill.Config{
		ReferenceScheme:       scheme,
		Iban:                  testIban,
		QrIban:                testQrIban,
		IsrID:                 "210000",
		AdditionalInformation: true,
		BillingInformation:    true,
	}
}

func buildTestInvoice() *qrbill.Invoice {
	amount := decimal.RequireFromString("1949.75")
	due := time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC)
	return &qrbill.Invoice{
		Number:   "1001",
		Date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		DueDate:  &due,
		Currency: "chf",
		Amount:   &amount,
		VATRates: []qrbill.VATRate{
			{Rate: decimal.RequireFromString("8.10"), NetAmount: decimal.RequireFromString("1803.650")},
		},
		Notes:  "Auftrag vom 15. März",
		Locale: "en",
		Supplier: qrbill.PartyInfo{
			BusinessName: "Muster AG",
			Address1:     "Bahnhofstrasse 1",
			PostalCode:   "8001",
			City:         "Zürich",
			CountryCode:  "ch",
			VatNumber:    "CHE-123.456.789 MWST",
		},
		Customer: qrbill.PartyInfo{
			Number:      "42",
			FirstName:   "Hans",
			LastName:    "Muster",
			Address1:    "Dorfweg 2",
			PostalCode:  "3000",
			City:        "Bern",
			CountryCode: "CH",
		},
	}
}
