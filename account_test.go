package recurly

import (
	"strings"
	"testing"
	"time"

	"github.com/guregu/null"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recurly/recurly-client-go/internal/xmlutil"
)

const fullAccountXML = `<?xml version="1.0" encoding="UTF-8"?>
<account href="https://sub.recurly.com/v2/accounts/1">
  <adjustments href="https://sub.recurly.com/v2/accounts/1/adjustments"/>
  <billing_info href="https://sub.recurly.com/v2/accounts/1/billing_info"/>
  <account_code>1</account_code>
  <state>active</state>
  <username>verena</username>
  <email>verena@example.com</email>
  <cc_emails>a@example.com,b@example.com</cc_emails>
  <first_name>Verena</first_name>
  <last_name>Example</last_name>
  <company_name>New Company Name</company_name>
  <vat_number nil="nil"></vat_number>
  <tax_exempt type="boolean">false</tax_exempt>
  <address>
    <address1>123 Main St.</address1>
    <address2 nil="nil"></address2>
    <city>San Francisco</city>
    <state>CA</state>
    <zip>94105</zip>
    <country>US</country>
    <phone nil="nil"></phone>
  </address>
  <accept_language nil="nil"></accept_language>
  <hosted_login_token>a92468579e9c4231a6c0031c4716c01d</hosted_login_token>
  <created_at type="datetime">2011-10-25T12:00:00Z</created_at>
  <updated_at type="datetime">2015-08-25T04:09:56-07:00</updated_at>
  <closed_at nil="nil"></closed_at>
  <has_live_subscription type="boolean">true</has_live_subscription>
  <has_active_subscription type="boolean">true</has_active_subscription>
  <has_future_subscription type="boolean">false</has_future_subscription>
  <has_canceled_subscription type="boolean">false</has_canceled_subscription>
  <has_past_due_invoice type="boolean">true</has_past_due_invoice>
  <vat_location_valid nil="nil"></vat_location_valid>
</account>`

func parseAccountXML(t *testing.T, doc string) *Account {
	t.Helper()
	a, err := readAccount(xmlutil.NewReader(strings.NewReader(doc)), ResourcePath{})
	require.NoError(t, err)
	return a
}

func TestReadAccount_AllFields(t *testing.T) {
	a := parseAccountXML(t, fullAccountXML)

	assert.Equal(t, "1", a.AccountCode())
	assert.Equal(t, AccountStateActive, a.State())
	assert.Equal(t, "verena", a.Username)
	assert.Equal(t, "verena@example.com", a.Email)
	assert.Equal(t, "a@example.com,b@example.com", a.CCEmails)
	assert.Equal(t, "Verena", a.FirstName)
	assert.Equal(t, "Example", a.LastName)
	assert.Equal(t, "New Company Name", a.CompanyName)
	assert.Empty(t, a.VATNumber)
	assert.Equal(t, null.BoolFrom(false), a.TaxExempt)
	assert.Empty(t, a.AcceptLanguage)
	assert.Equal(t, "a92468579e9c4231a6c0031c4716c01d", a.HostedLoginToken())
	assert.True(t, a.HasLiveSubscription())
	assert.True(t, a.HasActiveSubscription())
	assert.False(t, a.HasFutureSubscription())
	assert.False(t, a.HasCanceledSubscription())
	assert.True(t, a.HasPastDueInvoice())
	assert.False(t, a.VATLocationValid())

	assert.True(t, a.CreatedAt().Equal(time.Date(2011, 10, 25, 12, 0, 0, 0, time.UTC)))
	_, offset := a.UpdatedAt().Zone()
	assert.Equal(t, -7*3600, offset, "wire offset should be preserved")

	require.NotNil(t, a.Address)
	assert.Equal(t, Address{
		Address1: "123 Main St.",
		City:     "San Francisco",
		State:    "CA",
		Zip:      "94105",
		Country:  "US",
	}, *a.Address)

	assert.Equal(t, "accounts/1", a.Path().String())
	assert.True(t, a.Equal(NewAccount("1")))
}

func TestReadAccount_NilVATLocationValid(t *testing.T) {
	a := parseAccountXML(t, `<account><account_code>x</account_code><vat_location_valid nil="nil"></vat_location_valid></account>`)
	assert.False(t, a.VATLocationValid())

	a = parseAccountXML(t, `<account><vat_location_valid>true</vat_location_valid></account>`)
	assert.True(t, a.VATLocationValid())
}

func TestReadAccount_EmptyVersusAbsent(t *testing.T) {
	a := parseAccountXML(t, `<account><account_code>x</account_code><username></username></account>`)
	assert.Equal(t, "", a.Username)
	assert.Equal(t, "", a.Email)
	assert.False(t, a.TaxExempt.Valid, "absent tax_exempt stays unset")
	assert.Nil(t, a.Address)
}

func TestReadAccount_SkipsUnknownNestedElements(t *testing.T) {
	a := parseAccountXML(t, `<account>
  <shipping_addresses>
    <shipping_address><first_name>Wrong</first_name><state>NY</state></shipping_address>
  </shipping_addresses>
  <first_name>Right</first_name>
  <state>closed</state>
</account>`)

	assert.Equal(t, "Right", a.FirstName)
	assert.Equal(t, AccountStateClosed, a.State())
}

func TestReadAccount_StopsAtOwnEndTag(t *testing.T) {
	r := xmlutil.NewReader(strings.NewReader(`<accounts><account><email>a@x.com</email></account><account><email>b@x.com</email></account></accounts>`))

	first, err := readAccount(r, ResourcePath{})
	require.NoError(t, err)
	assert.True(t, r.IsEnd("account"))

	second, err := readAccount(r, ResourcePath{})
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", first.Email)
	assert.Equal(t, "b@x.com", second.Email)
}

func TestReadAccount_FallbackPath(t *testing.T) {
	fallback := accountPath("from-request")
	a, err := readAccount(xmlutil.NewReader(strings.NewReader(`<account><email>a@x.com</email></account>`)), fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, a.Path())
}

func TestReadAccount_ParseErrorsAreFatal(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad state", `<account><state>dormant</state></account>`},
		{"bad boolean", `<account><has_live_subscription>maybe</has_live_subscription></account>`},
		{"bad date", `<account><created_at>last tuesday</created_at></account>`},
		{"truncated", `<account><email>a@x.com`},
		{"no account element", `<subscription/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readAccount(xmlutil.NewReader(strings.NewReader(tt.doc)), ResourcePath{})
			assert.Error(t, err)
		})
	}
}

func TestAccountMarshal_FieldOrderAndOmission(t *testing.T) {
	a := NewAccount("ab c")
	a.Email = "jane@example.com"
	a.FirstName = "Jane"
	a.TaxExempt = null.BoolFrom(true)

	b, err := a.marshal()
	require.NoError(t, err)

	expected := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<account>` +
		`<account_code>ab c</account_code>` +
		`<email>jane@example.com</email>` +
		`<first_name>Jane</first_name>` +
		`<tax_exempt>true</tax_exempt>` +
		`</account>`
	assert.Equal(t, expected, string(b))
}

func TestAccountMarshal_OmitsUnsetTaxExempt(t *testing.T) {
	b, err := NewAccount("x").marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(b), "tax_exempt")
	assert.NotContains(t, string(b), "address")
}

func TestAccountMarshal_Deterministic(t *testing.T) {
	a := NewAccount("x")
	a.Username = "u"
	a.CompanyName = "c"
	a.Address = &Address{City: "Paris", Country: "FR"}

	first, err := a.marshal()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := a.marshal()
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
	assert.Contains(t, string(first), "<address><city>Paris</city><country>FR</country></address>")
}

func TestAccount_RoundTrip(t *testing.T) {
	a := NewAccount("round-trip")
	a.Username = "user"
	a.Email = "user@example.com"
	a.FirstName = "First"
	a.LastName = "Last"
	a.CompanyName = "Company & Co"
	a.VATNumber = "FR123"
	a.TaxExempt = null.BoolFrom(false)
	a.EntityUseCode = "E"
	a.AcceptLanguage = "fr-FR"
	a.CCEmails = "a@example.com,b@example.com"
	a.Address = &Address{
		Address1: "1 Rue",
		Address2: "Apt 2",
		City:     "Paris",
		State:    "IDF",
		Zip:      "75001",
		Country:  "FR",
		Phone:    "+33 1 23 45 67 89",
	}

	b, err := a.marshal()
	require.NoError(t, err)

	parsed, err := readAccount(xmlutil.NewReader(strings.NewReader(string(b))), ResourcePath{})
	require.NoError(t, err)

	assert.True(t, a.Equal(parsed))
	assert.Equal(t, a.AccountCode(), parsed.AccountCode())
	assert.Equal(t, a.Username, parsed.Username)
	assert.Equal(t, a.Email, parsed.Email)
	assert.Equal(t, a.FirstName, parsed.FirstName)
	assert.Equal(t, a.LastName, parsed.LastName)
	assert.Equal(t, a.CompanyName, parsed.CompanyName)
	assert.Equal(t, a.VATNumber, parsed.VATNumber)
	assert.Equal(t, a.TaxExempt, parsed.TaxExempt)
	assert.Equal(t, a.EntityUseCode, parsed.EntityUseCode)
	assert.Equal(t, a.AcceptLanguage, parsed.AcceptLanguage)
	assert.Equal(t, a.CCEmails, parsed.CCEmails)
	assert.Equal(t, a.Address, parsed.Address)
}

func TestAccount_Equality(t *testing.T) {
	a := NewAccount("same")
	a.Email = "one@example.com"
	b := NewAccount("same")
	b.Email = "two@example.com"

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Path(), b.Path())

	seen := map[ResourcePath]*Account{a.Path(): a}
	assert.Same(t, a, seen[b.Path()], "equal paths must key the same map entry")

	assert.False(t, a.Equal(NewAccount("other")))
	assert.False(t, a.Equal(nil))

	var nilAccount *Account
	assert.True(t, nilAccount.Equal(nil))
}

func TestAccountNotFound(t *testing.T) {
	assert.True(t, AccountNotFound.IsNotFound())
	assert.True(t, AccountNotFound.Path().IsNotFound())
	assert.False(t, NewAccount("x").IsNotFound())

	assert.False(t, AccountNotFound.Equal(NewAccount("recurly://entity-not-found")))
	assert.False(t, AccountNotFound.Equal(NewAccount("")))
	assert.NotEqual(t, AccountNotFound.Path(), NewAccount(notFoundPath).Path())

	var nilAccount *Account
	assert.False(t, nilAccount.IsNotFound())
}

func TestAccountPath_Escapes(t *testing.T) {
	assert.Equal(t, "accounts/ab%20c", NewAccount("ab c").Path().String())
	assert.Equal(t, "accounts/a%2Fb", NewAccount("a/b").Path().String())
}
