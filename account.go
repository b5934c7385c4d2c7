package recurly

import (
	"time"

	"github.com/beevik/etree"
	"github.com/guregu/null"

	"github.com/recurly/recurly-client-go/internal/api"
	"github.com/recurly/recurly-client-go/internal/xmlutil"
)

const accountsPath = "accounts/"

// AccountNotFound is returned by Accounts.Get when the account does not
// exist. It never equals an account built from a real account code.
// It is shared; do not modify it.
var AccountNotFound = newAccountAt(ResourcePath{path: notFoundPath})

// Account is a customer account. Fields that only the server sets are
// exposed through methods and are filled in by parsing a response.
type Account struct {
	path        ResourcePath
	accountCode string
	state       AccountState

	Username       string
	Email          string
	FirstName      string
	LastName       string
	CompanyName    string
	VATNumber      string
	TaxExempt      null.Bool
	EntityUseCode  string
	AcceptLanguage string
	// CCEmails is a comma-separated list of addresses copied on emails.
	CCEmails string
	Address  *Address

	hostedLoginToken        string
	createdAt               time.Time
	updatedAt               time.Time
	vatLocationValid        bool
	hasLiveSubscription     bool
	hasActiveSubscription   bool
	hasFutureSubscription   bool
	hasCanceledSubscription bool
	hasPastDueInvoice       bool
}

// NewAccount returns a local account identified by accountCode, ready to
// be filled in and created.
func NewAccount(accountCode string) *Account {
	a := newAccountAt(accountPath(accountCode))
	a.accountCode = accountCode
	return a
}

func newAccountAt(path ResourcePath) *Account {
	return &Account{path: path}
}

func accountPath(accountCode string) ResourcePath {
	return newResourcePath(accountsPath, api.EscapeDataString(accountCode))
}

// Path returns the account's location relative to the API root.
func (a *Account) Path() ResourcePath { return a.path }

// Equal reports whether a and other are the same resource. Only the paths
// are compared.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.path == other.path
}

// IsNotFound reports whether a is the not-found sentinel.
func (a *Account) IsNotFound() bool {
	return a != nil && a.path.IsNotFound()
}

// AccountCode is the unique identifier of the account.
func (a *Account) AccountCode() string { return a.accountCode }

// State is the set of states the account is in.
func (a *Account) State() AccountState { return a.state }

// HostedLoginToken is the token for the hosted account management pages.
func (a *Account) HostedLoginToken() string { return a.hostedLoginToken }

func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// VATLocationValid is false when the server sent no value.
func (a *Account) VATLocationValid() bool { return a.vatLocationValid }

func (a *Account) HasLiveSubscription() bool { return a.hasLiveSubscription }

func (a *Account) HasActiveSubscription() bool { return a.hasActiveSubscription }

func (a *Account) HasFutureSubscription() bool { return a.hasFutureSubscription }

func (a *Account) HasCanceledSubscription() bool { return a.hasCanceledSubscription }

func (a *Account) HasPastDueInvoice() bool { return a.hasPastDueInvoice }

// readAccount parses the <account> element at or after the cursor. The
// account is identified by its parsed code, or by fallback when the
// document has none.
func readAccount(r *xmlutil.Reader, fallback ResourcePath) (*Account, error) {
	if err := r.Enter("account"); err != nil {
		return nil, err
	}

	a := &Account{}
	for {
		ok, err := r.Read()
		if err != nil {
			return nil, err
		}
		if !ok || r.IsEnd("account") {
			break
		}
		if !r.IsElement() {
			continue
		}
		if r.IsNil() {
			if err := r.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		if err := a.readField(r); err != nil {
			return nil, err
		}
	}

	a.path = fallback
	if a.accountCode != "" {
		a.path = accountPath(a.accountCode)
	}
	return a, nil
}

func (a *Account) readField(r *xmlutil.Reader) error {
	var err error
	switch r.Name() {
	case "account_code":
		a.accountCode, err = r.ReadString()
	case "state":
		// TODO: confirm against live payloads whether the API ever sends
		// more than one state; ParseAccountState accepts a comma list.
		var s string
		if s, err = r.ReadString(); err == nil {
			a.state, err = ParseAccountState(s)
		}
	case "username":
		a.Username, err = r.ReadString()
	case "email":
		a.Email, err = r.ReadString()
	case "first_name":
		a.FirstName, err = r.ReadString()
	case "last_name":
		a.LastName, err = r.ReadString()
	case "company_name":
		a.CompanyName, err = r.ReadString()
	case "vat_number":
		a.VATNumber, err = r.ReadString()
	case "tax_exempt":
		var v bool
		if v, err = r.ReadBool(); err == nil {
			a.TaxExempt = null.BoolFrom(v)
		}
	case "entity_use_code":
		a.EntityUseCode, err = r.ReadString()
	case "accept_language":
		a.AcceptLanguage, err = r.ReadString()
	case "cc_emails":
		a.CCEmails, err = r.ReadString()
	case "hosted_login_token":
		a.hostedLoginToken, err = r.ReadString()
	case "created_at":
		a.createdAt, err = r.ReadTime()
	case "updated_at":
		a.updatedAt, err = r.ReadTime()
	case "address":
		a.Address, err = readAddress(r)
	case "vat_location_valid":
		a.vatLocationValid, err = r.ReadBool()
	case "has_live_subscription":
		a.hasLiveSubscription, err = r.ReadBool()
	case "has_active_subscription":
		a.hasActiveSubscription, err = r.ReadBool()
	case "has_future_subscription":
		a.hasFutureSubscription, err = r.ReadBool()
	case "has_canceled_subscription":
		a.hasCanceledSubscription, err = r.ReadBool()
	case "has_past_due_invoice":
		a.hasPastDueInvoice, err = r.ReadBool()
	default:
		err = r.Skip()
	}
	return err
}

// writeXML appends the <account> element. Only caller-settable fields are
// written, in a fixed order.
func (a *Account) writeXML(parent *etree.Document) {
	el := parent.CreateElement("account")

	xmlutil.WriteString(el, "account_code", a.accountCode)
	xmlutil.WriteStringIfPresent(el, "username", a.Username)
	xmlutil.WriteStringIfPresent(el, "email", a.Email)
	xmlutil.WriteStringIfPresent(el, "first_name", a.FirstName)
	xmlutil.WriteStringIfPresent(el, "last_name", a.LastName)
	xmlutil.WriteStringIfPresent(el, "company_name", a.CompanyName)
	xmlutil.WriteStringIfPresent(el, "accept_language", a.AcceptLanguage)
	xmlutil.WriteStringIfPresent(el, "vat_number", a.VATNumber)
	xmlutil.WriteStringIfPresent(el, "entity_use_code", a.EntityUseCode)
	xmlutil.WriteStringIfPresent(el, "cc_emails", a.CCEmails)
	xmlutil.WriteIfPresent(el, "tax_exempt", a.TaxExempt,
		func(v null.Bool) bool { return v.Valid },
		func(v null.Bool) string { return xmlutil.FormatBool(v.Bool) })

	if a.Address != nil {
		a.Address.writeXML(el)
	}
}

// marshal renders the account as a request body.
func (a *Account) marshal() ([]byte, error) {
	doc := xmlutil.NewDocument()
	a.writeXML(doc)
	return xmlutil.Marshal(doc)
}
