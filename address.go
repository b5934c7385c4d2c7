package recurly

import (
	"github.com/beevik/etree"

	"github.com/recurly/recurly-client-go/internal/xmlutil"
)

// Address is the postal address attached to an account.
type Address struct {
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
	Country  string
	Phone    string
}

// readAddress parses the <address> element at or after the cursor.
func readAddress(r *xmlutil.Reader) (*Address, error) {
	if err := r.Enter("address"); err != nil {
		return nil, err
	}

	a := &Address{}
	for {
		ok, err := r.Read()
		if err != nil {
			return nil, err
		}
		if !ok || r.IsEnd("address") {
			return a, nil
		}
		if !r.IsElement() {
			continue
		}

		var dst *string
		switch r.Name() {
		case "address1":
			dst = &a.Address1
		case "address2":
			dst = &a.Address2
		case "city":
			dst = &a.City
		case "state":
			dst = &a.State
		case "zip":
			dst = &a.Zip
		case "country":
			dst = &a.Country
		case "phone":
			dst = &a.Phone
		}
		if dst == nil || r.IsNil() {
			if err := r.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		if *dst, err = r.ReadString(); err != nil {
			return nil, err
		}
	}
}

func (a *Address) writeXML(parent *etree.Element) {
	el := parent.CreateElement("address")
	xmlutil.WriteStringIfPresent(el, "address1", a.Address1)
	xmlutil.WriteStringIfPresent(el, "address2", a.Address2)
	xmlutil.WriteStringIfPresent(el, "city", a.City)
	xmlutil.WriteStringIfPresent(el, "state", a.State)
	xmlutil.WriteStringIfPresent(el, "zip", a.Zip)
	xmlutil.WriteStringIfPresent(el, "country", a.Country)
	xmlutil.WriteStringIfPresent(el, "phone", a.Phone)
}
