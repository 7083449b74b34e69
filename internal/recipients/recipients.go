// Package recipients filters a sender's recipient list the way the
// recipients screen does.
package recipients

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tab filters.
const (
	FilterAll          = "all"
	FilterMyRecipients = "my-recipients"
	FilterContacts     = "contacts"
)

// Delivery method summaries.
const (
	DeliveryMultiple = "multiple"
	DeliveryBank     = "bank"
	DeliveryCash     = "cash"
)

// Field limits in characters.
const (
	MaxNameLength    = 120
	MaxAccountLength = 64
	MaxCountryLength = 8
)

var (
	ErrNameRequired    = errors.New("recipient name is required")
	ErrInvalidDelivery = errors.New("unknown delivery method")
	ErrFieldTooLong    = errors.New("recipient field is too long")
)

// Recipient is one row of the list.
type Recipient struct {
	ID              string
	Name            string
	AccountNumber   string
	Initials        string
	DeliveryMethods string
	Country         string
	IsSelf          bool
}

// Filter keeps recipients whose name contains search (case-insensitive) and
// that belong to tab. Unknown tabs behave like FilterAll.
func Filter(list []Recipient, search, tab string) []Recipient {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Recipient, 0, len(list))
	for _, r := range list {
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		if !inTab(r, tab) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func inTab(r Recipient, tab string) bool {
	switch tab {
	case FilterMyRecipients:
		return !r.IsSelf
	case FilterContacts:
		return r.DeliveryMethods == DeliveryBank
	default:
		return true
	}
}

// Initials takes the first letter of the first and last words of name.
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ')'
	})
	switch len(words) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(firstLetter(words[0]))
	default:
		return strings.ToUpper(firstLetter(words[0]) + firstLetter(words[len(words)-1]))
	}
}

// Self builds the sender's own entry shown at the top of the list.
func Self(fullName, country string) Recipient {
	return Recipient{
		Name:            "You (" + fullName + ")",
		AccountNumber:   "Multiple delivery methods",
		Initials:        Initials(fullName),
		DeliveryMethods: DeliveryMultiple,
		Country:         country,
		IsSelf:          true,
	}
}

// Normalize trims a new recipient and fills derived fields.
func Normalize(r Recipient) (Recipient, error) {
	r.Name = strings.Join(strings.Fields(r.Name), " ")
	if r.Name == "" {
		return Recipient{}, ErrNameRequired
	}
	switch r.DeliveryMethods {
	case "":
		r.DeliveryMethods = DeliveryBank
	case DeliveryBank, DeliveryCash, DeliveryMultiple:
	default:
		return Recipient{}, ErrInvalidDelivery
	}
	r.Country = strings.ToLower(strings.TrimSpace(r.Country))
	r.AccountNumber = strings.TrimSpace(r.AccountNumber)
	if r.AccountNumber == "" && r.DeliveryMethods == DeliveryCash {
		r.AccountNumber = "Cash pickup"
	}
	if utf8.RuneCountInString(r.Name) > MaxNameLength ||
		utf8.RuneCountInString(r.AccountNumber) > MaxAccountLength ||
		utf8.RuneCountInString(r.Country) > MaxCountryLength {
		return Recipient{}, ErrFieldTooLong
	}
	r.Initials = Initials(r.Name)
	r.IsSelf = false
	return r, nil
}

func firstLetter(word string) string {
	for _, r := range word {
		return string(r)
	}
	return ""
}
