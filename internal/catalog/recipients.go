package catalog

// RecipientSeed is a starter entry copied into every new sender's list.
type RecipientSeed struct {
	Name            string
	AccountNumber   string
	Initials        string
	DeliveryMethods string
	Country         string
}

var recipientSeeds = []RecipientSeed{
	{Name: "Andrew Caligh", AccountNumber: "Multiple delivery methods", Initials: "AC", DeliveryMethods: "multiple", Country: "in"},
	{Name: "Rohan Singh", AccountNumber: "Account •••• 1234", Initials: "RS", DeliveryMethods: "bank", Country: "in"},
	{Name: "Mateo Castillo", AccountNumber: "Account •••• 1234", Initials: "MC", DeliveryMethods: "bank", Country: "ar"},
	{Name: "Jasmine Rees", AccountNumber: "Account •••• 1234", Initials: "JR", DeliveryMethods: "bank", Country: "ca"},
}

// RecipientSeeds returns the starter recipients.
func RecipientSeeds() []RecipientSeed {
	return append([]RecipientSeed(nil), recipientSeeds...)
}
