package registry

import "github.com/Veraticus/nuban/internal/model"

// defaultBanks is the built-in list of institutions and their NUBAN bank
// codes, in lookup and prediction order.
var defaultBanks = []model.Bank{
	{Name: "Access Bank", Code: "044"},
	{Name: "Access Bank (Diamond)", Code: "063"},
	{Name: "Citibank Nigeria", Code: "023"},
	{Name: "Ecobank Nigeria", Code: "050"},
	{Name: "Fidelity Bank", Code: "070"},
	{Name: "First Bank of Nigeria", Code: "011"},
	{Name: "First City Monument Bank", Code: "214"},
	{Name: "Globus Bank", Code: "00103"},
	{Name: "Guaranty Trust Bank", Code: "058"},
	{Name: "Heritage Bank", Code: "030"},
	{Name: "Jaiz Bank", Code: "301"},
	{Name: "Keystone Bank", Code: "082"},
	{Name: "Kuda Bank", Code: "50211"},
	{Name: "Lotus Bank", Code: "303"},
	{Name: "Moniepoint MFB", Code: "50515"},
	{Name: "OPay Digital Services", Code: "999992"},
	{Name: "PalmPay", Code: "999991"},
	{Name: "Parallex Bank", Code: "526"},
	{Name: "Polaris Bank", Code: "076"},
	{Name: "Providus Bank", Code: "101"},
	{Name: "Sparkle Microfinance Bank", Code: "51310"},
	{Name: "Stanbic IBTC Bank", Code: "221"},
	{Name: "Standard Chartered Bank", Code: "068"},
	{Name: "Sterling Bank", Code: "232"},
	{Name: "Suntrust Bank", Code: "100"},
	{Name: "TAJ Bank", Code: "302"},
	{Name: "Titan Trust Bank", Code: "102"},
	{Name: "Union Bank of Nigeria", Code: "032"},
	{Name: "United Bank For Africa", Code: "033"},
	{Name: "Unity Bank", Code: "215"},
	{Name: "Wema Bank", Code: "035"},
	{Name: "Zenith Bank", Code: "057"},
}
