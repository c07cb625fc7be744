package domain

// PaymentChannel is the provider-level sub-variant of an e-wallet or
// bank-transfer payment.
type PaymentChannel string

const (
	ChannelGoPay     PaymentChannel = "gopay"
	ChannelOVO       PaymentChannel = "ovo"
	ChannelDana      PaymentChannel = "dana"
	ChannelShopeePay PaymentChannel = "shopeepay"
	ChannelBCA       PaymentChannel = "bca"
	ChannelMandiri   PaymentChannel = "mandiri"
	ChannelBRI       PaymentChannel = "bri"
	ChannelBNI       PaymentChannel = "bni"
)

// ChannelDetail carries the static display data for a payment channel.
type ChannelDetail struct {
	Name    string
	Account string
	Holder  string
}

var channelDetails = map[PaymentChannel]ChannelDetail{
	ChannelGoPay:     {Name: "GoPay", Account: "0812-3456-7890", Holder: "YOUR.I SCENT"},
	ChannelOVO:       {Name: "OVO", Account: "0812-3456-7891", Holder: "YOUR.I SCENT"},
	ChannelDana:      {Name: "Dana", Account: "0812-3456-7892", Holder: "YOUR.I SCENT"},
	ChannelShopeePay: {Name: "ShopeePay", Account: "0812-3456-7893", Holder: "YOUR.I SCENT"},
	ChannelBCA:       {Name: "BCA", Account: "1234567890", Holder: "YOUR.I SCENT"},
	ChannelMandiri:   {Name: "Mandiri", Account: "0987654321", Holder: "YOUR.I SCENT"},
	ChannelBRI:       {Name: "BRI", Account: "5566778899", Holder: "YOUR.I SCENT"},
	ChannelBNI:       {Name: "BNI", Account: "1122334455", Holder: "YOUR.I SCENT"},
}

// IsValid checks if the payment channel is valid
func (c PaymentChannel) IsValid() bool {
	_, ok := channelDetails[c]
	return ok
}

// Method returns the payment method the channel belongs to.
func (c PaymentChannel) Method() PaymentMethod {
	switch c {
	case ChannelGoPay, ChannelOVO, ChannelDana, ChannelShopeePay:
		return PaymentEWallet
	case ChannelBCA, ChannelMandiri, ChannelBRI, ChannelBNI:
		return PaymentBank
	default:
		return ""
	}
}

// Detail returns the static display data for the channel. The zero
// value is returned for unknown channels.
func (c PaymentChannel) Detail() ChannelDetail {
	return channelDetails[c]
}

// ChannelsFor lists the channels available under a payment method, in
// display order.
func ChannelsFor(m PaymentMethod) []PaymentChannel {
	switch m {
	case PaymentEWallet:
		return []PaymentChannel{ChannelGoPay, ChannelOVO, ChannelDana, ChannelShopeePay}
	case PaymentBank:
		return []PaymentChannel{ChannelBCA, ChannelMandiri, ChannelBRI, ChannelBNI}
	default:
		return nil
	}
}
