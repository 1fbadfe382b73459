package types

const ServiceDescription = `*🤖 DAU Transfer - send tokens in two denominations*

*What I do:*
💸 I help you send DAU tokens and see what they are worth in USD.

*Key Features:*
💱 *Two currencies*
• Send and receive in DAU or USD
• Fixed rate: 1 DAU = 74755.13 USD
• DAU amounts keep 18 decimals, USD amounts keep 2

⛽ *Network fee*
• Standard - 3.76 USD
• Fast - 10.3 USD
• A small transfer fee is added on top

✅ *Safe sending*
• Amount is checked against your balance
• You see the amount to be received before confirming
• Nothing is sent if fees eat the whole amount

*How it works:*
1️⃣ Tap *Send tokens*
2️⃣ Choose what you send and what the receiver gets
3️⃣ Choose a network fee
4️⃣ Enter the amount and confirm

*Note:* 
Balances live only in your current session and start over when it expires. 🔒`

type Action struct {
	TgText       string
	CallBackName string
}

type ConfirmationTemplate struct {
	MessageText     string
	ConfirmText     string
	ConfirmCallback string
	CancelText      string
	CancelCallback  string
	NextState       string
}

var ConfirmationTemplates = map[string]ConfirmationTemplate{
	"send_tokens": {
		MessageText: "*You are about to send tokens. Please confirm:*\n\n" +
			"```\n" +
			"Amount:       %s %s\n" +
			"Network fee:  %s %s (%s)\n" +
			"Transfer fee: %s %s\n" +
			"Total fee:    %s %s\n" +
			"Receiver gets %s %s\n" +
			"```",
		ConfirmText:     "Confirm",
		ConfirmCallback: "transfer_confirm",
		CancelText:      "Cancel",
		CancelCallback:  "cancel_action",
		NextState:       "waiting_transfer_confirmation",
	},
}
