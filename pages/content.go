package pages

const supportEmail = "support@example.com"

var privacyPolicy = mustValid(PolicyDocument{
	Title: "Privacy Policy",
	Sections: []Section{
		{
			Heading: "1. Information We Collect",
			Paragraphs: []string{
				"We collect the information you provide when you create an account, such as your name, email address and profile details.",
			},
			Bullets: []string{
				"Account information you enter during sign up",
				"Content you create or upload while using the app",
				"Basic usage data such as pages visited and features used",
				"Device information such as browser type and operating system",
			},
		},
		{
			Heading: "2. How We Use Your Information",
			Bullets: []string{
				"To provide, maintain and improve the service",
				"To process payments and send receipts",
				"To respond to support requests",
				"To send important notices about your account",
			},
		},
		{
			Heading: "3. Payment Information",
			Paragraphs: []string{
				"Payments are handled by our third-party payment provider. We never store your full card number on our servers.",
			},
		},
		{
			Heading: "4. Data Sharing",
			Paragraphs: []string{
				"We do not sell your personal information. We share data only with service providers that help us operate the app, and only as far as they need it to do so.",
			},
		},
		{
			Heading: "5. Data Retention and Deletion",
			Paragraphs: []string{
				"We keep your data for as long as your account is active. You can delete your account at any time from your account settings, after which your personal data is removed within 30 days.",
			},
		},
		{
			Heading: "6. Cookies",
			Paragraphs: []string{
				"We use essential cookies to keep you signed in and to remember your preferences. We do not use cookies for third-party advertising.",
			},
		},
		{
			Heading: "7. Your Rights",
			Bullets: []string{
				"Access the personal data we hold about you",
				"Correct inaccurate data",
				"Request deletion of your data",
				"Export your data in a portable format",
			},
		},
		{
			Heading: "8. Contact Us",
			Paragraphs: []string{
				"If you have questions about this policy, contact us at " + supportEmail + ".",
			},
		},
	},
	LastUpdated: "January 2025",
})

var refundPolicy = mustValid(PolicyDocument{
	Title: "Refund Policy",
	Sections: []Section{
		{
			Heading: "1. Satisfaction Guarantee",
			Paragraphs: []string{
				"We want you to be happy with your purchase. If the service does not meet your expectations, you may request a refund within 14 days of your first payment.",
			},
		},
		{
			Heading: "2. Eligibility for Refund",
			Paragraphs: []string{
				"To be eligible for a refund:",
			},
			Bullets: []string{
				"The request must be made within 14 days of the original purchase",
				"The account must not have been suspended for violating our terms",
				"Refunds apply to the first subscription payment only",
			},
		},
		{
			Heading: "3. Non-Refundable Items",
			Bullets: []string{
				"Renewal payments after the first billing period",
				"Partially used billing periods",
				"Purchases made through third-party app stores",
			},
		},
		{
			Heading: "4. How to Request a Refund",
			Paragraphs: []string{
				"Email " + supportEmail + " from the address linked to your account and include your order number. We respond within 2 business days.",
			},
		},
		{
			Heading: "5. Processing Time",
			Paragraphs: []string{
				"Approved refunds are returned to the original payment method through our payment provider. Depending on your bank it can take 5 to 10 business days for the refund to appear.",
			},
		},
		{
			Heading: "6. Cancellation",
			Paragraphs: []string{
				"You can cancel your subscription at any time. Cancelling stops future renewals but does not by itself trigger a refund.",
			},
		},
		{
			Heading: "7. Contact Us",
			Paragraphs: []string{
				"Questions about refunds can be sent to " + supportEmail + ".",
			},
		},
	},
	LastUpdated: "January 2025",
})

// Privacy returns a copy of the privacy policy.
func Privacy() PolicyDocument {
	return privacyPolicy.clone()
}

// Refund returns a copy of the refund policy.
func Refund() PolicyDocument {
	return refundPolicy.clone()
}
