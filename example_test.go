package contactkit_test

import (
	"context"
	"fmt"

	"github.com/optimode/contactkit"
)

func ExampleNew() {
	v := contactkit.New(contactkit.DefaultConfig())
	result, _ := v.Validate(context.Background(), contactkit.Request{
		Kind:  contactkit.KindEmail,
		Value: "user@example.com",
	})
	fmt.Println(result.Valid)
	// Output: true
}

func ExampleValidator_Validate() {
	v := contactkit.New(contactkit.DefaultConfig())
	ctx := context.Background()

	result, _ := v.Validate(ctx, contactkit.Request{Kind: contactkit.KindEmail, Value: "user@example.com"})
	fmt.Println(result.Valid, result.MessageKey)

	result, _ = v.Validate(ctx, contactkit.Request{Kind: contactkit.KindEmail, Value: "john@example"})
	fmt.Println(result.Valid, result.MessageKey)
	fmt.Println(result.Message)
	// Output:
	// true EMAIL_VALID_FORMAT
	// false EMAIL_MISSING_TLD
	// Invalid format - the email address is missing an extension (for example: .com)
}

func ExampleValidator_Validate_phone() {
	cfg := contactkit.DefaultConfig()
	cfg.Tier = contactkit.TierPro
	v := contactkit.New(cfg)

	result, _ := v.Validate(context.Background(), contactkit.Request{
		Kind:   contactkit.KindPhone,
		Value:  "054-123-4567",
		Region: "IL",
	})
	fmt.Println(result.Valid, result.Formatted, result.Carrier)
	// Output: true +972 54-123-4567 Partner
}

func ExampleValidator_Validate_locale() {
	v := contactkit.New(contactkit.DefaultConfig())

	result, _ := v.Validate(context.Background(), contactkit.Request{
		Kind:   contactkit.KindPhone,
		Value:  "1234567890",
		Region: "IL",
		Locale: "en",
	})
	fmt.Println(result.Message)
	// Output: Invalid format - a valid Israel phone number is required
}

func ExampleValidator_ValidateMany() {
	v := contactkit.New(contactkit.DefaultConfig())
	reqs := []contactkit.Request{
		{Kind: contactkit.KindEmail, Value: "alice@example.com"},
		{Kind: contactkit.KindEmail, Value: "invalid"},
		{Kind: contactkit.KindPhone, Value: "(212) 555-1234", Region: "US"},
	}

	results, _ := v.ValidateMany(context.Background(), reqs, contactkit.ConcurrencyOptions{
		Workers: 2,
	})

	for _, r := range results {
		fmt.Printf("%-20s valid=%v\n", r.Value, r.Valid)
	}
	// Output:
	// alice@example.com    valid=true
	// invalid              valid=false
	// (212) 555-1234       valid=true
}

func ExampleResult_CheckFor() {
	v := contactkit.New(contactkit.DefaultConfig())
	result, _ := v.Validate(context.Background(), contactkit.Request{Kind: contactkit.KindEmail, Value: "user@example.com"})

	if syntax, ok := result.CheckFor(contactkit.LevelSyntax); ok {
		fmt.Println(syntax.Passed, syntax.Details)
	}
	// Output: true syntax ok
}

func ExampleResult_FailedChecks() {
	v := contactkit.New(contactkit.DefaultConfig())
	result, _ := v.Validate(context.Background(), contactkit.Request{Kind: contactkit.KindEmail, Value: "missing-at-sign"})

	for _, c := range result.FailedChecks() {
		fmt.Printf("[%s] %s\n", c.Level, c.Key)
	}
	// Output:
	// [syntax] EMAIL_MISSING_AT
}

func ExampleValidator_WithConfig() {
	v := contactkit.New(contactkit.DefaultConfig())

	// Typo detection does not fail, it populates Suggestion
	result, _ := v.Validate(context.Background(), contactkit.Request{Kind: contactkit.KindEmail, Value: "user@gmial.com"})
	fmt.Println(result.Valid, result.Suggestion)

	cfg := v.Config()
	cfg.SuggestTypos = false
	result, _ = v.WithConfig(cfg).Validate(context.Background(), contactkit.Request{Kind: contactkit.KindEmail, Value: "user@gmial.com"})
	fmt.Printf("%v %q\n", result.Valid, result.Suggestion)
	// Output:
	// true user@gmail.com
	// true ""
}
