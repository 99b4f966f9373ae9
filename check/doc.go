// Package check contains the individual validation levels for contactkit:
// offline email and phone syntax, DNS reachability, the SMTP mailbox probe
// and phone number parsing. Network checks never return errors; failures
// are folded into their reports.
// These types can be used directly, but the recommended approach is
// to use the fluent builder API from the github.com/optimode/contactkit package.
package check

//go:generate mockgen -source=dns.go -destination=mocks/resolver.go -package=mocks Resolver
//go:generate mockgen -source=phoneparse.go -destination=mocks/numberlib.go -package=mocks NumberLibrary
