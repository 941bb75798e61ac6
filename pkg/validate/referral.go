package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// Referral codes are numeric with a Luhn check digit, so obviously bogus
// codes are rejected before the database lookup.
func IsReferralCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
